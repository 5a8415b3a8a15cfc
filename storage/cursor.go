// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/assetregistry/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	store Store
	start string
	limit string
}

// NewFetchCursor - initialise a cursor to the start of a store
func NewFetchCursor(store Store) *FetchCursor {
	return &FetchCursor{
		store: store,
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key string) *FetchCursor {
	cursor.start = key
	return cursor
}

// Limit - stop before this key, empty for no limit
func (cursor *FetchCursor) Limit(key string) *FetchCursor {
	cursor.limit = key
	return cursor
}

// Fetch - return up to count elements and advance past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor || nil == cursor.store {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	iter, err := cursor.store.RangeScan(cursor.start, cursor.limit)
	if nil != err {
		return nil, err
	}

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {
		results = append(results, Element{
			Key:   iter.Key(),
			Value: iter.Value(),
		})
		if len(results) >= count {
			break iterating
		}
	}
	err = iter.Error()
	iter.Release()

	// the smallest key after the last one returned
	if n := len(results); n > 0 {
		cursor.start = results[n-1].Key + "\x00"
	}
	return results, err
}

// Map - run a function on all remaining elements in the range
func (cursor *FetchCursor) Map(f func(key string, value []byte) error) error {
	if nil == cursor || nil == cursor.store {
		return fault.ErrInvalidCursor
	}

	iter, err := cursor.store.RangeScan(cursor.start, cursor.limit)
	if nil != err {
		return err
	}

iterating:
	for iter.Next() {
		err = f(iter.Key(), iter.Value())
		if nil != err {
			break iterating
		}
	}
	if nil == err {
		err = iter.Error()
	}
	iter.Release()
	return err
}
