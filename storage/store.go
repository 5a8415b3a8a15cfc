// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Store - ordered key/value operations used by the registry
//
// Get returns nil, nil for an absent key.  RangeScan visits keys k with
// startKey <= k < endKey in ascending byte order; an empty bound is
// unbounded on that side.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	RangeScan(startKey string, endKey string) (Iterator, error)
}

// Iterator - forward cursor returned by RangeScan
//
// Release must be called when done; Error reports the first failure
// after Next has returned false
type Iterator interface {
	Next() bool
	Key() string
	Value() []byte
	Error() error
	Release()
}

// Batcher - a store able to group writes atomically
type Batcher interface {
	Begin() (Batch, error)
}

// Batch - writes applied together by Commit or dropped by Abort
//
// Get sees the batch's own pending writes
type Batch interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Commit() error
	Abort()
}
