// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"unicode/utf8"

	"github.com/bitmark-inc/assetregistry/fault"
)

// PoolHandle - one prefix of the key space seen as a separate store
type PoolHandle struct {
	prefix byte
	limit  []byte
	access Access
}

// Element - a key/value item
type Element struct {
	Key   string
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key string) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// keys must be non-empty UTF-8
func validKey(key string) error {
	if "" == key || !utf8.ValidString(key) {
		return fault.ErrInvalidKey
	}
	return nil
}

// Get - read a value for a given key
//
// returns nil, nil if the key is absent
func (p *PoolHandle) Get(key string) ([]byte, error) {
	return p.access.Get(p.prefixKey(key))
}

// Put - store a key/value pair
func (p *PoolHandle) Put(key string, value []byte) error {
	if err := validKey(key); nil != err {
		return err
	}
	return p.access.Put(p.prefixKey(key), value)
}

// Delete - remove a key, absent keys are not an error
func (p *PoolHandle) Delete(key string) error {
	return p.access.Delete(p.prefixKey(key))
}

// RangeScan - iterate keys in [startKey, endKey) of this pool
func (p *PoolHandle) RangeScan(startKey string, endKey string) (Iterator, error) {
	start := []byte{p.prefix}
	if "" != startKey {
		start = p.prefixKey(startKey)
	}
	limit := p.limit
	if "" != endKey {
		limit = p.prefixKey(endKey)
	}
	return &poolIterator{
		raw: p.access.Iterator(start, limit),
	}, nil
}

// Begin - start a batch of writes confined to this pool
func (p *PoolHandle) Begin() (Batch, error) {
	trx, err := p.access.Begin()
	if nil != err {
		return nil, err
	}
	return &poolBatch{
		pool: p,
		trx:  trx,
	}, nil
}

// strips the prefix from each key
type poolIterator struct {
	raw rawIterator
}

func (i *poolIterator) Next() bool {
	return i.raw.Next()
}

func (i *poolIterator) Key() string {
	key := i.raw.Key()
	if len(key) < 1 {
		return ""
	}
	return string(key[1:])
}

func (i *poolIterator) Value() []byte {
	value := i.raw.Value()
	v := make([]byte, len(value))
	copy(v, value)
	return v
}

func (i *poolIterator) Error() error {
	return i.raw.Error()
}

func (i *poolIterator) Release() {
	i.raw.Release()
}

type poolBatch struct {
	pool *PoolHandle
	trx  Transaction
}

func (b *poolBatch) Get(key string) ([]byte, error) {
	return b.trx.Get(b.pool.prefixKey(key))
}

func (b *poolBatch) Put(key string, value []byte) error {
	if err := validKey(key); nil != err {
		return err
	}
	return b.trx.Put(b.pool.prefixKey(key), value)
}

func (b *poolBatch) Delete(key string) error {
	return b.trx.Delete(b.pool.prefixKey(key))
}

func (b *poolBatch) Commit() error {
	return b.trx.Commit()
}

func (b *poolBatch) Abort() {
	b.trx.Abort()
}
