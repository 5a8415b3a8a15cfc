// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Access - the raw engine beneath the pools
//
// keys include the pool prefix; Get returns nil, nil when the key is
// absent
type Access interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Iterator(start []byte, limit []byte) rawIterator
	Begin() (Transaction, error)
	Close() error
}

// Transaction - engine level atomic write group
type Transaction interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Commit() error
	Abort()
}

// the engine iterator; key and value are only valid until the next call
// to Next
type rawIterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}
