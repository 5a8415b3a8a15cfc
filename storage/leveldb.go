// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/assetregistry/fault"
)

type levelDBAccess struct {
	// held by a transaction from Begin until Commit or Abort and
	// briefly by each direct write
	writeLock sync.Mutex
	db        *leveldb.DB
	readOnly  bool
}

// open a LevelDB directory
func openLevelDB(name string, readOnly bool) (*levelDBAccess, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return &levelDBAccess{
		db:       db,
		readOnly: readOnly,
	}, nil
}

// open a LevelDB held entirely in memory
func openMemory() (*levelDBAccess, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return &levelDBAccess{
		db: db,
	}, nil
}

func (d *levelDBAccess) Get(key []byte) ([]byte, error) {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return value, nil
}

func (d *levelDBAccess) Put(key []byte, value []byte) error {
	if d.readOnly {
		return fault.ErrReadOnly
	}
	d.writeLock.Lock()
	defer d.writeLock.Unlock()
	return d.db.Put(key, value, nil)
}

func (d *levelDBAccess) Delete(key []byte) error {
	if d.readOnly {
		return fault.ErrReadOnly
	}
	d.writeLock.Lock()
	defer d.writeLock.Unlock()
	return d.db.Delete(key, nil)
}

func (d *levelDBAccess) Iterator(start []byte, limit []byte) rawIterator {
	return d.db.NewIterator(&ldb_util.Range{Start: start, Limit: limit}, nil)
}

// Begin - start a transaction
//
// LevelDB has no conflict detection so transactions are serialised:
// Begin blocks until any other transaction has ended
func (d *levelDBAccess) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.ErrReadOnly
	}
	d.writeLock.Lock()
	return &levelDBTransaction{
		access: d,
		batch:  new(leveldb.Batch),
		cache:  newCache(),
	}, nil
}

func (d *levelDBAccess) Close() error {
	return d.db.Close()
}

// a batch of writes plus a cache of them so reads inside the
// transaction observe its own writes
type levelDBTransaction struct {
	access *levelDBAccess
	batch  *leveldb.Batch
	cache  Cache
	done   bool
}

func (t *levelDBTransaction) Get(key []byte) ([]byte, error) {
	if t.done {
		return nil, fault.ErrTransactionClosed
	}
	if value, found := t.cache.Get(string(key)); found {
		return value, nil
	}
	return t.access.Get(key)
}

func (t *levelDBTransaction) Put(key []byte, value []byte) error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	v := make([]byte, len(value))
	copy(v, value)
	t.batch.Put(key, v)
	t.cache.Set(dbPut, string(key), v)
	return nil
}

func (t *levelDBTransaction) Delete(key []byte) error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	t.batch.Delete(key)
	t.cache.Set(dbDelete, string(key), nil)
	return nil
}

func (t *levelDBTransaction) Commit() error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	defer t.end()
	if 0 == t.batch.Len() {
		return nil
	}
	return t.access.db.Write(t.batch, nil)
}

func (t *levelDBTransaction) Abort() {
	if t.done {
		return
	}
	t.end()
}

func (t *levelDBTransaction) end() {
	t.done = true
	t.batch.Reset()
	t.cache.Clear()
	t.access.writeLock.Unlock()
}
