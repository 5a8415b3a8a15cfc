// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/logger"
)

type badgerAccess struct {
	db       *badger.DB
	readOnly bool
}

// open a Badger directory, or an in-memory instance for an empty name
func openBadger(name string, readOnly bool, log *logger.L) (*badgerAccess, error) {
	var opts badger.Options
	if "" == name {
		opts = badger.DefaultOptions("").WithInMemory(true)
		readOnly = false
	} else {
		opts = badger.DefaultOptions(name).WithReadOnly(readOnly)
	}
	opts = opts.WithLogger(&badgerLogger{log: log})

	db, err := badger.Open(opts)
	if nil != err {
		return nil, err
	}
	return &badgerAccess{
		db:       db,
		readOnly: readOnly,
	}, nil
}

func (d *badgerAccess) Get(key []byte) ([]byte, error) {
	var value []byte
	err := d.db.View(func(txn *badger.Txn) error {
		v, err := txnGet(txn, key)
		value = v
		return err
	})
	if nil != err {
		return nil, err
	}
	return value, nil
}

func (d *badgerAccess) Put(key []byte, value []byte) error {
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (d *badgerAccess) Delete(key []byte) error {
	if d.readOnly {
		return fault.ErrReadOnly
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (d *badgerAccess) Iterator(start []byte, limit []byte) rawIterator {
	txn := d.db.NewTransaction(false)
	return &badgerIterator{
		txn:   txn,
		it:    txn.NewIterator(badger.DefaultIteratorOptions),
		start: start,
		limit: limit,
	}
}

// Begin - start a read-write transaction
//
// Badger detects conflicts between concurrent transactions: Commit
// returns badger.ErrConflict when a key read by this transaction was
// written by another one that committed first
func (d *badgerAccess) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.ErrReadOnly
	}
	return &badgerTransaction{
		txn: d.db.NewTransaction(true),
	}, nil
}

func (d *badgerAccess) Close() error {
	return d.db.Close()
}

func txnGet(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if badger.ErrKeyNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return item.ValueCopy(nil)
}

type badgerTransaction struct {
	txn  *badger.Txn
	err  error
	done bool
}

func (t *badgerTransaction) Get(key []byte) ([]byte, error) {
	if t.done {
		return nil, fault.ErrTransactionClosed
	}
	return txnGet(t.txn, key)
}

func (t *badgerTransaction) Put(key []byte, value []byte) error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	err := t.txn.Set(key, value)
	if nil != err && nil == t.err {
		t.err = err
	}
	return err
}

func (t *badgerTransaction) Delete(key []byte) error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	err := t.txn.Delete(key)
	if nil != err && nil == t.err {
		t.err = err
	}
	return err
}

func (t *badgerTransaction) Commit() error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	t.done = true
	if nil != t.err {
		t.txn.Discard()
		return t.err
	}
	return t.txn.Commit()
}

func (t *badgerTransaction) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.txn.Discard()
}

// iterate [start, limit) inside a read-only transaction
type badgerIterator struct {
	txn      *badger.Txn
	it       *badger.Iterator
	start    []byte
	limit    []byte
	started  bool
	finished bool
	key      []byte
	value    []byte
	err      error
}

func (i *badgerIterator) Next() bool {
	if i.finished {
		return false
	}
	if i.started {
		i.it.Next()
	} else {
		i.it.Seek(i.start)
		i.started = true
	}

	if !i.it.Valid() {
		i.finished = true
		return false
	}
	item := i.it.Item()
	if nil != i.limit && bytes.Compare(item.Key(), i.limit) >= 0 {
		i.finished = true
		return false
	}

	i.key = item.KeyCopy(i.key[:0])
	i.value, i.err = item.ValueCopy(i.value[:0])
	if nil != i.err {
		i.finished = true
		return false
	}
	return true
}

func (i *badgerIterator) Key() []byte {
	return i.key
}

func (i *badgerIterator) Value() []byte {
	return i.value
}

func (i *badgerIterator) Error() error {
	return i.err
}

func (i *badgerIterator) Release() {
	if nil == i.it {
		return
	}
	i.it.Close()
	i.txn.Discard()
	i.it = nil
	i.finished = true
}

// route Badger's own messages to a logger channel
type badgerLogger struct {
	log *logger.L
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Errorf(format, args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.Warnf(format, args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.log.Infof(format, args...)
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.Debugf(format, args...)
}
