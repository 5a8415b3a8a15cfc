// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

var versionKey = []byte("\x00VERSION")

func TestOpenUnknownBackend(t *testing.T) {
	db, err := storage.Open("postgres", "", storage.ReadWrite)
	assert.Equal(t, fault.ErrUnknownBackend, err, "unknown backend accepted")
	assert.Nil(t, db, "database returned on error")
}

func TestOpenWritesVersion(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.Open(storage.LevelDB, dir, storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	assert.Equal(t, storage.LevelDB, db.Backend(), "wrong backend")
	assert.Nil(t, db.Assets.Put("k", []byte("v")), "put error")
	assert.Nil(t, db.Close(), "close error")
	assert.Nil(t, db.Close(), "second close error")

	raw, err := leveldb.OpenFile(dir, nil)
	if !assert.Nil(t, err, "raw open error") {
		return
	}
	version, err := raw.Get(versionKey, nil)
	assert.Nil(t, err, "version missing")
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, version, "wrong version bytes")
	raw.Close()

	// reopen keeps the data
	db, err = storage.Open(storage.LevelDB, dir, storage.ReadWrite)
	if !assert.Nil(t, err, "reopen error") {
		return
	}
	value, _ := db.Assets.Get("k")
	assert.Equal(t, []byte("v"), value, "data lost on reopen")
	db.Close()
}

func TestOpenReadOnly(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.Open(storage.LevelDB, dir, storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	assert.Nil(t, db.Assets.Put("k", []byte("v")), "put error")
	db.Close()

	db, err = storage.Open(storage.LevelDB, dir, storage.ReadOnly)
	if !assert.Nil(t, err, "read only open error") {
		return
	}
	defer db.Close()

	value, err := db.Assets.Get("k")
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("v"), value, "wrong value")

	assert.Equal(t, fault.ErrReadOnly, db.Assets.Put("x", []byte("y")), "put allowed")
	assert.Equal(t, fault.ErrReadOnly, db.Assets.Delete("k"), "delete allowed")
	_, err = db.Assets.Begin()
	assert.Equal(t, fault.ErrReadOnly, err, "begin allowed")
}

func TestOpenRejectsOtherVersion(t *testing.T) {
	items := []struct {
		version []byte
		err     error
	}{
		{[]byte{0x00, 0x00, 0x02, 0x00}, fault.ErrDatabaseVersion},
		{[]byte{0x00, 0x00, 0x00, 0x01}, fault.ErrDatabaseVersion},
		{[]byte{0x01, 0x00}, fault.ErrInvalidVersionLength},
	}

	for i, item := range items {
		dir := t.TempDir()
		raw, err := leveldb.OpenFile(dir, nil)
		if !assert.Nil(t, err, "%d: raw open error", i) {
			continue
		}
		assert.Nil(t, raw.Put(versionKey, item.version, nil), "%d: raw put error", i)
		raw.Close()

		db, err := storage.Open(storage.LevelDB, dir, storage.ReadWrite)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Nil(t, db, "%d: database returned on error", i)
	}
}

func TestOpenReadOnlyMissing(t *testing.T) {
	db, err := storage.Open(storage.LevelDB, t.TempDir()+"/absent", storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened read only")
	assert.Nil(t, db, "database returned on error")
}
