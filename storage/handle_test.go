// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

func TestPutGetDelete(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		pool := db.Assets

		value, err := pool.Get("missing")
		assert.Nil(t, err, "get error")
		assert.Nil(t, value, "absent key has a value")

		err = pool.Put("k1", []byte("v1"))
		assert.Nil(t, err, "put error")

		value, err = pool.Get("k1")
		assert.Nil(t, err, "get error")
		assert.Equal(t, []byte("v1"), value, "wrong value")

		err = pool.Put("k1", []byte("v2"))
		assert.Nil(t, err, "overwrite error")
		value, _ = pool.Get("k1")
		assert.Equal(t, []byte("v2"), value, "overwrite lost")

		err = pool.Delete("k1")
		assert.Nil(t, err, "delete error")
		value, err = pool.Get("k1")
		assert.Nil(t, err, "get after delete error")
		assert.Nil(t, value, "deleted key has a value")

		assert.Nil(t, pool.Delete("never-written"), "deleting an absent key failed")
	})
}

func TestPutRejectsInvalidKey(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		assert.Equal(t, fault.ErrInvalidKey, db.Assets.Put("", []byte("x")), "empty key accepted")
		assert.Equal(t, fault.ErrInvalidKey, db.Assets.Put("bad\xff", []byte("x")), "invalid UTF-8 accepted")
	})
}

func TestPoolsAreSeparate(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		assert.Nil(t, db.Assets.Put("shared", []byte("asset")), "put error")
		assert.Nil(t, db.TestData.Put("shared", []byte("test")), "put error")
		assert.Nil(t, db.TestData.Put("other", []byte("test")), "put error")

		value, _ := db.Assets.Get("shared")
		assert.Equal(t, []byte("asset"), value, "pool value leaked")

		assert.Equal(t, []string{"shared"}, keysOf(scanAll(t, db.Assets, "", "")), "scan crossed pools")
		assert.Equal(t, []string{"other", "shared"}, keysOf(scanAll(t, db.TestData, "", "")), "scan crossed pools")
	})
}

func TestRangeScan(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		pool := db.Assets
		for _, k := range []string{"asset3", "Zulu", "asset1", "asset10", "asset2", "b"} {
			assert.Nil(t, pool.Put(k, []byte("value-"+k)), "put error")
		}

		all := scanAll(t, pool, "", "")
		assert.Equal(t, []string{"Zulu", "asset1", "asset10", "asset2", "asset3", "b"}, keysOf(all), "wrong order")
		assert.Equal(t, []byte("value-asset10"), all[2].Value, "wrong value")

		assert.Equal(t, []string{"asset1", "asset10", "asset2"}, keysOf(scanAll(t, pool, "asset1", "asset3")), "start inclusive, end exclusive")
		assert.Equal(t, []string{"asset3", "b"}, keysOf(scanAll(t, pool, "asset3", "")), "unbounded end")
		assert.Equal(t, []string{"Zulu"}, keysOf(scanAll(t, pool, "", "a")), "unbounded start")
		assert.Equal(t, []string{}, keysOf(scanAll(t, pool, "c", "")), "scan past the end")
		assert.Equal(t, []string{}, keysOf(scanAll(t, pool, "b", "a")), "inverted range")
	})
}

func TestRangeScanEmpty(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		// the version key is outside every pool
		assert.Equal(t, 0, len(scanAll(t, db.Assets, "", "")), "empty pool returned items")
	})
}

func TestBatchReadsItsOwnWrites(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		pool := db.Assets
		assert.Nil(t, pool.Put("old", []byte("1")), "put error")

		batch, err := pool.Begin()
		if !assert.Nil(t, err, "begin error") {
			return
		}

		assert.Nil(t, batch.Put("new", []byte("2")), "batch put error")
		assert.Nil(t, batch.Delete("old"), "batch delete error")

		value, err := batch.Get("new")
		assert.Nil(t, err, "batch get error")
		assert.Equal(t, []byte("2"), value, "pending write not visible")

		value, err = batch.Get("old")
		assert.Nil(t, err, "batch get error")
		assert.Nil(t, value, "pending delete not visible")

		// nothing reaches the pool before commit
		value, _ = pool.Get("new")
		assert.Nil(t, value, "uncommitted write visible")
		value, _ = pool.Get("old")
		assert.Equal(t, []byte("1"), value, "uncommitted delete visible")

		assert.Nil(t, batch.Commit(), "commit error")

		value, _ = pool.Get("new")
		assert.Equal(t, []byte("2"), value, "committed write lost")
		value, _ = pool.Get("old")
		assert.Nil(t, value, "committed delete lost")

		assert.Equal(t, fault.ErrTransactionClosed, batch.Commit(), "second commit accepted")
	})
}

func TestBatchAbort(t *testing.T) {
	forEachEngine(t, func(t *testing.T, db *storage.Database) {
		pool := db.Assets

		batch, err := pool.Begin()
		if !assert.Nil(t, err, "begin error") {
			return
		}
		assert.Nil(t, batch.Put("k", []byte("v")), "batch put error")
		batch.Abort()
		batch.Abort()

		value, _ := pool.Get("k")
		assert.Nil(t, value, "aborted write visible")

		// a new batch can start after abort
		batch, err = pool.Begin()
		assert.Nil(t, err, "begin after abort error")
		batch.Abort()
	})
}
