// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/storage"
)

// two writers both see the key absent and both create it
func TestBadgerDetectsConflict(t *testing.T) {
	db, err := storage.Open(storage.Badger, "", storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	defer db.Close()

	first, err := db.Assets.Begin()
	assert.Nil(t, err, "first begin error")
	second, err := db.Assets.Begin()
	assert.Nil(t, err, "second begin error")

	for _, b := range []storage.Batch{first, second} {
		value, err := b.Get("race")
		assert.Nil(t, err, "get error")
		assert.Nil(t, value, "key already present")
	}

	assert.Nil(t, first.Put("race", []byte("first")), "first put error")
	assert.Nil(t, second.Put("race", []byte("second")), "second put error")

	assert.Nil(t, first.Commit(), "first commit error")
	assert.Equal(t, badger.ErrConflict, second.Commit(), "conflict not detected")

	value, _ := db.Assets.Get("race")
	assert.Equal(t, []byte("first"), value, "losing write applied")
}

// LevelDB has no conflict detection so a second transaction waits
func TestLevelDBSerialisesTransactions(t *testing.T) {
	db, err := storage.Open(storage.Memory, "", storage.ReadWrite)
	if !assert.Nil(t, err, "open error") {
		return
	}
	defer db.Close()

	first, err := db.Assets.Begin()
	if !assert.Nil(t, err, "first begin error") {
		return
	}

	started := make(chan storage.Batch)
	go func() {
		second, _ := db.Assets.Begin()
		started <- second
	}()

	select {
	case <-started:
		t.Fatal("second transaction started while the first was open")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Nil(t, first.Put("k", []byte("first")), "put error")
	assert.Nil(t, first.Commit(), "commit error")

	select {
	case second := <-started:
		value, err := second.Get("k")
		assert.Nil(t, err, "get error")
		assert.Equal(t, []byte("first"), value, "committed write not visible")
		second.Abort()
	case <-time.After(5 * time.Second):
		t.Fatal("second transaction never started")
	}
}
