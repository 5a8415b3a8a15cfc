// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/storage"
)

// a pool whose batches panic on Put
type panickingPool struct {
	*storage.PoolHandle
}

func (p panickingPool) Begin() (storage.Batch, error) {
	batch, err := p.PoolHandle.Begin()
	if nil != err {
		return nil, err
	}
	return panickingBatch{Batch: batch}, nil
}

type panickingBatch struct {
	storage.Batch
}

func (panickingBatch) Put(key string, value []byte) error {
	panic("put: " + key)
}

func TestPanicInBatchReleasesStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, db *storage.Database, r *asset.Registry) {
		broken := asset.New(panickingPool{PoolHandle: db.Assets}, newTestClock().now)
		assert.Panics(t, func() { broken.CreateAsset("a1", "x.txt", 5, "h1", "alice") }, "no panic")
		assert.Panics(t, func() { broken.InitLedger() }, "no panic")

		// a batch left open would block the next writer
		done := make(chan error, 1)
		go func() {
			done <- r.CreateAsset("a1", "x.txt", 5, "h1", "alice")
		}()
		select {
		case err := <-done:
			assert.Nil(t, err, "create error")
		case <-time.After(5 * time.Second):
			assert.Fail(t, "store still held by the aborted batch")
			return
		}

		found, err := r.AssetExists("a1")
		assert.Nil(t, err, "exists error")
		assert.True(t, found, "asset missing")

		seeded, err := r.AssetExists("asset1")
		assert.Nil(t, err, "exists error")
		assert.False(t, seeded, "aborted seed written")
	})
}
