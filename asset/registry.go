// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"time"

	"github.com/bitmark-inc/assetregistry/canonical"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Registry - asset operations over one store
type Registry struct {
	log   *logger.L
	store storage.Store
	now   func() time.Time
}

// the part of a store or batch used by a write operation
type readWriter interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// New - create a registry over a store
//
// now supplies UploadDate; nil means time.Now
func New(store storage.Store, now func() time.Time) *Registry {
	if nil == now {
		now = time.Now
	}
	return &Registry{
		log:   logger.New("asset"),
		store: store,
		now:   now,
	}
}

// run one write operation, inside a batch if the store has them
func (r *Registry) update(f func(rw readWriter) error) error {
	batcher, ok := r.store.(storage.Batcher)
	if !ok {
		return f(r.store)
	}

	batch, err := batcher.Begin()
	if nil != err {
		return err
	}

	// Abort also runs if f panics so the batch never stays open
	committed := false
	defer func() {
		if !committed {
			batch.Abort()
		}
	}()

	err = f(batch)
	if nil != err {
		return err
	}
	committed = true
	return batch.Commit()
}

func exists(rw readWriter, id string) (bool, error) {
	value, err := rw.Get(id)
	if nil != err {
		return false, err
	}
	return len(value) > 0, nil
}

// InitLedger - write the seed assets
//
// existing seeds are overwritten with identical records
func (r *Registry) InitLedger() error {
	packed := make([][]byte, len(seeds))
	for i := range seeds {
		p, err := seeds[i].Pack()
		fault.PanicIfError("asset: pack seed", err)
		packed[i] = p
	}

	err := r.update(func(rw readWriter) error {
		for i := range seeds {
			err := rw.Put(seeds[i].ID, packed[i])
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		r.log.Errorf("init ledger error: %s", err)
		return err
	}
	r.log.Infof("init ledger: %d assets", len(seeds))
	return nil
}

// CreateAsset - add a new asset, fails if the ID is present
func (r *Registry) CreateAsset(id string, filename string, size uint64, hash string, sender string) error {
	if "" == id {
		return fault.ErrEmptyAssetId
	}

	err := r.update(func(rw readWriter) error {
		found, err := exists(rw, id)
		if nil != err {
			return err
		}
		if found {
			return fault.ErrAssetAlreadyExists
		}
		return r.write(rw, id, filename, size, hash, sender)
	})
	if nil != err {
		r.log.Debugf("create: %q  error: %s", id, err)
		return err
	}
	r.log.Infof("create: %q", id)
	return nil
}

// ReadAsset - the stored encoding of an asset
func (r *Registry) ReadAsset(id string) (string, error) {
	value, err := r.store.Get(id)
	if nil != err {
		return "", err
	}
	if 0 == len(value) {
		r.log.Debugf("read: %q  not found", id)
		return "", fault.ErrAssetNotFound
	}
	return string(value), nil
}

// GetAsset - read and unpack an asset
func (r *Registry) GetAsset(id string) (*Asset, error) {
	s, err := r.ReadAsset(id)
	if nil != err {
		return nil, err
	}
	return Unpack([]byte(s))
}

// UpdateAsset - replace every field of an existing asset
func (r *Registry) UpdateAsset(id string, filename string, size uint64, hash string, sender string) error {
	err := r.update(func(rw readWriter) error {
		found, err := exists(rw, id)
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrAssetNotFound
		}
		return r.write(rw, id, filename, size, hash, sender)
	})
	if nil != err {
		r.log.Debugf("update: %q  error: %s", id, err)
		return err
	}
	r.log.Infof("update: %q", id)
	return nil
}

// DeleteAsset - remove an existing asset
func (r *Registry) DeleteAsset(id string) error {
	err := r.update(func(rw readWriter) error {
		found, err := exists(rw, id)
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrAssetNotFound
		}
		return rw.Delete(id)
	})
	if nil != err {
		r.log.Debugf("delete: %q  error: %s", id, err)
		return err
	}
	r.log.Infof("delete: %q", id)
	return nil
}

// AssetExists - true if the ID holds a non-empty value
func (r *Registry) AssetExists(id string) (bool, error) {
	return exists(r.store, id)
}

// GetAllAssets - canonical encoding of every stored record in key order
//
// a value that does not decode is included as its raw text; the whole
// store is held in memory, so this is only for small registries
func (r *Registry) GetAllAssets() (string, error) {
	all := canonical.Sequence()
	err := storage.NewFetchCursor(r.store).Map(func(key string, value []byte) error {
		record, err := canonical.Decode(value)
		if nil != err {
			r.log.Warnf("list: %q  decode error: %s", key, err)
			record = canonical.String(string(value))
		}
		all.Append(record)
		return nil
	})
	if nil != err {
		return "", err
	}
	return canonical.EncodeToString(all)
}

// build, encode and store one asset with the current time
func (r *Registry) write(rw readWriter, id string, filename string, size uint64, hash string, sender string) error {
	a := &Asset{
		ID:         id,
		Filename:   filename,
		Size:       size,
		Hash:       hash,
		Sender:     sender,
		UploadDate: r.now().UnixMilli(),
	}
	packed, err := a.Pack()
	if nil != err {
		return err
	}
	return rw.Put(id, packed)
}
