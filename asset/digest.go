// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetregistry/digest"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

// AssetDigest - SHA3-256 of the stored bytes of one asset
func (r *Registry) AssetDigest(id string) (digest.Digest, error) {
	value, err := r.store.Get(id)
	if nil != err {
		return digest.Digest{}, err
	}
	if 0 == len(value) {
		return digest.Digest{}, fault.ErrAssetNotFound
	}
	return digest.NewDigest(value), nil
}

// StateDigest - SHA3-256 over every key and stored value in key order
//
// keys and values are hashed as raw length-prefixed bytes so replicas
// holding the same state produce the same digest, and any byte of
// difference changes it
func (r *Registry) StateDigest() (digest.Digest, error) {
	fields := digest.NewFields()
	err := storage.NewFetchCursor(r.store).Map(func(key string, value []byte) error {
		fields.Add([]byte(key))
		fields.Add(value)
		return nil
	})
	if nil != err {
		return digest.Digest{}, err
	}
	return fields.Sum(), nil
}
