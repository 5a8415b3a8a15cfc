// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - dump and restore a store as a CBOR stream
//
// the stream is a header followed by one record per key in ascending
// key order, all in RFC 8949 core deterministic encoding, so two
// replicas holding the same state write identical dumps:
//
//   {"count": n, "format": "assetregistry-snapshot", "version": 1}
//   {"key": k1, "value": v1}
//   ...
//   {"key": kn, "value": vn}
package snapshot

import (
	"errors"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// stream identification
const (
	Format  = "assetregistry-snapshot"
	Version = 1
)

type header struct {
	Format  string `cbor:"format"`
	Version uint64 `cbor:"version"`
	Count   uint64 `cbor:"count"`
}

type record struct {
	Key   string `cbor:"key"`
	Value []byte `cbor:"value"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	fault.PanicIfError("snapshot: CBOR encoder", err)

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	fault.PanicIfError("snapshot: CBOR decoder", err)
}

// Export - write every key of the store to w
//
// returns the number of records written
func Export(store storage.Store, w io.Writer) (int, error) {
	log := logger.New("snapshot")

	records := []record{}
	err := storage.NewFetchCursor(store).Map(func(key string, value []byte) error {
		records = append(records, record{Key: key, Value: value})
		return nil
	})
	if nil != err {
		log.Errorf("export scan error: %s", err)
		return 0, err
	}

	encoder := encMode.NewEncoder(w)
	err = encoder.Encode(header{
		Format:  Format,
		Version: Version,
		Count:   uint64(len(records)),
	})
	if nil != err {
		return 0, err
	}
	for i := range records {
		err = encoder.Encode(records[i])
		if nil != err {
			log.Errorf("export: %q  error: %s", records[i].Key, err)
			return i, err
		}
	}

	log.Infof("exported: %d records", len(records))
	return len(records), nil
}

// Import - read a dump from r and write its records into the store
//
// the whole stream is checked before anything is written; the writes
// form one batch when the store supports batches.  Keys not in the dump
// are left untouched.  Returns the number of records written
func Import(r io.Reader, store storage.Store) (int, error) {
	log := logger.New("snapshot")

	records, err := read(r)
	if nil != err {
		log.Errorf("import error: %s", err)
		return 0, err
	}

	if batcher, ok := store.(storage.Batcher); ok {
		batch, err := batcher.Begin()
		if nil != err {
			return 0, err
		}
		for _, rec := range records {
			err = batch.Put(rec.Key, rec.Value)
			if nil != err {
				batch.Abort()
				log.Errorf("import: %q  error: %s", rec.Key, err)
				return 0, err
			}
		}
		err = batch.Commit()
		if nil != err {
			log.Errorf("import commit error: %s", err)
			return 0, err
		}
	} else {
		for i, rec := range records {
			err = store.Put(rec.Key, rec.Value)
			if nil != err {
				log.Errorf("import: %q  error: %s", rec.Key, err)
				return i, err
			}
		}
	}

	log.Infof("imported: %d records", len(records))
	return len(records), nil
}

// decode and validate a complete stream
func read(r io.Reader) ([]record, error) {
	decoder := decMode.NewDecoder(r)

	var h header
	err := decoder.Decode(&h)
	if nil != err {
		return nil, streamError(err)
	}
	if Format != h.Format || Version != h.Version {
		return nil, fault.ErrSnapshotFormat
	}

	size := h.Count
	if size > 1024 {
		size = 1024
	}
	records := make([]record, 0, size)
	for i := uint64(0); i < h.Count; i += 1 {
		var rec record
		err = decoder.Decode(&rec)
		if nil != err {
			return nil, streamError(err)
		}
		if n := len(records); n > 0 {
			previous := records[n-1].Key
			if previous == rec.Key {
				return nil, fault.ErrDuplicateKey
			}
			if previous > rec.Key {
				return nil, fault.ErrSnapshotOrder
			}
		}
		records = append(records, rec)
	}

	var extra interface{}
	if err := decoder.Decode(&extra); io.EOF != err {
		return nil, fault.ErrTrailingData
	}
	return records, nil
}

// end of input inside the stream is truncation, anything else is
// not a snapshot
func streamError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fault.ErrSnapshotTruncated
	}
	return fault.ErrSnapshotFormat
}
