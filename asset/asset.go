// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetregistry/canonical"
	"github.com/bitmark-inc/assetregistry/fault"
)

// field names of an encoded asset
const (
	fieldID         = "ID"
	fieldFilename   = "Filename"
	fieldSize       = "Size"
	fieldHash       = "Hash"
	fieldSender     = "Sender"
	fieldUploadDate = "UploadDate"
)

// Asset - one registered file
type Asset struct {
	ID         string `json:"ID"`
	Filename   string `json:"Filename"`
	Size       uint64 `json:"Size"`
	Hash       string `json:"Hash"`
	Sender     string `json:"Sender"`
	UploadDate int64  `json:"UploadDate"` // milliseconds since the Unix epoch
}

// Value - the asset as a canonical record
func (a *Asset) Value() canonical.Value {
	return canonical.Mapping(
		canonical.Field(fieldID, canonical.String(a.ID)),
		canonical.Field(fieldFilename, canonical.String(a.Filename)),
		canonical.Field(fieldSize, canonical.Uint(a.Size)),
		canonical.Field(fieldHash, canonical.String(a.Hash)),
		canonical.Field(fieldSender, canonical.String(a.Sender)),
		canonical.Field(fieldUploadDate, canonical.Int(a.UploadDate)),
	)
}

// Pack - canonical bytes of an asset
func (a *Asset) Pack() ([]byte, error) {
	return canonical.Encode(a.Value())
}

// Unpack - turn stored bytes back into an asset
//
// all six fields must be present with the right types and nothing else
func Unpack(data []byte) (*Asset, error) {
	record, err := canonical.Decode(data)
	if nil != err {
		return nil, fault.ErrDecodeFailure
	}
	return FromValue(record)
}

// FromValue - convert a decoded record to an asset
func FromValue(record canonical.Value) (*Asset, error) {
	if canonical.KindMapping != record.Kind() {
		return nil, fault.ErrInvalidRecord
	}
	for _, e := range record.Entries() {
		switch e.Key {
		case fieldID, fieldFilename, fieldSize, fieldHash, fieldSender, fieldUploadDate:
		default:
			return nil, fault.ErrInvalidRecord
		}
	}

	a := &Asset{}
	texts := []struct {
		name  string
		field *string
	}{
		{fieldID, &a.ID},
		{fieldFilename, &a.Filename},
		{fieldHash, &a.Hash},
		{fieldSender, &a.Sender},
	}
	for _, s := range texts {
		v, ok := record.Get(s.name)
		if !ok {
			return nil, fault.ErrMissingField
		}
		*s.field, ok = v.AsString()
		if !ok {
			return nil, fault.ErrWrongFieldType
		}
	}

	size, ok := record.Get(fieldSize)
	if !ok {
		return nil, fault.ErrMissingField
	}
	a.Size, ok = size.AsUint()
	if !ok {
		if n, isInt := size.AsInt(); isInt && n < 0 {
			return nil, fault.ErrNegativeSize
		}
		return nil, fault.ErrWrongFieldType
	}

	uploadDate, ok := record.Get(fieldUploadDate)
	if !ok {
		return nil, fault.ErrMissingField
	}
	a.UploadDate, ok = uploadDate.AsInt()
	if !ok {
		return nil, fault.ErrWrongFieldType
	}

	return a, nil
}
