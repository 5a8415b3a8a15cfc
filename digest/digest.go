// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - SHA3-256 digests of canonical records
//
// replicas compare these instead of the full encoded state
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetregistry/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
//
// printed and marshalled as lower case hex in byte order
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// String - hex for the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - tagged hex for the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - read hex for the fmt package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidDigest
	}
	_, err := hex.Decode(digest[:], s)
	return err
}

// Fields - incremental digest over a sequence of byte fields
//
// each field is preceded by its length as a big-endian uint64, so no
// two different field sequences hash the same text
type Fields struct {
	h hash.Hash
}

// NewFields - start an empty field digest
func NewFields() *Fields {
	return &Fields{
		h: sha3.New256(),
	}
}

// Add - append one field
func (f *Fields) Add(field []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(field)))
	f.h.Write(length[:])
	f.h.Write(field)
}

// Sum - digest of all fields added so far
func (f *Fields) Sum() Digest {
	var d Digest
	copy(d[:], f.h.Sum(nil))
	return d
}
