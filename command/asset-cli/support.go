// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/assetregistry/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredFile = fault.InvalidError("file name is required")
	ErrRequiredId   = fault.InvalidError("asset id is required")
)

func checkAssetId(id string) (string, error) {
	if "" == id {
		return "", ErrRequiredId
	}
	return id, nil
}

func checkFileName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredFile
	}
	return name, nil
}

// the fields given to create and update
type assetFields struct {
	id       string
	filename string
	size     uint64
	hash     string
	sender   string
}

func (f *assetFields) print(m *metadata) {
	if !m.verbose {
		return
	}
	fmt.Fprintf(m.e, "id: %q\n", f.id)
	fmt.Fprintf(m.e, "filename: %q\n", f.filename)
	fmt.Fprintf(m.e, "size: %d\n", f.size)
	fmt.Fprintf(m.e, "hash: %q\n", f.hash)
	fmt.Fprintf(m.e, "sender: %q\n", f.sender)
}
