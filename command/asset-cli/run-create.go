// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"
)

func getAssetFields(c *cli.Context) (*assetFields, error) {
	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return nil, err
	}
	return &assetFields{
		id:       id,
		filename: c.String("filename"),
		size:     c.Uint64("size"),
		hash:     c.String("hash"),
		sender:   c.String("sender"),
	}, nil
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := getAssetFields(c)
	if nil != err {
		return err
	}
	f.print(m)

	err = m.registry.CreateAsset(f.id, f.filename, f.size, f.hash, f.sender)
	if nil != err {
		return err
	}
	return printStored(m, f.id)
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	f, err := getAssetFields(c)
	if nil != err {
		return err
	}
	f.print(m)

	err = m.registry.UpdateAsset(f.id, f.filename, f.size, f.hash, f.sender)
	if nil != err {
		return err
	}
	return printStored(m, f.id)
}

// print the record as it is now stored
func printStored(m *metadata, id string) error {
	s, err := m.registry.ReadAsset(id)
	if nil != err {
		return err
	}
	return printJson(m.w, json.RawMessage(s))
}
