// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type existsReply struct {
	Id     string `json:"id"`
	Exists bool   `json:"exists"`
}

type deleteReply struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	return printStored(m, id)
}

func runExists(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	found, err := m.registry.AssetExists(id)
	if nil != err {
		return err
	}
	return printJson(m.w, existsReply{Id: id, Exists: found})
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkAssetId(c.String("id"))
	if nil != err {
		return err
	}

	err = m.registry.DeleteAsset(id)
	if nil != err {
		return err
	}
	return printJson(m.w, deleteReply{Id: id, Deleted: true})
}
