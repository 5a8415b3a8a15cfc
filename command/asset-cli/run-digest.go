// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/digest"
)

type digestReply struct {
	Id     string        `json:"id,omitempty"`
	Digest digest.Digest `json:"digest"`
}

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id := c.String("id")

	var d digest.Digest
	var err error
	if "" == id {
		d, err = m.registry.StateDigest()
	} else {
		d, err = m.registry.AssetDigest(id)
	}
	if nil != err {
		return err
	}
	return printJson(m.w, digestReply{Id: id, Digest: d})
}
