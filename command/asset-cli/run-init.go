// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/asset"
)

type initReply struct {
	Seeded []string `json:"seeded"`
}

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	err := m.registry.InitLedger()
	if nil != err {
		return err
	}

	reply := initReply{}
	for _, a := range asset.Seeds() {
		reply.Seeded = append(reply.Seeded, a.ID)
	}
	return printJson(m.w, reply)
}
