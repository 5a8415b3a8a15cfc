// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/snapshot"
)

type snapshotReply struct {
	File    string `json:"file"`
	Records int    `json:"records"`
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkFileName(c.String("output"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "writing snapshot: %q\n", name)
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}

	n, err := snapshot.Export(m.db.Assets, f)
	if nil != err {
		f.Close()
		return err
	}
	err = f.Close()
	if nil != err {
		return err
	}
	return printJson(m.w, snapshotReply{File: name, Records: n})
}

func runRestore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkFileName(c.String("input"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "reading snapshot: %q\n", name)
	}

	f, err := os.Open(name)
	if nil != err {
		return err
	}
	defer f.Close()

	n, err := snapshot.Import(f, m.db.Assets)
	if nil != err {
		return err
	}
	return printJson(m.w, snapshotReply{File: name, Records: n})
}
