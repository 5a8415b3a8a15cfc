// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/canonical"
	"github.com/bitmark-inc/assetregistry/storage"
)

type pageReply struct {
	Assets canonical.Value `json:"assets"`
	Next   string          `json:"next,omitempty"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if 0 == count {
		s, err := m.registry.GetAllAssets()
		if nil != err {
			return err
		}
		return printJson(m.w, json.RawMessage(s))
	}

	cursor := storage.NewFetchCursor(m.db.Assets).Seek(c.String("start"))
	// one extra element gives the start of the next page
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return err
	}
	next := ""
	if len(elements) > count {
		next = elements[count].Key
		elements = elements[:count]
	}

	reply := pageReply{
		Assets: canonical.Sequence(),
		Next:   next,
	}
	for _, e := range elements {
		record, err := canonical.Decode(e.Value)
		if nil != err {
			record = canonical.String(string(e.Value))
		}
		reply.Assets.Append(record)
	}
	return printJson(m.w, reply)
}
