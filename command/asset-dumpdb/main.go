// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultCount = 10

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "delete", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "hex", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
		{Long: "backend", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		listTags(os.Stdout)
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--verbose] [--backend=leveldb|badger] [--count=N] [--hex] [--delete] --file=DIR tag [start-key]", program)
	}

	backend := storage.LevelDB
	if len(options["backend"]) > 0 {
		backend = strings.ToLower(options["backend"][0])
	}

	count := defaultCount
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 1 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	deleteKeys := len(options["delete"]) > 0
	tag := arguments[0]
	start := ""
	if len(arguments) > 1 {
		start = arguments[1]
	}

	if len(options["verbose"]) > 0 {
		fmt.Printf("tag: %s  backend: %s  database: %q  start: %q\n", tag, backend, options["file"][0], start)
	}

	// errors only, on the console
	err = logger.Initialise(logger.Configuration{
		Directory: os.TempDir(),
		File:      "asset-dumpdb.log",
		Size:      1048576,
		Count:     1,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	mode := storage.ReadOnly
	if deleteKeys {
		mode = storage.ReadWrite
	}
	db, err := storage.Open(backend, options["file"][0], mode)
	if nil != err {
		exitwithstatus.Message("%s: open database failed with error: %s", program, err)
	}
	defer db.Close()

	pool := poolByTag(db.Pools, tag)
	if nil == pool {
		exitwithstatus.Message("%s: no pool has tag: %q", program, tag)
	}

	elements, err := storage.NewFetchCursor(pool).Seek(start).Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: fetch failed with error: %s", program, err)
	}

	input := bufio.NewScanner(os.Stdin)
	for i, e := range elements {
		fmt.Printf("%d: key: %q\n", i, e.Key)
		if len(options["hex"]) > 0 {
			hexDump(os.Stdout, fmt.Sprintf("%d: ", i), e.Value)
		} else {
			fmt.Printf("%d: value: %s\n", i, e.Value)
		}

		if !deleteKeys {
			continue
		}
		switch confirm(input, os.Stdout, fmt.Sprintf("%d: delete %q ? [yNq]: ", i, e.Key)) {
		case answerYes:
			if err := pool.Delete(e.Key); nil != err {
				exitwithstatus.Message("%s: delete failed with error: %s", program, err)
			}
			fmt.Printf("%d: deleted: %q\n", i, e.Key)
		case answerQuit:
			fmt.Printf("terminated\n")
			return
		}
	}
}

// the prefix tag of every pool
func listTags(w io.Writer) {
	poolType := reflect.TypeOf(storage.Pools{})
	fmt.Fprintf(w, "tags:\n")
	for i := 0; i < poolType.NumField(); i += 1 {
		field := poolType.Field(i)
		fmt.Fprintf(w, "  %s  %s\n", field.Tag.Get("prefix"), field.Name)
	}
}

// the pool whose prefix tag matches, nil if none does
func poolByTag(pools storage.Pools, tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(pools)
	poolValue := reflect.ValueOf(pools)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			p, _ := poolValue.Field(i).Interface().(*storage.PoolHandle)
			return p
		}
	}
	return nil
}

type answer int

const (
	answerNo answer = iota
	answerYes
	answerQuit
)

// ask until the reply is understood; end of input is quit
func confirm(input *bufio.Scanner, w io.Writer, question string) answer {
	for {
		fmt.Fprint(w, question)
		if !input.Scan() {
			return answerQuit
		}
		switch strings.ToLower(strings.TrimSpace(input.Text())) {
		case "y", "yes":
			return answerYes
		case "", "n", "no":
			return answerNo
		case "q", "quit":
			return answerQuit
		}
		fmt.Fprintf(w, "please answer yes, no or quit\n")
	}
}

// sixteen bytes per line: offset, hex, printable text
func hexDump(w io.Writer, prefix string, data []byte) {
	const perLine = 16
	for offset := 0; offset < len(data); offset += perLine {
		end := offset + perLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]

		fmt.Fprintf(w, "%s%04x ", prefix, offset)
		for j := 0; j < perLine; j += 1 {
			if j < len(line) {
				fmt.Fprintf(w, " %02x", line[j])
			} else {
				fmt.Fprint(w, "   ")
			}
		}
		text := make([]byte, len(line))
		for j, c := range line {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			text[j] = c
		}
		fmt.Fprintf(w, "  |%s|\n", text)
	}
}
