// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/configuration"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	db       *storage.Database
	registry *asset.Registry
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that never write
var readOnlyCommands = map[string]bool{
	"read":   true,
	"exists": true,
	"list":   true,
	"digest": true,
	"dump":   true,
}

func main() {

	app := cli.NewApp()
	app.Name = "asset-cli"
	app.Usage = "operate an asset registry world state"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "",
			Usage:  "*configuration `FILE`",
			EnvVar: "ASSET_REGISTRY_CONFIG",
		},
	}

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*asset `ID`",
	}
	recordFlags := []cli.Flag{
		idFlag,
		cli.StringFlag{
			Name:  "filename, f",
			Value: "",
			Usage: " file `NAME`",
		},
		cli.Uint64Flag{
			Name:  "size, s",
			Value: 0,
			Usage: " file size in `BYTES`",
		},
		cli.StringFlag{
			Name:  "hash, x",
			Value: "",
			Usage: " content `DIGEST`",
		},
		cli.StringFlag{
			Name:  "sender, u",
			Value: "",
			Usage: " uploader `NAME`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "write the seed assets",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInit,
		},
		{
			Name:      "create",
			Usage:     "register a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     recordFlags,
			Action:    runCreate,
		},
		{
			Name:      "read",
			Usage:     "show one asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runRead,
		},
		{
			Name:      "update",
			Usage:     "replace every field of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     recordFlags,
			Action:    runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "remove an asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runDelete,
		},
		{
			Name:      "exists",
			Usage:     "check if an asset is registered",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runExists,
		},
		{
			Name:      "list",
			Usage:     "show all assets, or one page of them",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first asset `ID` of the page",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " page size `COUNT` (0 = everything)",
				},
			},
			Action: runList,
		},
		{
			Name:      "digest",
			Usage:     "SHA3-256 of one asset or of the whole state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: " asset `ID` (default: whole state)",
				},
			},
			Action: runDigest,
		},
		{
			Name:      "dump",
			Usage:     "write a snapshot of the state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*snapshot `FILE`",
				},
			},
			Action: runDump,
		},
		{
			Name:      "restore",
			Usage:     "load a snapshot into the state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "*snapshot `FILE`",
				},
			},
			Action: runRestore,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("configuration file is required")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(config.Logging)
		if nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", version, command)

		readOnly := storage.ReadWrite
		if readOnlyCommands[command] {
			readOnly = storage.ReadOnly
		}

		if verbose {
			fmt.Fprintf(e, "backend: %s  database: %q  read only: %t\n", config.Database.Backend, config.Database.Name, readOnly)
		}

		db, err := storage.Open(config.Database.Backend, config.Database.Name, readOnly)
		if nil != err {
			log.Criticalf("storage open error: %s", err)
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:     file,
			config:   config,
			db:       db,
			registry: asset.New(db.Assets, nil),
			log:      log,
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		err := m.db.Close()
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
