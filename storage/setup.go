// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/logger"
)

// storage engines
const (
	LevelDB = "leveldb"
	Badger  = "badger"
	Memory  = "memory"
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets   *PoolHandle `prefix:"A"`
	TestData *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
)

// Database - an open engine and its pools
type Database struct {
	sync.Mutex
	Pools

	backend string
	access  Access
	log     *logger.L
}

// Open - open up a database
//
// name is a directory for leveldb and badger (an empty name gives an
// in-memory badger) and is ignored for memory
func Open(backend string, name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	var access Access
	var err error
	switch backend {
	case LevelDB:
		access, err = openLevelDB(name, readOnly)
	case Badger:
		access, err = openBadger(name, readOnly, logger.New("badger"))
	case Memory:
		access, err = openMemory()
	default:
		return nil, fault.ErrUnknownBackend
	}
	if nil != err {
		log.Errorf("open %s: %q  error: %s", backend, name, err)
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			access.Close()
		}
	}()

	version, err := getVersion(access)
	if nil != err {
		return nil, err
	}

	switch {
	case 0 == version && !readOnly:
		// database was empty so tag as current version
		err = putVersion(access, currentVersion)
		if nil != err {
			return nil, err
		}
	case 0 == version:
	case currentVersion != version:
		log.Criticalf("database version: %d  current version: %d", version, currentVersion)
		return nil, fault.ErrDatabaseVersion
	}

	d := &Database{
		backend: backend,
		access:  access,
		log:     log,
	}
	err = d.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened %s: %q  read only: %t", backend, name, readOnly)

	ok = true // prevent db close
	return d, nil
}

// fill in each pool from its struct tag
func (d *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pools)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pools).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			access: d.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Backend - name of the engine in use
func (d *Database) Backend() string {
	return d.backend
}

// Close - close the database
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if nil == d.access {
		return nil
	}
	err := d.access.Close()
	d.access = nil
	d.log.Info("closed")
	d.log.Flush()
	return err
}

// return:
//   version number, zero for an empty database
func getVersion(access Access) (int, error) {
	versionValue, err := access.Get(versionKey)
	if nil != err {
		return 0, err
	}
	if nil == versionValue {
		return 0, nil
	}

	if 4 != len(versionValue) {
		return 0, fault.ErrInvalidVersionLength
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(access Access, version int) error {
	value := make([]byte, 4)
	binary.BigEndian.PutUint32(value, uint32(version))

	return access.Put(versionKey, value)
}
