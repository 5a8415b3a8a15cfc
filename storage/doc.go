// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - ordered key/value store for the registry
//
// maintain separate pools of a number of elements in key->value form
//
// The engine is either LevelDB (on disk or in memory) or Badger.  The
// key space is split into a series of pools, each defined by a prefix
// byte obtained from the prefix tag in the struct defining the available
// pools.  A pool behaves as an independent ordered store whose keys are
// strings compared byte by byte.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. asset id     = UTF-8 text chosen by the client, never empty
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: big endian uint32
//
// Assets:
//
//   A ++ asset id              - one asset record
//                                data: canonical encoding of the record
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
