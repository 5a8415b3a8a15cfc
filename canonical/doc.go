// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canonical - deterministic record encoding
//
// Records are trees of Value: null, bool, integers, floats, strings,
// sequences and mappings.  Encode turns a record into compact JSON text
// that depends only on the logical content:
//
//   mapping       {"a":1,"b":[true,null]}   keys sorted by code point, every depth
//   integer       -12 0 18446744073709551615
//   float         1.5 1e+21 0 1000000       shortest round trip, never -0;
//                                           integral values in the int64 or
//                                           uint64 range are written as integers
//   string        "x\n\u001f"               only quote, backslash, controls escaped
//
// Two replicas building the same record in any field order therefore
// write the same bytes.
package canonical
