// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/assetregistry/fault"
)

// Decode - parse encoded bytes back into a value
//
// any JSON text is accepted, not only canonical output; integers become
// Int (or Uint above the int64 range) and decoded mappings hold their keys
// in sorted order
func Decode(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var item interface{}
	if err := decoder.Decode(&item); nil != err {
		return Value{}, err
	}

	// exactly one value per record
	var extra interface{}
	if err := decoder.Decode(&extra); io.EOF != err {
		return Value{}, fault.ErrTrailingData
	}

	return FromInterface(item)
}

// DecodeString - Decode from a string
func DecodeString(s string) (Value, error) {
	return Decode([]byte(s))
}

// convert a decoded JSON number to the narrowest kind
func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); nil == err {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); nil == err {
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsInf(f, 0) {
		return Value{}, fault.ErrInvalidNumber
	}
	return Float(f), nil
}
