// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"bytes"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/assetregistry/fault"
)

const hexDigits = "0123456789abcdef"

// Encode - produce the canonical byte form of a value
//
// the output is compact JSON text: no whitespace, mapping keys sorted by
// code point at every depth, one spelling for every scalar
func Encode(v Value) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := encodeValue(buffer, v); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// EncodeToString - Encode returning a string
func EncodeToString(v Value) (string, error) {
	b, err := Encode(v)
	if nil != err {
		return "", err
	}
	return string(b), nil
}

func encodeValue(buffer *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buffer.WriteString("null")
	case KindBool:
		if v.b {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case KindInt:
		buffer.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		buffer.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		s, err := formatFloat(v.f)
		if nil != err {
			return err
		}
		buffer.WriteString(s)
	case KindString:
		writeString(buffer, v.s)
	case KindSequence:
		buffer.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buffer.WriteByte(',')
			}
			if err := encodeValue(buffer, item); nil != err {
				return err
			}
		}
		buffer.WriteByte(']')
	case KindMapping:
		return encodeMapping(buffer, v.entries)
	default:
		return fault.ErrInvalidRecord
	}
	return nil
}

// write entries ordered by key without disturbing the caller's order
func encodeMapping(buffer *bytes.Buffer, entries []Entry) error {
	order := make([]int, len(entries))
	for i, e := range entries {
		if !utf8.ValidString(e.Key) {
			return fault.ErrInvalidKey
		}
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return entries[order[i]].Key < entries[order[j]].Key
	})

	buffer.WriteByte('{')
	for n, i := range order {
		if n > 0 {
			buffer.WriteByte(',')
		}
		writeString(buffer, entries[i].Key)
		buffer.WriteByte(':')
		if err := encodeValue(buffer, entries[i].Value); nil != err {
			return err
		}
	}
	buffer.WriteByte('}')
	return nil
}

// integral floats in these ranges convert exactly
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = float64(1 << 64)
)

// a float holding an integer that Int or Uint could hold is written the
// way they would write it; others use the shortest round trip form with
// a lower case exponent.  No negative zero
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fault.ErrInvalidNumber
	}
	if 0 == f {
		return "0", nil
	}
	if f == math.Trunc(f) {
		if f >= -twoTo63 && f < twoTo63 {
			return strconv.FormatInt(int64(f), 10), nil
		}
		if f > 0 && f < twoTo64 {
			return strconv.FormatUint(uint64(f), 10), nil
		}
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	return strings.Replace(s, "E", "e", 1), nil
}

// quote a string escaping only quote, backslash and control characters
//
// each invalid UTF-8 byte becomes U+FFFD
func writeString(buffer *bytes.Buffer, s string) {
	buffer.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				buffer.WriteString(`\"`)
			case '\\':
				buffer.WriteString(`\\`)
			case '\b':
				buffer.WriteString(`\b`)
			case '\f':
				buffer.WriteString(`\f`)
			case '\n':
				buffer.WriteString(`\n`)
			case '\r':
				buffer.WriteString(`\r`)
			case '\t':
				buffer.WriteString(`\t`)
			default:
				if c < 0x20 {
					buffer.WriteString(`\u00`)
					buffer.WriteByte(hexDigits[c>>4])
					buffer.WriteByte(hexDigits[c&0xf])
				} else {
					buffer.WriteByte(c)
				}
			}
			i += 1
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if utf8.RuneError == r && 1 == size {
			buffer.WriteString("\ufffd")
		} else {
			buffer.WriteString(s[i : i+size])
		}
		i += size
	}
	buffer.WriteByte('"')
}
