// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/canonical"
	"github.com/bitmark-inc/assetregistry/fault"
)

func TestEncodeScalars(t *testing.T) {
	items := []struct {
		value    canonical.Value
		expected string
	}{
		{canonical.Null(), `null`},
		{canonical.Bool(true), `true`},
		{canonical.Bool(false), `false`},
		{canonical.Int(0), `0`},
		{canonical.Int(-12), `-12`},
		{canonical.Int(math.MinInt64), `-9223372036854775808`},
		{canonical.Uint(math.MaxUint64), `18446744073709551615`},
		{canonical.Float(1.5), `1.5`},
		{canonical.Float(5), `5`},
		{canonical.Float(math.Copysign(0, -1)), `0`},
		{canonical.Float(1e6), `1000000`},
		{canonical.Float(-2.5e7), `-25000000`},
		{canonical.Float(1 << 60), `1152921504606846976`},
		{canonical.Float(1 << 63), `9223372036854775808`},
		{canonical.Float(1e21), `1e+21`},
		{canonical.Float(1.5e-7), `1.5e-07`},
		{canonical.Float(-2.5e-8), `-2.5e-08`},
		{canonical.String(""), `""`},
		{canonical.String("plain"), `"plain"`},
		{canonical.String("q\"b\\s/"), `"q\"b\\s/"`},
		{canonical.String("a\nb\tc\rd\be\ff"), `"a\nb\tc\rd\be\ff"`},
		{canonical.String("\x00\x1f"), `"\u0000\u001f"`},
		{canonical.String("<&>"), `"<&>"`},
		{canonical.String("ünï😀"), `"ünï😀"`},
		{canonical.String("bad\xffbyte"), "\"bad�byte\""},
	}

	for i, item := range items {
		actual, err := canonical.EncodeToString(item.value)
		assert.Nil(t, err, "%d: encode error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong encoding", i)
	}
}

func TestEncodeRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := canonical.Encode(canonical.Float(f))
		assert.Equal(t, fault.ErrInvalidNumber, err, "accepted: %v", f)

		nested := canonical.Mapping(canonical.Field("x", canonical.Sequence(canonical.Float(f))))
		_, err = canonical.Encode(nested)
		assert.Equal(t, fault.ErrInvalidNumber, err, "accepted nested: %v", f)
	}
}

func TestEncodeRejectsInvalidKey(t *testing.T) {
	v := canonical.Mapping(canonical.Field("bad\xff", canonical.Int(1)))
	_, err := canonical.Encode(v)
	assert.Equal(t, fault.ErrInvalidKey, err, "invalid key accepted")
}

func TestEncodeSortsKeysAtEveryDepth(t *testing.T) {
	v := canonical.Mapping(
		canonical.Field("zeta", canonical.Int(1)),
		canonical.Field("alpha", canonical.Mapping(
			canonical.Field("y", canonical.Bool(true)),
			canonical.Field("b", canonical.Null()),
		)),
		canonical.Field("mid", canonical.Sequence(
			canonical.Mapping(
				canonical.Field("k2", canonical.String("v2")),
				canonical.Field("k1", canonical.String("v1")),
			),
			canonical.Int(3),
		)),
	)

	actual, err := canonical.EncodeToString(v)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, `{"alpha":{"b":null,"y":true},"mid":[{"k1":"v1","k2":"v2"},3],"zeta":1}`, actual, "wrong encoding")
}

func TestEncodeKeyOrderIsCodePoint(t *testing.T) {
	v := canonical.Mapping(
		canonical.Field("é", canonical.Int(4)),
		canonical.Field("Z", canonical.Int(2)),
		canonical.Field("a", canonical.Int(3)),
		canonical.Field("\U0001F600", canonical.Int(6)),
		canonical.Field("Ａ", canonical.Int(5)),
		canonical.Field("", canonical.Int(1)),
	)

	actual, err := canonical.EncodeToString(v)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, "{\"\":1,\"Z\":2,\"a\":3,\"é\":4,\"Ａ\":5,\"\U0001F600\":6}", actual, "wrong key order")
}

func TestEncodeIgnoresInsertionOrder(t *testing.T) {
	first := canonical.Mapping(
		canonical.Field("ID", canonical.String("a1")),
		canonical.Field("Size", canonical.Uint(5)),
		canonical.Field("Meta", canonical.Mapping(
			canonical.Field("one", canonical.Int(1)),
			canonical.Field("two", canonical.Int(2)),
		)),
	)

	second := canonical.Mapping()
	inner := canonical.Mapping()
	inner.Set("two", canonical.Int(2))
	inner.Set("one", canonical.Int(1))
	second.Set("Meta", inner)
	second.Set("Size", canonical.Uint(5))
	second.Set("ID", canonical.String("a1"))

	a, err := canonical.Encode(first)
	assert.Nil(t, err, "first encode error")
	b, err := canonical.Encode(second)
	assert.Nil(t, err, "second encode error")
	assert.Equal(t, a, b, "insertion order leaked into output")
}

func TestEncodeSortedIsIdempotent(t *testing.T) {
	v := canonical.Mapping(
		canonical.Field("c", canonical.Sequence(canonical.Mapping(
			canonical.Field("y", canonical.Int(1)),
			canonical.Field("x", canonical.Int(2)),
		))),
		canonical.Field("a", canonical.String("s")),
	)

	direct, err := canonical.Encode(v)
	assert.Nil(t, err, "encode error")

	sorted := canonical.Sorted(v)
	viaSorted, err := canonical.Encode(sorted)
	assert.Nil(t, err, "encode sorted error")
	assert.Equal(t, direct, viaSorted, "sorting changed the bytes")

	twice, err := canonical.Encode(canonical.Sorted(sorted))
	assert.Nil(t, err, "encode sorted twice error")
	assert.Equal(t, direct, twice, "sorting twice changed the bytes")

	// original order is untouched
	assert.Equal(t, "c", v.Entries()[0].Key, "Sorted modified its argument")
	assert.Equal(t, "a", sorted.Entries()[0].Key, "Sorted did not order entries")
}

func TestMappingRepeatedKey(t *testing.T) {
	v := canonical.Mapping(
		canonical.Field("k", canonical.Int(1)),
		canonical.Field("j", canonical.Int(2)),
		canonical.Field("k", canonical.Int(3)),
	)
	assert.Equal(t, 2, v.Len(), "repeated key kept twice")

	actual, err := canonical.EncodeToString(v)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, `{"j":2,"k":3}`, actual, "last value did not win")
}

func TestEncodeEmptyContainers(t *testing.T) {
	actual, err := canonical.EncodeToString(canonical.Mapping(
		canonical.Field("list", canonical.Sequence()),
		canonical.Field("map", canonical.Mapping()),
	))
	assert.Nil(t, err, "encode error")
	assert.Equal(t, `{"list":[],"map":{}}`, actual, "wrong empty container encoding")
}

func TestEncodeEqualNumbersAlike(t *testing.T) {
	pairs := [][2]canonical.Value{
		{canonical.Int(1000000), canonical.Float(1e6)},
		{canonical.Int(-7), canonical.Float(-7)},
		{canonical.Uint(1 << 60), canonical.Float(1 << 60)},
		{canonical.Uint(math.MaxUint64), canonical.Uint(math.MaxUint64)},
		{canonical.Int(math.MinInt64), canonical.Float(math.MinInt64)},
	}
	for i, pair := range pairs {
		assert.True(t, pair[0].Equal(pair[1]), "%d: values not equal", i)
		a, err := canonical.EncodeToString(pair[0])
		assert.Nil(t, err, "%d: encode error", i)
		b, err := canonical.EncodeToString(pair[1])
		assert.Nil(t, err, "%d: encode error", i)
		assert.Equal(t, a, b, "%d: equal numbers encode differently", i)
	}
}

func TestEncodeJSONDataLikeGoData(t *testing.T) {
	var decoded map[string]interface{}
	err := json.Unmarshal([]byte(`{"ID":"a1","Size":25000000,"Parts":[1,2e6]}`), &decoded)
	assert.Nil(t, err, "unmarshal error")

	fromJSON, err := canonical.FromInterface(decoded)
	assert.Nil(t, err, "convert json data error")

	fromGo, err := canonical.FromInterface(map[string]interface{}{
		"ID":    "a1",
		"Size":  25000000,
		"Parts": []interface{}{1, uint64(2000000)},
	})
	assert.Nil(t, err, "convert go data error")

	assert.True(t, fromJSON.Equal(fromGo), "records differ")

	a, err := canonical.Encode(fromJSON)
	assert.Nil(t, err, "encode error")
	b, err := canonical.Encode(fromGo)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, b, a, "equal records encode differently")
	assert.Equal(t, `{"ID":"a1","Parts":[1,2000000],"Size":25000000}`, string(a), "wrong encoding")
}
