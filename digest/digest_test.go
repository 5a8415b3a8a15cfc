// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/digest"
	"github.com/bitmark-inc/assetregistry/fault"
)

func TestKnownValues(t *testing.T) {
	items := []struct {
		input    string
		expected string
	}{
		{"", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for i, item := range items {
		d := digest.NewDigest([]byte(item.input))
		assert.Equal(t, item.expected, d.String(), "%d: wrong digest", i)
		assert.Equal(t, "<SHA3-256:"+item.expected+">", fmt.Sprintf("%#v", d), "%d: wrong GoString", i)
	}
}

func TestScanFmt(t *testing.T) {
	text := "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"

	var d digest.Digest
	n, err := fmt.Sscan(text, &d)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "wrong scan count")
	assert.Equal(t, digest.NewDigest([]byte("abc")), d, "wrong scanned digest")
}

func TestTextRoundTrip(t *testing.T) {
	d := digest.NewDigest([]byte(`{"ID":"a1"}`))

	b, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+d.String()+`"`, string(b), "wrong JSON")

	var back digest.Digest
	err = json.Unmarshal(b, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, back, "round trip changed digest")

	err = back.UnmarshalText([]byte("abcd"))
	assert.Equal(t, fault.ErrInvalidDigest, err, "short text accepted")
}

func TestFields(t *testing.T) {
	empty := digest.NewFields().Sum()
	assert.Equal(t, digest.NewDigest(nil), empty, "no fields is not the empty digest")

	f := digest.NewFields()
	f.Add([]byte("abc"))
	expected := append([]byte{0, 0, 0, 0, 0, 0, 0, 3}, "abc"...)
	assert.Equal(t, digest.NewDigest(expected), f.Sum(), "wrong framing")

	// field boundaries are part of the digest
	a := digest.NewFields()
	a.Add([]byte("ab"))
	a.Add([]byte("c"))
	b := digest.NewFields()
	b.Add([]byte("a"))
	b.Add([]byte("bc"))
	assert.NotEqual(t, a.Sum(), b.Sum(), "boundaries ignored")

	// raw bytes are hashed as they are
	x := digest.NewFields()
	x.Add([]byte{0xff})
	y := digest.NewFields()
	y.Add([]byte{0xfe})
	assert.NotEqual(t, x.Sum(), y.Sum(), "invalid UTF-8 bytes merged")
}
