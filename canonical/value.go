// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"math"
	"sort"
)

// Kind - the tag of a Value
type Kind uint8

// all possible kinds
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String - kind name for messages
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Entry - one key/value pair of a mapping
type Entry struct {
	Key   string
	Value Value
}

// Value - a record element: a scalar, a sequence or a mapping
//
// the zero Value is null
type Value struct {
	kind    Kind
	b       bool
	i       int64
	u       uint64
	f       float64
	s       string
	items   []Value
	entries []Entry // construction order, keys unique
}

// Null - the null value
func Null() Value {
	return Value{}
}

// Bool - a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int - a signed integer value
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Uint - an unsigned integer value
func Uint(u uint64) Value {
	return Value{kind: KindUint, u: u}
}

// Float - a floating point value
//
// NaN and infinities can be held but are refused by Encode
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String - a text value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Sequence - an ordered list of values
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: append([]Value{}, items...)}
}

// Field - convenience constructor for a mapping entry
func Field(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Mapping - a keyed collection
//
// a repeated key keeps the position of its first use and the value of
// its last use
func Mapping(entries ...Entry) Value {
	v := Value{kind: KindMapping, entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// Kind - the tag of this value
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull - true for the null value
func (v Value) IsNull() bool {
	return KindNull == v.kind
}

// AsBool - the boolean, ok is false for other kinds
func (v Value) AsBool() (bool, bool) {
	return v.b, KindBool == v.kind
}

// AsInt - the value as int64 if it is an integer that fits
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u <= math.MaxInt64 {
			return int64(v.u), true
		}
	}
	return 0, false
}

// AsUint - the value as uint64 if it is a non-negative integer
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindInt:
		if v.i >= 0 {
			return uint64(v.i), true
		}
	}
	return 0, false
}

// AsFloat - any numeric kind as float64
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	}
	return 0, false
}

// AsString - the text, ok is false for other kinds
func (v Value) AsString() (string, bool) {
	return v.s, KindString == v.kind
}

// Items - the elements of a sequence
func (v Value) Items() []Value {
	if KindSequence != v.kind {
		return nil
	}
	return v.items
}

// Entries - the entries of a mapping in construction order
func (v Value) Entries() []Entry {
	if KindMapping != v.kind {
		return nil
	}
	return v.entries
}

// Len - number of elements of a sequence or entries of a mapping
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.entries)
	}
	return 0
}

// Get - look up a mapping key
func (v Value) Get(key string) (Value, bool) {
	if KindMapping != v.kind {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Set - assign a mapping key, replacing any previous value
//
// calling Set on a non-mapping turns it into an empty mapping first
func (v *Value) Set(key string, value Value) {
	if KindMapping != v.kind {
		*v = Value{kind: KindMapping}
	}
	for i := range v.entries {
		if v.entries[i].Key == key {
			v.entries[i].Value = value
			return
		}
	}
	v.entries = append(v.entries, Entry{Key: key, Value: value})
}

// Append - add an element to a sequence
//
// calling Append on a non-sequence turns it into an empty sequence first
func (v *Value) Append(item Value) {
	if KindSequence != v.kind {
		*v = Value{kind: KindSequence}
	}
	v.items = append(v.items, item)
}

// isNumeric - integer and float kinds compare by value
func (v Value) isNumeric() bool {
	return KindInt == v.kind || KindUint == v.kind || KindFloat == v.kind
}

// Equal - semantic equality
//
// mapping entry order is ignored and numbers compare by numeric value,
// so Int(5), Uint(5) and Float(5) are all equal
func (v Value) Equal(other Value) bool {
	if v.isNumeric() && other.isNumeric() {
		return numericEqual(v, other)
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for _, e := range v.entries {
			o, ok := other.Get(e.Key)
			if !ok || !e.Value.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

func numericEqual(a Value, b Value) bool {
	if ai, ok := a.AsInt(); ok {
		if bi, ok := b.AsInt(); ok {
			return ai == bi
		}
	}
	if au, ok := a.AsUint(); ok {
		if bu, ok := b.AsUint(); ok {
			return au == bu
		}
	}
	switch {
	case KindFloat == a.kind && KindFloat == b.kind:
		return a.f == b.f
	case KindFloat == a.kind:
		return floatEqualsInteger(a.f, b)
	case KindFloat == b.kind:
		return floatEqualsInteger(b.f, a)
	}
	return false // one negative int, one large uint
}

// exact comparison, no rounding of the integer to float64
func floatEqualsInteger(f float64, v Value) bool {
	if f != math.Trunc(f) {
		return false
	}
	if f >= -twoTo63 && f < twoTo63 {
		i, ok := v.AsInt()
		return ok && i == int64(f)
	}
	if f > 0 && f < twoTo64 {
		u, ok := v.AsUint()
		return ok && u == uint64(f)
	}
	return false
}

// Sorted - a deep copy with every mapping level ordered by key
//
// Encode(Sorted(v)) produces the same bytes as Encode(v)
func Sorted(v Value) Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Sorted(item)
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		return Value{kind: KindMapping, entries: sortedEntries(v.entries)}
	}
	return v
}

// copy the entries, sort them by key and sort each nested value
func sortedEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	for i, e := range entries {
		sorted[i] = Entry{Key: e.Key, Value: Sorted(e.Value)}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}
