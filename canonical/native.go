// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/assetregistry/fault"
)

// FromInterface - convert plain Go data into a value
//
// accepts nil, bool, all integer kinds, float32/64, string, json.Number,
// []interface{}, []string, map[string]interface{}, map[string]string and
// Value itself; anything else is refused with fault.ErrInvalidRecord
func FromInterface(item interface{}) (Value, error) {
	switch x := item.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case json.Number:
		return numberValue(x)
	case string:
		return String(x), nil
	case []string:
		v := Sequence()
		for _, s := range x {
			v.Append(String(s))
		}
		return v, nil
	case []interface{}:
		v := Sequence()
		for _, e := range x {
			element, err := FromInterface(e)
			if nil != err {
				return Value{}, err
			}
			v.Append(element)
		}
		return v, nil
	case map[string]string:
		v := Mapping()
		for _, k := range sortedKeys(x) {
			v.Set(k, String(x[k]))
		}
		return v, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		v := Mapping()
		for _, k := range keys {
			element, err := FromInterface(x[k])
			if nil != err {
				return Value{}, err
			}
			v.Set(k, element)
		}
		return v, nil
	}
	return Value{}, fault.ErrInvalidRecord
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Interface - convert a value back to plain Go data
//
// mappings become map[string]interface{}, sequences []interface{}
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		items := make([]interface{}, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	case KindMapping:
		m := make(map[string]interface{}, len(v.entries))
		for _, e := range v.entries {
			m[e.Key] = e.Value.Interface()
		}
		return m
	}
	return nil
}

// MarshalJSON - values embed in encoding/json output in canonical form
func (v Value) MarshalJSON() ([]byte, error) {
	return Encode(v)
}

// UnmarshalJSON - the reverse of MarshalJSON
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if nil != err {
		return err
	}
	*v = decoded
	return nil
}
