/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package data

import (
	"maps"
	"slices"
	"sort"

	"dirpx.dev/repr/apis"
)

// Map is a string-keyed mapping that remembers insertion order. It
// implements apis.Valuer so the inspector reads its entries by key.
type Map struct {
	keys   []string
	values map[string]any
}

// Ensure Map implements apis.Valuer.
var _ apis.Valuer = (*Map)(nil)

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// Set stores v under key. A new key goes last; an existing key keeps its
// position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// RepresentationValue implements apis.Valuer.
func (m *Map) RepresentationValue(name string) (any, bool) {
	return m.Get(name)
}

// Normalize converts plain maps (at any depth) into Maps with sorted keys,
// so that every document reaches the describer in one shape.
func Normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := NewMap()
		keys := slices.Collect(maps.Keys(x))
		sort.Strings(keys)
		for _, k := range keys {
			out.Set(k, Normalize(x[k]))
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case *Map:
		for _, k := range x.keys {
			x.values[k] = Normalize(x.values[k])
		}
		return x
	default:
		return v
	}
}
