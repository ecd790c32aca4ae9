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

package strategy

import (
	"reflect"
	"time"

	"dirpx.dev/repr/apis"
	uref "dirpx.dev/repr/utils/reflect"
)

// TypeKey is the metadata key written by the type-hints strategy.
const TypeKey = "type"

// NewTypeHintsStrategy creates an apis.Strategy that derives a "type"
// metadata entry from the Go kind of the property value read through values.
func NewTypeHintsStrategy(values apis.Inspector) apis.Strategy {
	return &typeHintsStrategy{values: values}
}

// typeHintsStrategy annotates scalar properties the way typed XML dialects
// do: integer, float, boolean and datetime. Strings and structures get no hint.
type typeHintsStrategy struct {
	values apis.Inspector
}

// Ensure typeHintsStrategy implements apis.Strategy.
var _ apis.Strategy = (*typeHintsStrategy)(nil)

var timeType = reflect.TypeOf(time.Time{})

// TryValue never handles.
func (*typeHintsStrategy) TryValue(any, string, apis.Config) (any, bool, error) {
	return nil, false, nil
}

// TryMetadata reads the property and maps its kind to a hint.
// Lookup failures yield no hint; the element call reports them.
func (s *typeHintsStrategy) TryMetadata(subject any, name string, cfg apis.Config) (map[string]any, bool) {
	if s.values == nil {
		return nil, false
	}
	v, err := s.values.Value(subject, name)
	if err != nil {
		return nil, false
	}
	hint := Hint(v, cfg)
	if hint == "" {
		return nil, false
	}
	return map[string]any{TypeKey: hint}, true
}

// Hint returns the type hint for v, or "" when v has none.
func Hint(v any, cfg apis.Config) string {
	rv := uref.Indirect(reflect.ValueOf(v), cfg)
	if !rv.IsValid() {
		return ""
	}
	if rv.Type() == timeType {
		return "datetime"
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Bool:
		return "boolean"
	default:
		return ""
	}
}
