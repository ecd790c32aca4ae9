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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the
// nearest named type, or an error if none is found. Registries key their
// entries by the normalized type so that T and *T share metadata.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && i < maxUnwrap(cfg); i++ {
		t = t.Elem()
	}
	if t.Kind() != reflect.Ptr && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// Indirect follows pointers and interfaces behind v, at most cfg.MaxUnwrap
// times. It returns the zero Value when a nil is reached.
func Indirect(v reflect.Value, cfg apis.Config) reflect.Value {
	limit := maxUnwrap(cfg)
	for i := 0; v.IsValid() && i < limit; i++ {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

// IsNil reports whether v is nil or a typed nil (pointer, map, slice,
// interface, func or chan holding nil).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func maxUnwrap(cfg apis.Config) int {
	if cfg.MaxUnwrap <= 0 {
		return config.DefaultMaxUnwrap
	}
	return cfg.MaxUnwrap
}
