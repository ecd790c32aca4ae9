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
	"strings"
	"sync"

	"dirpx.dev/repr/apis"
	uref "dirpx.dev/repr/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that reads struct fields and
// zero-argument methods via reflection, memoizing the lookup per type.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback for structured subjects.
// For a symbolic name it tries, in order:
//  1. an exported field whose cfg.TagKey tag names it (`repr:"book_title"`);
//  2. an exported method taking no arguments and returning (T) or (T, error);
//  3. an exported field.
//
// Methods and fields match case-insensitively with '_' and '-' ignored, so
// "book_title" finds BookTitle and "url" finds URL.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// accessorKind tells how a property is read.
type accessorKind uint8

const (
	accessNone accessorKind = iota
	accessMethod
	accessField
)

// accessor is a memoized lookup result.
type accessor struct {
	kind   accessorKind
	method int
	field  []int
}

// cacheKey ensures memoization respects all inputs that affect the lookup.
type cacheKey struct {
	t      reflect.Type
	name   string
	tagKey string
}

// accessorCache caches accessors by (type, name, tag key).
var accessorCache sync.Map // key: cacheKey, val: accessor

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// TryValue reads name from subject.
func (reflectStrategy) TryValue(subject any, name string, cfg apis.Config) (any, bool, error) {
	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return nil, false, nil
	}

	acc := lookup(rv.Type(), name, cfg.TagKey)
	switch acc.kind {
	case accessMethod:
		out := rv.Method(acc.method).Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, true, out[1].Interface().(error)
		}
		return out[0].Interface(), true, nil
	case accessField:
		sv := uref.Indirect(rv, cfg)
		if !sv.IsValid() {
			return nil, false, nil
		}
		fv, err := sv.FieldByIndexErr(acc.field)
		if err != nil {
			// nil embedded pointer on the path
			return nil, true, nil
		}
		return fv.Interface(), true, nil
	default:
		return nil, false, nil
	}
}

// TryMetadata never contributes.
func (reflectStrategy) TryMetadata(any, string, apis.Config) (map[string]any, bool) {
	return nil, false
}

// lookup resolves the accessor for (t, name) with memoization.
func lookup(t reflect.Type, name, tagKey string) accessor {
	key := cacheKey{t: t, name: name, tagKey: tagKey}
	if v, ok := accessorCache.Load(key); ok {
		return v.(accessor)
	}
	acc := resolveAccessor(t, name, tagKey)
	accessorCache.Store(key, acc)
	return acc
}

func resolveAccessor(t reflect.Type, name, tagKey string) accessor {
	st := t
	for st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	var fields []reflect.StructField
	if st.Kind() == reflect.Struct {
		fields = reflect.VisibleFields(st)
	}

	if tagKey != "" {
		for _, f := range fields {
			if !f.IsExported() {
				continue
			}
			tag, _, _ := strings.Cut(f.Tag.Get(tagKey), ",")
			if tag == name {
				return accessor{kind: accessField, field: f.Index}
			}
		}
	}

	want := fold(name)
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if fold(m.Name) != want || !readable(m.Type) {
			continue
		}
		return accessor{kind: accessMethod, method: i}
	}

	for _, f := range fields {
		if f.IsExported() && !f.Anonymous && fold(f.Name) == want {
			return accessor{kind: accessField, field: f.Index}
		}
	}
	return accessor{kind: accessNone}
}

// readable reports whether a method type (receiver bound) is a getter.
func readable(mt reflect.Type) bool {
	// t.Method(i).Type includes the receiver as first input.
	if mt.NumIn() != 1 {
		return false
	}
	switch mt.NumOut() {
	case 1:
		return true
	case 2:
		return mt.Out(1) == errorType
	default:
		return false
	}
}

// fold lowercases s and drops '_' and '-'.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
