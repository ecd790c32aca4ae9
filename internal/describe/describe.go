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

// Package describe walks generic documents (ordered maps, lists and
// scalars) through a Representative.
package describe

import (
	"github.com/jinzhu/inflection"

	"dirpx.dev/repr"
	"dirpx.dev/repr/apis"
)

// Keyed is an ordered string-keyed subject, such as *data.Map.
type Keyed interface {
	apis.Valuer
	Keys() []string
}

// Describe emits doc as an element named root. Keyed values become
// elements with one child per key, in key order; lists become ListOf
// elements named after the singular of their key; scalars become text.
func Describe(r *repr.Representative, root string, doc any) error {
	return field(r, root, doc, true)
}

// field emits one value. Values inside a Keyed subject are read back by
// the engine through the inspector; explicit values are passed as is.
func field(r *repr.Representative, name string, v any, explicit bool) error {
	var args []repr.Arg
	if explicit {
		args = append(args, repr.Value(v))
	}

	switch x := v.(type) {
	case Keyed:
		return r.Element(name, append(args, repr.Body(func(any) error {
			return members(r, x)
		}))...)
	case []any:
		return list(r, name, x, args)
	default:
		return r.Element(name, args...)
	}
}

func members(r *repr.Representative, m Keyed) error {
	for _, k := range m.Keys() {
		v, _ := m.RepresentationValue(k)
		if err := field(r, k, v, false); err != nil {
			return err
		}
	}
	return nil
}

// list uses ListOf when the items share a shape, and falls back to an
// explicit array element for mixed lists.
func list(r *repr.Representative, name string, items []any, args []repr.Arg) error {
	switch {
	case every(items, isKeyed):
		return r.ListOf(name, append(args, repr.Body(func(item any) error {
			return members(r, item.(Keyed))
		}))...)
	case every(items, isScalar):
		return r.ListOf(name, args...)
	default:
		itemName := inflection.Singular(name)
		return r.Element(name, append(args, repr.Attr(repr.TypeAttr, "array"), repr.Body(func(any) error {
			for _, item := range items {
				if err := field(r, itemName, item, true); err != nil {
					return err
				}
			}
			return nil
		}))...)
	}
}

func every(items []any, pred func(any) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

func isKeyed(v any) bool {
	_, ok := v.(Keyed)
	return ok
}

func isScalar(v any) bool {
	switch v.(type) {
	case Keyed, []any:
		return false
	default:
		return true
	}
}
