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
	"iter"
	"reflect"
)

// Iterate calls fn for every element of v in order. It understands []any,
// iter.Seq[any], slices and arrays (also behind pointers). ok is false when
// v is not a collection; fn is never called in that case.
func Iterate(v any, fn func(item any) error) (ok bool, err error) {
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if err := fn(item); err != nil {
				return true, err
			}
		}
		return true, nil
	case iter.Seq[any]:
		for item := range items {
			if err = fn(item); err != nil {
				return true, err
			}
		}
		return true, nil
	case string, []byte:
		// Strings and byte slices are scalars here.
		return false, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := fn(rv.Index(i).Interface()); err != nil {
				return true, err
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

// IsIterable reports whether Iterate would treat v as a collection.
// It never consumes v.
func IsIterable(v any) bool {
	switch v.(type) {
	case []any, iter.Seq[any]:
		return true
	case string, []byte:
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}
