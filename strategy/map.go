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

	"dirpx.dev/repr/apis"
	uref "dirpx.dev/repr/utils/reflect"
)

// NewMapStrategy creates an apis.Strategy that reads string-keyed maps.
func NewMapStrategy() apis.Strategy {
	return mapStrategy{}
}

// mapStrategy treats map keys as properties. A missing key resolves to nil,
// so absent entries render as empty elements instead of failing.
type mapStrategy struct{}

// Ensure mapStrategy implements apis.Strategy.
var _ apis.Strategy = (*mapStrategy)(nil)

// TryValue looks name up in a map with string keys.
func (mapStrategy) TryValue(subject any, name string, cfg apis.Config) (any, bool, error) {
	if m, ok := subject.(map[string]any); ok {
		return m[name], true, nil
	}
	rv := uref.Indirect(reflect.ValueOf(subject), cfg)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false, nil
	}
	v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, true, nil
	}
	return v.Interface(), true, nil
}

// TryMetadata never contributes.
func (mapStrategy) TryMetadata(any, string, apis.Config) (map[string]any, bool) {
	return nil, false
}
