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
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided apis.Registry (reflection-free lookup
// once the type is known).
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryValue never handles: the registry stores metadata only.
func (*registryStrategy) TryValue(any, string, apis.Config) (any, bool, error) {
	return nil, false, nil
}

// TryMetadata looks up (type of subject, name) in the registry.
func (s *registryStrategy) TryMetadata(subject any, name string, _ apis.Config) (map[string]any, bool) {
	if subject == nil || s.reg == nil {
		return nil, false
	}
	return s.reg.Lookup(reflect.TypeOf(subject), name)
}
