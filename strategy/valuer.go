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
	"dirpx.dev/repr/apis"
)

// NewValuerStrategy creates an apis.Strategy that defers to apis.Valuer.
func NewValuerStrategy() apis.Strategy {
	return &valuerStrategy{}
}

// valuerStrategy is a zero-reflection fast path: if the subject implements
// apis.Valuer and knows the name, its answer stops the chain.
type valuerStrategy struct{}

// Ensure valuerStrategy implements apis.Strategy.
var _ apis.Strategy = (*valuerStrategy)(nil)

// TryValue asks the subject itself.
func (*valuerStrategy) TryValue(subject any, name string, _ apis.Config) (any, bool, error) {
	if v, ok := subject.(apis.Valuer); ok {
		value, found := v.RepresentationValue(name)
		return value, found, nil
	}
	return nil, false, nil
}

// TryMetadata never contributes: Valuer carries values only.
func (*valuerStrategy) TryMetadata(any, string, apis.Config) (map[string]any, bool) {
	return nil, false
}
