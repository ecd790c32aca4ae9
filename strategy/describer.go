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

// NewDescriberStrategy creates an apis.Strategy that collects metadata from
// subjects implementing apis.Describer.
func NewDescriberStrategy() apis.Strategy {
	return &describerStrategy{}
}

type describerStrategy struct{}

// Ensure describerStrategy implements apis.Strategy.
var _ apis.Strategy = (*describerStrategy)(nil)

// TryValue never handles: Describer carries metadata only.
func (*describerStrategy) TryValue(any, string, apis.Config) (any, bool, error) {
	return nil, false, nil
}

// TryMetadata asks the subject for metadata about name.
func (*describerStrategy) TryMetadata(subject any, name string, _ apis.Config) (map[string]any, bool) {
	d, ok := subject.(apis.Describer)
	if !ok {
		return nil, false
	}
	meta := d.RepresentationMetadata(name)
	return meta, len(meta) > 0
}
