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

package apis

// Config carries read-only knobs that influence inspection and naming.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Naming selects the strategy that renders symbolic element and attribute
	// names ("dasherize", "underscore", "camel", "lower-camel", "plain").
	Naming string `koanf:"naming"`

	// TagKey is the struct tag consulted when mapping a symbolic name onto a
	// struct field, e.g. `repr:"book_title"`.
	TagKey string `koanf:"tag_key"`

	// MaxUnwrap limits pointer/interface indirection when reaching the
	// concrete value behind a subject. Acts as a guard against cycles.
	MaxUnwrap int `koanf:"max_unwrap"`

	// Metadata enables the metadata strategies (Registry and Describer).
	// When false every name yields empty metadata.
	Metadata bool `koanf:"metadata"`

	// TypeHints adds a "type" metadata entry derived from the Go kind of the
	// property value (integer, float, boolean, datetime). Requires Metadata.
	TypeHints bool `koanf:"type_hints"`
}
