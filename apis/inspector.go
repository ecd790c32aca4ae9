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

// Inspector extracts a named property and its structural metadata from an
// arbitrary subject. It is the only way the engine looks inside subjects.
type Inspector interface {
	// Value returns the value of the property called name on subject.
	// Failures (unknown property, nil subject) are returned as errors and
	// propagate to the caller untouched.
	Value(subject any, name string) (any, error)

	// Metadata returns extra attributes describing the property called name.
	// Unknown names yield an empty mapping, never an error.
	Metadata(subject any, name string) (map[string]any, error)
}

// Strategy is a pluggable inspection step. An Inspector chains multiple
// strategies in order (e.g., Valuer -> Map -> Reflect).
type Strategy interface {
	// TryValue attempts to read name from subject according to cfg.
	// It returns (value, true, nil) if handled; (nil, false, nil) to fall through.
	// A non-nil error stops the chain.
	TryValue(subject any, name string, cfg Config) (value any, handled bool, err error)

	// TryMetadata returns the metadata this strategy contributes for name.
	// It returns (nil, false) when it has nothing to say.
	TryMetadata(subject any, name string, cfg Config) (meta map[string]any, handled bool)
}

// Valuer lets a subject answer property lookups itself, bypassing reflection.
type Valuer interface {
	// RepresentationValue returns the value for name and whether it exists.
	RepresentationValue(name string) (value any, ok bool)
}

// Describer lets a subject attach metadata to its own properties.
type Describer interface {
	// RepresentationMetadata returns attributes for the property called name.
	// It may return nil.
	RepresentationMetadata(name string) map[string]any
}
