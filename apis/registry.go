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

import "reflect"

// Registry holds metadata declared up front for (type, attribute) pairs.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates metadata with the attribute of the (nearest named) type t.
	// Re-registering identical metadata is a no-op; different metadata is a conflict.
	Register(t reflect.Type, attribute string, meta map[string]any) error
	// Lookup returns a copy of the metadata registered for (t, attribute).
	Lookup(t reflect.Type, attribute string) (meta map[string]any, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single registration in a Registry snapshot.
type Entry struct {
	// Type is the normalized registered type.
	Type reflect.Type
	// Attribute is the symbolic attribute name.
	Attribute string
	// Metadata is the registered metadata.
	Metadata map[string]any
}
