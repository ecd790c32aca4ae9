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

// Block describes nested content. It receives the element's subject, which
// is also the engine's current subject while it runs.
type Block func(subject any) error

// BodyKind tags the variant held by Body.
type BodyKind int

const (
	// BodyNone means no body was given: the subject is rendered as text.
	BodyNone BodyKind = iota
	// BodyBlock means nested content is produced by a Block.
	BodyBlock
	// BodyEmpty forces an empty element even when the subject is non-nil.
	BodyEmpty
)

// Body is the optional nested-content argument of an element.
type Body struct {
	Kind  BodyKind
	Block Block
}

// EmptyBody is the process-wide "force an empty element" marker.
// It is recognised by its kind, not by identity.
var EmptyBody = Body{Kind: BodyEmpty}

// BlockBody wraps fn. A nil fn yields the zero Body (no body).
func BlockBody(fn Block) Body {
	if fn == nil {
		return Body{}
	}
	return Body{Kind: BodyBlock, Block: fn}
}

// Lazy is a deferred value generator, evaluated once at resolution time
// with the element's subject active.
type Lazy func() any

// LazyErr is a deferred value generator that may fail.
type LazyErr func() (any, error)

// Property is a value generator naming a property of the subject that is
// current at resolution time.
type Property string
