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

// Package repr describes in-memory object graphs as hierarchical markup
// without hand-written traversal code.
//
// A Representative walks the graph declaratively: each call names an
// element, and the engine decides what the element's subject, attributes
// and content are by looking at the current subject.
//
//	r := repr.New(xml.New(), book)
//	_ = r.Element("book", repr.Value(book), repr.Body(func(any) error {
//		if err := r.Element("title"); err != nil {
//			return err
//		}
//		return r.ListOf("authors", repr.Body(func(any) error {
//			return r.Element("name")
//		}))
//	}))
//	// <book><title>Dune</title><authors type="array"><author><name>Frank Herbert</name></author></authors></book>
//
// # Resolution
//
// For Element(name, args...):
//
//  1. The inspector reports metadata for name on the current subject.
//  2. Metadata is merged over the caller's attributes; on a key collision
//     metadata wins.
//  3. The element's subject is the explicit Value, or else the inspector's
//     value of name on the current subject.
//  4. That subject becomes current.
//  5. Attribute value generators (apis.Lazy, apis.LazyErr, func() any,
//     apis.Property) are evaluated and nil results dropped.
//  6. Content is chosen: none for a nil subject or Empty, the Body for a
//     block, otherwise the subject's text form.
//  7. The renderer receives the formatted name, the attributes and the
//     content, and runs any block before returning.
//  8. The previous subject is restored, whatever happened.
//
// ListOf(name, args...) builds on Element: the wrapping element carries
// type="array" unless the caller sets a "type" attribute, and each item
// of the collection becomes an element named by ItemName (default: the
// singular of name) that reuses the call's Body.
//
// # Defaults
//
// The inspector, naming strategy and metadata registry used by New come
// from a process-wide snapshot, read lock-free and swapped atomically by
// writers (SetConfig, SetBuilder, SetExt, SetRegistry, SetInspector,
// SetAll). SetRegistry and SetInspector pin their layer so later
// reconfiguration leaves it alone until Unpin is called.
//
// # Errors
//
// ErrTooManyArguments, ErrListOnlyArgument and ErrNotIterable report
// malformed calls. Errors from the inspector, from bodies and from the
// renderer are returned unchanged. In every case the subject stack is
// left as it was before the failing call.
package repr
