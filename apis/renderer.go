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

import "sort"

// Attribute is a single name/value pair. Before resolution Value is a value
// generator (see Lazy, LazyErr, Property); after resolution it is concrete.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute list. Order is insertion order and
// setting an existing name replaces its value in place.
type Attributes []Attribute

// Get returns the value stored under name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set stores value under name and returns the updated list.
// The receiver may be modified; callers sharing a list should Clone first.
func (a Attributes) Set(name string, value any) Attributes {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Name: name, Value: value})
}

// Merge sets every entry of m, in key order, and returns the updated list.
func (a Attributes) Merge(m map[string]any) Attributes {
	if len(m) == 0 {
		return a
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a = a.Set(k, m[k])
	}
	return a
}

// Clone returns a copy that does not share storage with a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// ContentKind tags the variant held by Content.
type ContentKind int

const (
	// ContentNone marks an empty element.
	ContentNone ContentKind = iota
	// ContentText marks an element whose content is the string form of its subject.
	ContentText
	// ContentBlock marks an element whose children are produced by a deferred block.
	ContentBlock
)

// String returns a short label for the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "none"
	case ContentText:
		return "text"
	case ContentBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Content is what goes inside an element. Text and Block are never both set.
type Content struct {
	Kind ContentKind
	// Text is the string form of the subject (ContentText only).
	Text string
	// Value is the raw subject behind Text, for backends that keep scalar types.
	Value any
	// Block emits nested elements (ContentBlock only). The renderer must call it
	// before returning from EmitElement; the element's subject is active meanwhile.
	Block func() error
}

// NoContent returns the empty-element variant.
func NoContent() Content {
	return Content{Kind: ContentNone}
}

// TextContent returns the text variant.
func TextContent(text string, value any) Content {
	return Content{Kind: ContentText, Text: text, Value: value}
}

// BlockContent returns the nested-block variant.
func BlockContent(block func() error) Content {
	return Content{Kind: ContentBlock, Block: block}
}

// Renderer turns resolved elements into markup. It owns the output format
// and target; the engine never inspects what it produces.
type Renderer interface {
	EmitElement(name string, attrs Attributes, content Content) error
}

// Commenter is implemented by renderers whose format supports comments.
type Commenter interface {
	EmitComment(text string) error
}
