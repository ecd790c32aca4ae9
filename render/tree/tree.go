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

// Package tree is an apis.Renderer that records elements as an in-memory
// node tree. The XML, JSON and YAML renderers serialize that tree; tests
// inspect it directly.
package tree

import (
	"errors"
	"reflect"
	"strings"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/utils/text"
)

var (
	// ErrNoDocument is returned when a document is requested before any
	// element was emitted.
	ErrNoDocument = errors.New("repr(render): no root element")
	// ErrMultipleRoots is returned when more than one top-level element
	// was emitted.
	ErrMultipleRoots = errors.New("repr(render): more than one root element")
	// ErrUnbalanced is returned when a document is requested while an
	// element block is still running.
	ErrUnbalanced = errors.New("repr(render): element block still open")
)

// Node is one recorded element or comment.
type Node struct {
	// Name is the rendered element name; empty for comments.
	Name string
	// Attrs holds resolved attributes in order; nil when there are none.
	Attrs apis.Attributes
	// Kind is the content variant the element was emitted with.
	Kind apis.ContentKind
	// Text is the text content (ContentText) or the comment text.
	Text string
	// Value is the subject behind Text.
	Value any
	// Children are the nodes emitted by the element's block.
	Children []*Node
	// Comment marks comment nodes.
	Comment bool
}

// Elements returns the children that are not comments.
func (n *Node) Elements() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.Comment {
			out = append(out, c)
		}
	}
	return out
}

// IsArray reports whether the node was emitted by ListOf, i.e. it has a
// "type" attribute (in any naming) whose value is "array".
func (n *Node) IsArray() bool {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name, "type") && text.String(a.Value) == "array" {
			return true
		}
	}
	return false
}

// Scalar returns the typed value of a text node: booleans and numbers keep
// their Go type, everything else is its text. Empty nodes yield nil.
func (n *Node) Scalar() any {
	if n.Kind != apis.ContentText {
		return nil
	}
	rv := reflect.ValueOf(n.Value)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return n.Value
	default:
		return n.Text
	}
}

// String renders the subtree in a compact XML-like notation, handy in
// tests and debug logs.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Comment {
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->")
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(text.String(a.Value))
		b.WriteByte('"')
	}
	switch n.Kind {
	case apis.ContentNone:
		b.WriteString("/>")
		return
	case apis.ContentText:
		b.WriteByte('>')
		b.WriteString(n.Text)
	default:
		b.WriteByte('>')
		for _, c := range n.Children {
			c.write(b)
		}
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// Builder records emitted elements. It implements apis.Renderer and
// apis.Commenter. It is not safe for concurrent use.
type Builder struct {
	top   Node
	stack []*Node
}

// Ensure Builder implements the renderer capabilities.
var (
	_ apis.Renderer  = (*Builder)(nil)
	_ apis.Commenter = (*Builder)(nil)
)

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// EmitElement records the element under the innermost open block and runs
// its block, if any.
func (b *Builder) EmitElement(name string, attrs apis.Attributes, content apis.Content) error {
	n := &Node{Name: name, Kind: content.Kind}
	if len(attrs) > 0 {
		n.Attrs = attrs.Clone()
	}
	parent := b.current()
	parent.Children = append(parent.Children, n)

	switch content.Kind {
	case apis.ContentText:
		n.Text = content.Text
		n.Value = content.Value
	case apis.ContentBlock:
		if content.Block == nil {
			return nil
		}
		b.stack = append(b.stack, n)
		defer func() { b.stack = b.stack[:len(b.stack)-1] }()
		return content.Block()
	}
	return nil
}

// EmitComment records a comment under the innermost open block.
func (b *Builder) EmitComment(text string) error {
	parent := b.current()
	parent.Children = append(parent.Children, &Node{Text: text, Comment: true})
	return nil
}

// Depth returns the number of element blocks currently running.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Nodes returns the top-level nodes, comments included.
func (b *Builder) Nodes() []*Node {
	return b.top.Children
}

// Root returns the single top-level element.
func (b *Builder) Root() (*Node, error) {
	if len(b.stack) > 0 {
		return nil, ErrUnbalanced
	}
	roots := b.top.Elements()
	switch len(roots) {
	case 0:
		return nil, ErrNoDocument
	case 1:
		return roots[0], nil
	default:
		return nil, ErrMultipleRoots
	}
}

// Reset discards everything recorded so far.
func (b *Builder) Reset() {
	b.top = Node{}
	b.stack = b.stack[:0]
}

func (b *Builder) current() *Node {
	if len(b.stack) == 0 {
		return &b.top
	}
	return b.stack[len(b.stack)-1]
}
