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

// Package xml renders elements as an XML document using beevik/etree.
package xml

import (
	"io"

	"github.com/beevik/etree"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/render/tree"
	"dirpx.dev/repr/utils/text"
)

// Renderer records elements and serializes them as XML. It implements
// apis.Renderer and apis.Commenter.
type Renderer struct {
	*tree.Builder
	indent      int
	declaration bool
}

// Ensure Renderer implements the renderer capabilities.
var (
	_ apis.Renderer  = (*Renderer)(nil)
	_ apis.Commenter = (*Renderer)(nil)
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithIndent indents nested elements by n spaces. Zero writes a compact
// document.
func WithIndent(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.indent = n
		}
	}
}

// WithDeclaration controls the leading <?xml ...?> declaration.
func WithDeclaration(on bool) Option {
	return func(r *Renderer) {
		r.declaration = on
	}
}

// New returns an empty Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{Builder: tree.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document converts what has been emitted into an etree document.
// Comments emitted before or after the root element are kept.
func (r *Renderer) Document() (*etree.Document, error) {
	if _, err := r.Root(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if r.declaration {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}
	for _, n := range r.Nodes() {
		build(&doc.Element, n)
	}
	if r.indent > 0 {
		doc.Indent(r.indent)
	}
	return doc, nil
}

// WriteTo writes the document to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	doc, err := r.Document()
	if err != nil {
		return 0, err
	}
	return doc.WriteTo(w)
}

// String returns the document as a string.
func (r *Renderer) String() (string, error) {
	doc, err := r.Document()
	if err != nil {
		return "", err
	}
	return doc.WriteToString()
}

func build(parent *etree.Element, n *tree.Node) {
	if n.Comment {
		parent.CreateComment(n.Text)
		return
	}
	el := parent.CreateElement(n.Name)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Name, text.String(a.Value))
	}
	switch n.Kind {
	case apis.ContentText:
		el.SetText(n.Text)
	case apis.ContentBlock:
		if len(n.Children) == 0 {
			// keeps <list></list> apart from a forced-empty <list/>
			el.CreateText("")
			return
		}
		for _, c := range n.Children {
			build(el, c)
		}
	}
}
