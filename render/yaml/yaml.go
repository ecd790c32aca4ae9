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

// Package yaml renders elements as a YAML document using gopkg.in/yaml.v3.
//
// The mapping mirrors the JSON renderer: the root element's name is
// dropped, nested content becomes a mapping in emission order, ListOf
// wrappers become sequences and empty elements are null. Comments are kept
// as head comments of the next key.
package yaml

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/render/tree"
)

// DefaultIndent is the indentation used unless WithIndent says otherwise.
const DefaultIndent = 2

// Renderer records elements and serializes them as YAML. It implements
// apis.Renderer and apis.Commenter.
type Renderer struct {
	*tree.Builder
	indent int
}

// Ensure Renderer implements the renderer capabilities.
var (
	_ apis.Renderer  = (*Renderer)(nil)
	_ apis.Commenter = (*Renderer)(nil)
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithIndent sets the indentation width.
func WithIndent(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.indent = n
		}
	}
}

// New returns an empty Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{Builder: tree.New(), indent: DefaultIndent}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document converts what has been emitted into a YAML document node.
func (r *Renderer) Document() (*yaml.Node, error) {
	root, err := r.Root()
	if err != nil {
		return nil, err
	}
	body, err := Value(root)
	if err != nil {
		return nil, err
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{body}}
	var head []string
	for _, n := range r.Nodes() {
		if n.Comment {
			head = append(head, n.Text)
		}
	}
	doc.HeadComment = joinComments(head)
	return doc, nil
}

// Bytes returns the encoded document.
func (r *Renderer) Bytes() ([]byte, error) {
	doc, err := r.Document()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the encoded document to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	data, err := r.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Value converts a recorded node into a YAML node.
func Value(n *tree.Node) (*yaml.Node, error) {
	switch n.Kind {
	case apis.ContentNone:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case apis.ContentText:
		out := &yaml.Node{}
		if err := out.Encode(n.Scalar()); err != nil {
			return nil, err
		}
		return out, nil
	}

	if n.IsArray() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range n.Elements() {
			item, err := Value(c)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, item)
		}
		return seq, nil
	}

	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var pending []string
	for _, c := range n.Children {
		if c.Comment {
			pending = append(pending, c.Text)
			continue
		}
		val, err := Value(c)
		if err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name, HeadComment: joinComments(pending)}
		pending = nil
		m.Content = setKey(m.Content, key, val)
	}
	return m, nil
}

// setKey stores key/val in mapping content, replacing an existing key in place.
func setKey(content []*yaml.Node, key, val *yaml.Node) []*yaml.Node {
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == key.Value {
			content[i+1] = val
			return content
		}
	}
	return append(content, key, val)
}

func joinComments(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("# ")
		b.WriteString(l)
	}
	return b.String()
}
