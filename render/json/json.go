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

// Package json renders elements as a JSON document.
//
// The root element becomes the document and its name is dropped. Elements
// with nested content become objects keyed by child name, in emission
// order; ListOf wrappers (type="array") become arrays. Text content keeps
// the Go type of booleans and numbers and is a string otherwise; empty
// elements are null. Attributes other than the array marker and comments
// have no JSON form and are left out.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/render/tree"
)

// Renderer records elements and serializes them as JSON.
type Renderer struct {
	*tree.Builder
	indent string
}

// Ensure Renderer implements apis.Renderer.
var _ apis.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithIndent indents nested values with indent. An empty string writes
// compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
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

// Document returns the JSON-ready value of the root element.
func (r *Renderer) Document() (any, error) {
	root, err := r.Root()
	if err != nil {
		return nil, err
	}
	return Value(root), nil
}

// Bytes returns the encoded document followed by a newline.
func (r *Renderer) Bytes() ([]byte, error) {
	doc, err := r.Document()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if r.indent == "" {
		return append(data, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", r.indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
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

// Value converts a recorded node into a value encoding/json can marshal
// with key order preserved.
func Value(n *tree.Node) any {
	switch n.Kind {
	case apis.ContentNone:
		return nil
	case apis.ContentText:
		return n.Scalar()
	}
	if n.IsArray() {
		items := make([]any, 0, len(n.Children))
		for _, c := range n.Elements() {
			items = append(items, Value(c))
		}
		return items
	}
	obj := Object{}
	for _, c := range n.Elements() {
		obj = obj.Set(c.Name, Value(c))
	}
	return obj
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps insertion order. Setting an existing
// key replaces its value in place.
type Object []Member

// Set stores v under key and returns the updated object.
func (o Object) Set(key string, v any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
