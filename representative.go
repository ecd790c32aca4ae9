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

package repr

import (
	"github.com/jinzhu/inflection"
	"github.com/rs/zerolog"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/subject"
	uref "dirpx.dev/repr/utils/reflect"
	"dirpx.dev/repr/utils/text"
)

// TypeAttr is the attribute ListOf puts on the wrapping element.
const TypeAttr = "type"

// Representative describes an object graph to an apis.Renderer.
//
// Every call resolves names against the current subject, which starts as
// the subject given to New and changes inside element bodies. A
// Representative is not safe for concurrent use.
type Representative struct {
	renderer apis.Renderer
	ins      apis.Inspector
	nam      apis.Naming
	log      zerolog.Logger
	subjects *subject.Context
}

// Option configures a Representative.
type Option func(*Representative)

// WithInspector overrides the global inspector.
func WithInspector(ins apis.Inspector) Option {
	return func(r *Representative) {
		if ins != nil {
			r.ins = ins
		}
	}
}

// WithNaming overrides the global naming strategy.
func WithNaming(nam apis.Naming) Option {
	return func(r *Representative) {
		if nam != nil {
			r.nam = nam
		}
	}
}

// WithLogger sets the logger. Elements are logged at trace level and
// failures at debug level. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Representative) {
		r.log = log
	}
}

// New returns a Representative writing to renderer with root as the
// initial subject. Inspector and naming default to the global ones.
func New(renderer apis.Renderer, root any, opts ...Option) *Representative {
	s := st.Load()
	r := &Representative{
		renderer: renderer,
		ins:      s.ins,
		nam:      s.nam,
		log:      zerolog.Nop(),
		subjects: subject.New(root),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CurrentSubject returns the subject names are resolved against.
func (r *Representative) CurrentSubject() (any, error) {
	return r.subjects.Current()
}

// Representing makes v the current subject while fn runs, without
// emitting anything.
func (r *Representative) Representing(v any, fn apis.Block) error {
	return r.subjects.With(v, func() error {
		return fn(v)
	})
}

// Comment emits a comment if the renderer supports them.
func (r *Representative) Comment(text string) error {
	if c, ok := r.renderer.(apis.Commenter); ok {
		return c.EmitComment(text)
	}
	return nil
}

// ResolveValue evaluates a value generator. Lazy values are called once,
// a Property is read from the current subject, anything else is returned
// unchanged.
func (r *Representative) ResolveValue(gen any) (any, error) {
	switch g := gen.(type) {
	case apis.Lazy:
		if g == nil {
			return nil, nil
		}
		return g(), nil
	case apis.LazyErr:
		if g == nil {
			return nil, nil
		}
		return g()
	case func() any:
		if g == nil {
			return nil, nil
		}
		return g(), nil
	case func() (any, error):
		if g == nil {
			return nil, nil
		}
		return g()
	case apis.Property:
		cur, err := r.subjects.Current()
		if err != nil {
			return nil, err
		}
		return r.ins.Value(cur, string(g))
	default:
		return gen, nil
	}
}

// Element emits one element named name.
//
// Its subject is the explicit Value, or else the property name of the
// current subject. Metadata the inspector reports for name is merged over
// the given attributes. With a Body the element gets nested content; with
// Empty, or when the subject is nil, it gets none; otherwise its content is
// the text form of the subject.
func (r *Representative) Element(name string, args ...Arg) error {
	c := parse(args)
	if c.listOnly {
		return ErrListOnlyArgument
	}
	return r.element(name, c)
}

// ListOf emits a wrapping element with a "type" attribute of "array" and
// one item element per entry of the list subject, in order. The list
// subject is the explicit Value, or else the property name of the current
// subject. Items are named ItemName, by default the singular of name, and
// use the call's Body or Empty.
func (r *Representative) ListOf(name string, args ...Arg) error {
	c := parse(args)
	if len(c.values) > 1 {
		return ErrTooManyArguments
	}

	var gen any = apis.Property(name)
	if len(c.values) == 1 {
		gen = c.values[0]
	}
	items, err := r.ResolveValue(gen)
	if err != nil {
		return r.fail(name, err)
	}
	if !uref.IsNil(items) && !uref.IsIterable(items) {
		return r.fail(name, ErrNotIterable)
	}

	itemName := c.itemName
	if itemName == "" {
		itemName = inflection.Singular(name)
	}

	attrs := c.attrs.Clone()
	if _, ok := attrs.Get(TypeAttr); !ok {
		attrs = attrs.Set(TypeAttr, apis.Lazy(func() any { return "array" }))
	}

	each := func(any) error {
		_, err := uref.Iterate(items, func(item any) error {
			return r.element(itemName, &call{
				values: []any{item},
				attrs:  c.itemAttrs,
				body:   c.body,
			})
		})
		return err
	}

	return r.element(name, &call{
		values: []any{items},
		attrs:  attrs,
		body:   apis.BlockBody(each),
	})
}

func (r *Representative) element(name string, c *call) error {
	cur, err := r.subjects.Current()
	if err != nil {
		return err
	}

	meta, err := r.ins.Metadata(cur, name)
	if err != nil {
		return r.fail(name, err)
	}
	attrs := c.attrs.Clone().Merge(meta)

	if len(c.values) > 1 {
		return ErrTooManyArguments
	}
	var value any
	if len(c.values) == 1 {
		value = c.values[0]
	} else if value, err = r.ins.Value(cur, name); err != nil {
		return r.fail(name, err)
	}

	return r.subjects.With(value, func() error {
		resolved, err := r.resolveAttributes(attrs)
		if err != nil {
			return r.fail(name, err)
		}
		content := r.content(value, c.body)
		rendered := r.nam.Format(name)

		r.log.Trace().
			Str("element", rendered).
			Int("attrs", len(resolved)).
			Stringer("content", content.Kind).
			Int("depth", r.subjects.Depth()).
			Msg("emit")

		return r.renderer.EmitElement(rendered, resolved, content)
	})
}

// resolveAttributes evaluates every generator with the element's subject
// active, formats names and drops nil values.
func (r *Representative) resolveAttributes(attrs apis.Attributes) (apis.Attributes, error) {
	var out apis.Attributes
	for _, a := range attrs {
		v, err := r.ResolveValue(a.Value)
		if err != nil {
			return nil, err
		}
		if uref.IsNil(v) {
			continue
		}
		out = out.Set(r.nam.Format(a.Name), v)
	}
	return out, nil
}

func (r *Representative) content(value any, body apis.Body) apis.Content {
	if uref.IsNil(value) {
		return apis.NoContent()
	}
	switch body.Kind {
	case apis.BodyBlock:
		return apis.BlockContent(func() error {
			return body.Block(value)
		})
	case apis.BodyEmpty:
		return apis.NoContent()
	default:
		return apis.TextContent(text.String(value), value)
	}
}

// fail logs err for name and returns it unchanged.
func (r *Representative) fail(name string, err error) error {
	r.log.Debug().Err(err).Str("element", name).Msg("element failed")
	return err
}
