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
	"errors"

	"dirpx.dev/repr/apis"
)

var (
	// ErrTooManyArguments is returned when more than one explicit value is
	// passed to Element or ListOf.
	ErrTooManyArguments = errors.New("repr: too many arguments")
	// ErrListOnlyArgument is returned when ItemName, ItemAttr or ItemAttrs
	// is passed to Element.
	ErrListOnlyArgument = errors.New("repr: item arguments are only valid for ListOf")
	// ErrNotIterable is returned by ListOf when the list subject is neither
	// nil nor a collection.
	ErrNotIterable = errors.New("repr: list subject is not iterable")
)

// Arg shapes a single Element or ListOf call.
type Arg func(*call)

// call is the parsed argument set of one Element or ListOf call.
type call struct {
	values    []any
	attrs     apis.Attributes
	body      apis.Body
	itemName  string
	itemAttrs apis.Attributes
	listOnly  bool
}

func parse(args []Arg) *call {
	c := &call{}
	for _, arg := range args {
		if arg != nil {
			arg(c)
		}
	}
	return c
}

// Value gives the element an explicit subject instead of reading the
// property of the same name from the current subject. Nil is a valid value.
func Value(v any) Arg {
	return func(c *call) {
		c.values = append(c.values, v)
	}
}

// Attr adds an attribute. gen is a literal or a value generator
// (apis.Lazy, apis.LazyErr, func() any, apis.Property).
func Attr(name string, gen any) Arg {
	return func(c *call) {
		c.attrs = c.attrs.Set(name, gen)
	}
}

// Attrs adds every entry of m as an attribute, in key order.
func Attrs(m map[string]any) Arg {
	return func(c *call) {
		c.attrs = c.attrs.Merge(m)
	}
}

// Body makes fn produce the element's nested content. fn receives the
// element's subject, which is also current while it runs.
func Body(fn apis.Block) Arg {
	return func(c *call) {
		c.body = apis.BlockBody(fn)
	}
}

// Empty forces an empty element even when its subject is not nil.
func Empty() Arg {
	return func(c *call) {
		c.body = apis.EmptyBody
	}
}

// ItemName overrides the element name of ListOf items.
func ItemName(name string) Arg {
	return func(c *call) {
		c.itemName = name
		c.listOnly = true
	}
}

// ItemAttr adds an attribute to every ListOf item.
func ItemAttr(name string, gen any) Arg {
	return func(c *call) {
		c.itemAttrs = c.itemAttrs.Set(name, gen)
		c.listOnly = true
	}
}

// ItemAttrs adds every entry of m, in key order, to every ListOf item.
func ItemAttrs(m map[string]any) Arg {
	return func(c *call) {
		c.itemAttrs = c.itemAttrs.Merge(m)
		c.listOnly = true
	}
}
