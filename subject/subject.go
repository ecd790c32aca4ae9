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

// Package subject tracks which value the representation engine is currently
// describing.
//
// A Context is a stack: entering an element pushes its subject, leaving the
// element pops it, so nested elements read properties of the innermost
// subject. Pops happen on every exit path, panics included.
package subject

import "errors"

// ErrNoActiveSubject is returned by Current on an empty stack.
var ErrNoActiveSubject = errors.New("repr(subject): no active subject")

// Context is a scoped subject stack. It is not safe for concurrent use.
type Context struct {
	stack []any
}

// New returns a Context. If initial is given, its first value becomes the
// bottom of the stack and stays current outside any scope.
func New(initial ...any) *Context {
	c := &Context{}
	if len(initial) > 0 {
		c.stack = append(c.stack, initial[0])
	}
	return c
}

// With makes v the current subject while fn runs, then restores the previous
// subject, whether fn returns, fails or panics.
func (c *Context) With(v any, fn func() error) error {
	depth := len(c.stack)
	c.stack = append(c.stack, v)
	defer func() {
		clear(c.stack[depth:])
		c.stack = c.stack[:depth]
	}()
	return fn()
}

// Current returns the innermost subject.
func (c *Context) Current() (any, error) {
	if len(c.stack) == 0 {
		return nil, ErrNoActiveSubject
	}
	return c.stack[len(c.stack)-1], nil
}

// Depth returns the number of active subjects.
func (c *Context) Depth() int {
	return len(c.stack)
}
