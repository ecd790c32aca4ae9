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

// Package naming provides the strategies that turn symbolic names such as
// "book_title" into the strings written to the output ("book-title").
//
// Every strategy is pure and memoized; the same input always yields the
// same output and strategies are safe for concurrent use.
package naming

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/iancoleman/strcase"

	"dirpx.dev/repr/apis"
)

// Strategy names accepted by Lookup.
const (
	Dasherize  = "dasherize"
	Underscore = "underscore"
	Camel      = "camel"
	LowerCamel = "lower-camel"
	Plain      = "plain"
)

// ErrUnknownStrategy is returned by Lookup for unregistered names.
var ErrUnknownStrategy = errors.New("repr(naming): unknown naming strategy")

var strategies = map[string]apis.Naming{
	Dasherize:  memoize(strcase.ToKebab),
	Underscore: memoize(strcase.ToSnake),
	Camel:      memoize(strcase.ToCamel),
	LowerCamel: memoize(strcase.ToLowerCamel),
	Plain:      apis.NamingFunc(func(name string) string { return name }),
}

// Default returns the dasherize strategy: "book_title" -> "book-title".
func Default() apis.Naming {
	return strategies[Dasherize]
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (apis.Naming, error) {
	if n, ok := strategies[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Names lists the available strategies in lexical order.
func Names() []string {
	out := make([]string, 0, len(strategies))
	for k := range strategies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// memoized caches the results of a pure transform.
type memoized struct {
	fn    func(string) string
	cache sync.Map // map[string]string
}

func memoize(fn func(string) string) *memoized {
	return &memoized{fn: fn}
}

// Format implements apis.Naming.
func (m *memoized) Format(name string) string {
	if v, ok := m.cache.Load(name); ok {
		return v.(string)
	}
	out := m.fn(name)
	m.cache.Store(name, out)
	return out
}
