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

// Package inspector implements apis.Inspector as an ordered chain of
// apis.Strategy values.
//
// Values come from the first strategy that handles the name. Metadata is
// the union of every contributing strategy; on key collisions the earlier
// strategy in the chain wins.
package inspector

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/strategy"
	uref "dirpx.dev/repr/utils/reflect"
)

var (
	// ErrNoSuchProperty is returned when no strategy can read the name.
	ErrNoSuchProperty = errors.New("repr(inspector): no such property")
	// ErrNilSubject is returned when a property is read from a nil subject.
	ErrNilSubject = errors.New("repr(inspector): property read on nil subject")
)

// PropertyError reports a failed property read.
type PropertyError struct {
	// Type is the dynamic type of the subject, nil for a nil subject.
	Type reflect.Type
	// Name is the symbolic property name.
	Name string
	// Err is ErrNoSuchProperty or ErrNilSubject.
	Err error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("%v: %s", e.Err, e.Name)
	}
	return fmt.Sprintf("%v: %s.%s", e.Err, e.Type, e.Name)
}

// Unwrap implements the errors.Unwrap interface.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// New constructs an apis.Inspector that tries the given strategies in order.
// Nil strategies are ignored. The returned inspector is safe for concurrent
// use provided strategies themselves are.
func New(cfg apis.Config, strategies ...apis.Strategy) apis.Inspector {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{cfg: cfg, strats: out}
}

// Plain returns the default inspector: plain property access
// (Valuer, map keys, struct fields and methods) and empty metadata.
func Plain(cfg apis.Config) apis.Inspector {
	return New(cfg,
		strategy.NewValuerStrategy(),
		strategy.NewMapStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// Described returns Plain extended with metadata from apis.Describer
// subjects, then reg, then (if cfg.TypeHints) kind-derived type hints.
func Described(cfg apis.Config, reg apis.Registry) apis.Inspector {
	plain := Plain(cfg)
	strats := []apis.Strategy{
		strategy.NewValuerStrategy(),
		strategy.NewMapStrategy(),
		strategy.NewReflectStrategy(),
		strategy.NewDescriberStrategy(),
	}
	if reg != nil {
		strats = append(strats, strategy.NewRegistryStrategy(reg))
	}
	if cfg.TypeHints {
		strats = append(strats, strategy.NewTypeHintsStrategy(plain))
	}
	return New(cfg, strats...)
}

// chain is an immutable, order-preserving inspector over a set of strategies.
type chain struct {
	cfg    apis.Config
	strats []apis.Strategy
}

// Value runs strategies in order until one handles the name.
func (c chain) Value(subject any, name string) (any, error) {
	if uref.IsNil(subject) {
		return nil, &PropertyError{Name: name, Err: ErrNilSubject}
	}
	for _, s := range c.strats {
		v, ok, err := s.TryValue(subject, name, c.cfg)
		if err != nil {
			return nil, err
		}
		if ok {
			return v, nil
		}
	}
	return nil, &PropertyError{Type: reflect.TypeOf(subject), Name: name, Err: ErrNoSuchProperty}
}

// Metadata merges what every strategy contributes. It never fails and
// returns an empty (non-nil) map when nothing is known.
func (c chain) Metadata(subject any, name string) (map[string]any, error) {
	out := map[string]any{}
	if uref.IsNil(subject) {
		return out, nil
	}
	// Walk backwards so earlier strategies overwrite later ones.
	for i := len(c.strats) - 1; i >= 0; i-- {
		if meta, ok := c.strats[i].TryMetadata(subject, name, c.cfg); ok {
			maps.Copy(out, meta)
		}
	}
	return out, nil
}
