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
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/builder"
	"dirpx.dev/repr/config"
)

// init initializes the global defaults.
func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	s := &state{cfg: cfg, bld: b}
	s.reg = b.BuildRegistry(cfg, nil, nil)
	s.ins = b.BuildInspector(cfg, s.reg, nil, nil)
	s.nam = b.BuildNaming(cfg, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("repr: builder returned nil registry")
	// ErrNilInspector is returned when a builder returns a nil inspector.
	ErrNilInspector = errors.New("repr: builder returned nil inspector")
	// ErrNilNaming is returned when a builder returns a nil naming strategy.
	ErrNilNaming = errors.New("repr: builder returned nil naming")
)

// layer selects the parts of the snapshot a writer rebuilds.
type layer uint8

const (
	layerRegistry layer = 1 << iota
	layerInspector
	layerNaming

	layerAll = layerRegistry | layerInspector | layerNaming
)

// publish rebuilds the requested layers of next from prev (skipping pinned
// ones), validates the result and swaps it in. Callers hold buildMu.
func publish(prev, next *state, rebuild layer) {
	if rebuild&layerRegistry != 0 && !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, prev.reg, next.ext)
	}
	if rebuild&layerInspector != 0 && !next.pins {
		next.ins = next.bld.BuildInspector(next.cfg, next.reg, prev.ins, next.ext)
	}
	if rebuild&layerNaming != 0 {
		next.nam = next.bld.BuildNaming(next.cfg, next.ext)
	}

	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.ins == nil {
		panic(ErrNilInspector)
	}
	if next.nam == nil {
		panic(ErrNilNaming)
	}
	st.Store(next)
}

// RegisterMetadata declares metadata for an attribute of type t in the
// global registry. Inspectors built with Config.Metadata report it for
// every subject of that type.
func RegisterMetadata(t reflect.Type, attribute string, meta map[string]any) error {
	return st.Load().reg.Register(t, attribute, meta)
}

// SetAll explicitly sets all global components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. A nil reg or ins is rebuilt
// and unpinned; a non-nil one is pinned.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, ins apis.Inspector, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{
		cfg:  old.cfg,
		ext:  ext,
		reg:  reg,
		ins:  ins,
		bld:  old.bld,
		preg: reg != nil,
		pins: ins != nil,
	}
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	publish(old, next, layerAll)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the
// unpinned layers with it.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.cfg = cfg
	publish(old, next, layerAll)
}

// Registry returns the global metadata registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the inspector
// unless it is pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.reg = reg
	next.preg = true
	publish(old, next, layerInspector)
}

// Inspector returns the global inspector.
func Inspector() apis.Inspector {
	return st.Load().ins
}

// SetInspector pins ins as the global inspector.
func SetInspector(ins apis.Inspector) {
	if ins == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.ins = ins
	next.pins = true
	publish(old, next, 0)
}

// Naming returns the global naming strategy selected by Config().Naming.
func Naming() apis.Naming {
	return st.Load().nam
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the unpinned layers
// with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.bld = b
	publish(old, next, layerAll)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.ext = ext
	publish(old, next, layerAll)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() {
	setPins(func(s *state) { s.preg = true })
}

// UnpinRegistry allows automatic rebuilds of the global registry again.
func UnpinRegistry() {
	setPins(func(s *state) { s.preg = false })
}

// IsInspectorPinned returns whether the global inspector is pinned.
func IsInspectorPinned() bool {
	return st.Load().pins
}

// PinInspector stops automatic rebuilds of the global inspector.
func PinInspector() {
	setPins(func(s *state) { s.pins = true })
}

// UnpinInspector allows automatic rebuilds of the global inspector again.
func UnpinInspector() {
	setPins(func(s *state) { s.pins = false })
}

func setPins(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	fn(next)
	publish(old, next, 0)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; never mutate fields of a
// published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the opaque extension payload handed to the builder.
	ext any
	// reg is the global metadata registry.
	reg apis.Registry
	// ins is the global inspector.
	ins apis.Inspector
	// nam is the naming strategy derived from cfg.
	nam apis.Naming
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pins indicates whether ins is pinned.
	pins bool
}

// clone returns an unpublished copy of s.
func (s *state) clone() *state {
	c := *s
	return &c
}
