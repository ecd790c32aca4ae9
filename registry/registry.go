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

package registry

import (
	"errors"
	"maps"
	"reflect"
	"sync"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
	uref "dirpx.dev/repr/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("repr(registry): nil reflect.Type provided")
	// ErrEmptyAttribute is returned when an empty attribute name is provided.
	ErrEmptyAttribute = errors.New("repr(registry): empty attribute name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// an attribute with different metadata.
	ErrConflictingRegistration = errors.New("repr(registry): conflicting metadata registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// key identifies one attribute of one normalized type.
type key struct {
	t    reflect.Type
	attr string
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps key to registered metadata.
	m sync.Map // map[key]map[string]any
	// count tracks the number of registered entries.
	count int
}

// Register associates meta with the attribute of the nearest named type of t.
// It is idempotent for identical metadata.
func (r *registry) Register(t reflect.Type, attribute string, meta map[string]any) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if attribute == "" {
		return ErrEmptyAttribute
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	k := key{t: b, attr: attribute}
	stored := maps.Clone(meta)
	if stored == nil {
		stored = map[string]any{}
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(k); ok {
		return sameOrConflict(old.(map[string]any), stored)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(k); ok {
		return sameOrConflict(old.(map[string]any), stored)
	}

	r.m.Store(k, stored)
	r.count++
	return nil
}

// Lookup returns a copy of the metadata registered for (t, attribute).
func (r *registry) Lookup(t reflect.Type, attribute string) (map[string]any, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(key{t: nt, attr: attribute}); ok {
		return maps.Clone(v.(map[string]any)), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(k, v any) bool {
		kk := k.(key)
		entries = append(entries, apis.Entry{
			Type:      kk.t,
			Attribute: kk.attr,
			Metadata:  maps.Clone(v.(map[string]any)),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

func sameOrConflict(old, meta map[string]any) error {
	if reflect.DeepEqual(old, meta) {
		return nil
	}
	return ErrConflictingRegistration
}
