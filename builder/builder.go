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

package builder

import (
	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/inspector"
	"dirpx.dev/repr/naming"
	"dirpx.dev/repr/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Attribute, e.Metadata)
		}
	}
	return nreg
}

// BuildInspector builds and returns a new apis.Inspector. With metadata
// disabled the inspector reads plain properties only; otherwise Describer
// subjects and reg contribute metadata, plus type hints if cfg asks for them.
func (b *builder) BuildInspector(cfg apis.Config, reg apis.Registry, _ apis.Inspector, _ any) apis.Inspector {
	if !cfg.Metadata {
		return inspector.Plain(cfg)
	}
	return inspector.Described(cfg, reg)
}

// BuildNaming returns the naming strategy selected by cfg.Naming, falling
// back to the default when the name is unknown.
func (b *builder) BuildNaming(cfg apis.Config, _ any) apis.Naming {
	n, err := naming.Lookup(cfg.Naming)
	if err != nil {
		return naming.Default()
	}
	return n
}
