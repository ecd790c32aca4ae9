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

package config

import (
	"dirpx.dev/repr/apis"
)

const (
	// DefaultNaming is the naming strategy used when none is configured.
	DefaultNaming = "dasherize"
	// DefaultTagKey is the struct tag consulted for field names.
	DefaultTagKey = "repr"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMetadata leaves metadata strategies off, so the inspector
	// behaves as plain property access.
	DefaultMetadata = false
	// DefaultTypeHints represents the default for TypeHints.
	DefaultTypeHints = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Naming:    DefaultNaming,
		TagKey:    DefaultTagKey,
		MaxUnwrap: DefaultMaxUnwrap,
		Metadata:  DefaultMetadata,
		TypeHints: DefaultTypeHints,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithNaming sets the Naming option.
func WithNaming(name string) Option {
	return func(c *apis.Config) {
		c.Naming = name
	}
}

// WithTagKey sets the TagKey option.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		c.TagKey = key
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMetadata sets the Metadata option.
func WithMetadata(enabled bool) Option {
	return func(c *apis.Config) {
		c.Metadata = enabled
	}
}

// WithTypeHints sets the TypeHints option. Enabling hints also enables Metadata.
func WithTypeHints(enabled bool) Option {
	return func(c *apis.Config) {
		c.TypeHints = enabled
		if enabled {
			c.Metadata = true
		}
	}
}

// normalize fills blanks left by options or loaders with defaults.
func normalize(cfg apis.Config) apis.Config {
	if cfg.Naming == "" {
		cfg.Naming = DefaultNaming
	}
	if cfg.TagKey == "" {
		cfg.TagKey = DefaultTagKey
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.TypeHints {
		cfg.Metadata = true
	}
	return cfg
}
