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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/naming"
)

// EnvPrefix is the prefix of environment variables overriding configuration,
// e.g. REPR_NAMING=underscore or REPR_TYPE_HINTS=true.
const EnvPrefix = "REPR_"

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("repr(config): unsupported config file format")

// Load layers defaults, the optional file at path and REPR_* environment
// variables, in that order, and returns the resulting configuration.
// An empty path skips the file layer.
func Load(path string) (apis.Config, error) {
	k := koanf.New(".")

	def := DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]any{
		"naming":     def.Naming,
		"tag_key":    def.TagKey,
		"max_unwrap": def.MaxUnwrap,
		"metadata":   def.Metadata,
		"type_hints": def.TypeHints,
	}, "."), nil); err != nil {
		return apis.Config{}, fmt.Errorf("repr(config): load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return apis.Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return apis.Config{}, fmt.Errorf("repr(config): load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return apis.Config{}, fmt.Errorf("repr(config): load environment: %w", err)
	}

	var cfg apis.Config
	uc := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, uc); err != nil {
		return apis.Config{}, fmt.Errorf("repr(config): unmarshal: %w", err)
	}

	cfg = normalize(cfg)
	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values no component can honour.
func Validate(cfg apis.Config) error {
	if _, err := naming.Lookup(cfg.Naming); err != nil {
		return fmt.Errorf("repr(config): %w", err)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml", ".json":
		// YAML is a superset of JSON.
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
