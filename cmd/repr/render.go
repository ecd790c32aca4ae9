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

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"dirpx.dev/repr"
	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
	"dirpx.dev/repr/internal/data"
	"dirpx.dev/repr/internal/describe"
	"dirpx.dev/repr/internal/logging"
	"dirpx.dev/repr/render/json"
	"dirpx.dev/repr/render/xml"
	"dirpx.dev/repr/render/yaml"
)

// configFile is looked up under the XDG config directories.
const configFile = "repr/config.toml"

// defaultRoot names the root element of documents read from stdin.
const defaultRoot = "document"

var errUnknownOutput = errors.New("unknown output format")

type renderOptions struct {
	format    string
	root      string
	naming    string
	input     string
	config    string
	typeHints bool
}

// document is a renderer that can write what it recorded.
type document interface {
	apis.Renderer
	WriteTo(w io.Writer) (int64, error)
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a data file",
		Long: `Render reads a YAML, JSON or TOML document (stdin when the file is
omitted or "-") and writes it as XML, JSON or YAML. Mappings become
elements in key order, lists become typed arrays with singular item names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := data.Stdin
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd, path, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "xml", "Output format: xml, json or yaml")
	f.StringVarP(&opts.root, "root", "r", "", "Root element name (default: file name, or \"document\" for stdin)")
	f.StringVarP(&opts.naming, "naming", "n", "", "Naming strategy: camel, dasherize, lower-camel, plain or underscore")
	f.StringVarP(&opts.input, "input", "i", "", "Input format: yaml, json or toml (default: from the file extension)")
	f.StringVarP(&opts.config, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/"+configFile+")")
	f.BoolVar(&opts.typeHints, "type-hints", false, "Annotate scalar elements with their type")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	logger := logging.Get("render")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	repr.SetConfig(cfg)
	logger.Debug().Str("naming", cfg.Naming).Bool("metadata", cfg.Metadata).Msg("config loaded")

	format, err := data.ParseFormat(opts.input)
	if err != nil {
		return err
	}
	var doc any
	if path == data.Stdin {
		if format == "" {
			format = data.YAML
		}
		doc, err = data.Load(cmd.InOrStdin(), format)
	} else {
		doc, err = data.LoadFile(path, format)
	}
	if err != nil {
		return err
	}

	out, err := newDocument(opts.format)
	if err != nil {
		return err
	}

	r := repr.New(out, nil, repr.WithLogger(logging.Get("engine")))
	if err := describe.Describe(r, rootName(opts.root, path), doc); err != nil {
		return fmt.Errorf("describe %s: %w", path, err)
	}
	if _, err := out.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("write %s: %w", opts.format, err)
	}
	return nil
}

// loadConfig layers the config file, environment and flags.
func loadConfig(opts *renderOptions) (apis.Config, error) {
	path := opts.config
	if path == "" {
		if found, err := xdg.SearchConfigFile(configFile); err == nil {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return apis.Config{}, err
	}
	if opts.naming != "" {
		cfg.Naming = opts.naming
	}
	if opts.typeHints {
		cfg = config.NewConfig(
			config.WithNaming(cfg.Naming),
			config.WithTagKey(cfg.TagKey),
			config.WithMaxUnwrap(cfg.MaxUnwrap),
			config.WithTypeHints(true),
		)
	}
	return cfg, config.Validate(cfg)
}

func newDocument(format string) (document, error) {
	switch strings.ToLower(format) {
	case "xml":
		return xml.New(xml.WithIndent(2), xml.WithDeclaration(true)), nil
	case "json":
		return json.New(json.WithIndent("  ")), nil
	case "yaml", "yml":
		return yaml.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOutput, format)
	}
}

func rootName(flag, path string) string {
	if flag != "" {
		return flag
	}
	if path == data.Stdin {
		return defaultRoot
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
