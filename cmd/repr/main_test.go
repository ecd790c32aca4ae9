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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr"
	"dirpx.dev/repr/config"
)

const library = `
name: City
books:
  - title: Dune
    pages: 412
  - title: Emma
    pages: 474
`

// execute runs the CLI with args and stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { repr.SetConfig(config.DefaultConfig()) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_XMLFromStdin(t *testing.T) {
	out, err := execute(t, library, "render")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`), out)
	assert.Contains(t, out, "<document>")
	assert.Contains(t, out, `<books type="array">`)
	assert.Contains(t, out, "<title>Dune</title>")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "Emma"))
}

func TestRender_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(library), 0o600))

	out, err := execute(t, "", "render", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"City","books":[{"title":"Dune","pages":412},{"title":"Emma","pages":474}]}`, out)
}

func TestRender_YAMLWithRootAndNaming(t *testing.T) {
	out, err := execute(t, `{"book_title": "Dune"}`, "render", "-", "-i", "json", "-f", "yaml", "-n", "camel", "-r", "shelf")
	require.NoError(t, err)
	assert.Equal(t, "BookTitle: Dune\n", out)
}

func TestRender_TypeHints(t *testing.T) {
	out, err := execute(t, "pages: 412\n", "render", "--type-hints", "--root", "book")
	require.NoError(t, err)
	assert.Contains(t, out, `<pages type="integer">412</pages>`)
}

func TestRender_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`naming = "underscore"`), 0o600))

	out, err := execute(t, "book_title: Dune\n", "render", "--config", cfgPath, "-f", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "book_title: Dune\n", out)
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "a: 1", "render", "--format", "csv")
	assert.ErrorIs(t, err, errUnknownOutput)

	_, err = execute(t, "a: 1", "render", "--naming", "shouty")
	assert.Error(t, err)

	_, err = execute(t, "", "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "repr version dev")
}

func TestRootName(t *testing.T) {
	assert.Equal(t, "shelf", rootName("shelf", "x.yaml"))
	assert.Equal(t, "library", rootName("", "/data/library.yaml"))
	assert.Equal(t, "document", rootName("", "-"))
}
