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

package describe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr"
	"dirpx.dev/repr/internal/data"
	"dirpx.dev/repr/render/tree"
)

func describeYAML(t *testing.T, root, src string) string {
	t.Helper()
	doc, err := data.Load(strings.NewReader(src), data.YAML)
	require.NoError(t, err)

	out := tree.New()
	require.NoError(t, Describe(repr.New(out, nil), root, doc))
	node, err := out.Root()
	require.NoError(t, err)
	return node.String()
}

func TestDescribe_Document(t *testing.T) {
	got := describeYAML(t, "library", `
name: City
opened_on: 1901
books:
  - title: Dune
    series: null
  - title: Emma
tags: [sf, classic]
`)
	assert.Equal(t,
		`<library><name>City</name><opened-on>1901</opened-on>`+
			`<books type="array"><book><title>Dune</title><series/></book><book><title>Emma</title></book></books>`+
			`<tags type="array"><tag>sf</tag><tag>classic</tag></tags>`+
			`</library>`,
		got)
}

func TestDescribe_MixedList(t *testing.T) {
	got := describeYAML(t, "doc", `
items:
  - 1
  - name: two
  - [3]
`)
	assert.Equal(t,
		`<doc><items type="array"><item>1</item><item><name>two</name></item>`+
			`<item type="array"><item>3</item></item></items></doc>`,
		got)
}

func TestDescribe_TopLevelShapes(t *testing.T) {
	assert.Equal(t, `<value>42</value>`, describeYAML(t, "value", `42`))
	assert.Equal(t, `<numbers type="array"><number>1</number><number>2</number></numbers>`,
		describeYAML(t, "numbers", `[1, 2]`))
}
