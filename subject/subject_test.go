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

package subject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Empty(t *testing.T) {
	c := New()
	_, err := c.Current()
	assert.ErrorIs(t, err, ErrNoActiveSubject)
	assert.Equal(t, 0, c.Depth())
}

func TestContext_Seeded(t *testing.T) {
	c := New("root", "ignored")
	cur, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "root", cur)
	assert.Equal(t, 1, c.Depth())
}

func TestContext_NestedScopes(t *testing.T) {
	c := New("root")
	var seen []any

	err := c.With("a", func() error {
		cur, _ := c.Current()
		seen = append(seen, cur)
		return c.With("b", func() error {
			cur, _ := c.Current()
			seen = append(seen, cur)
			assert.Equal(t, 3, c.Depth())
			return nil
		})
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b"}, seen)
	cur, _ := c.Current()
	assert.Equal(t, "root", cur)
	assert.Equal(t, 1, c.Depth())
}

func TestContext_NilIsAValidSubject(t *testing.T) {
	c := New("root")
	err := c.With(nil, func() error {
		cur, err := c.Current()
		require.NoError(t, err)
		assert.Nil(t, cur)
		return nil
	})
	require.NoError(t, err)
}

func TestContext_RestoresOnError(t *testing.T) {
	c := New("root")
	boom := errors.New("boom")

	err := c.With("a", func() error { return boom })
	assert.ErrorIs(t, err, boom)

	cur, _ := c.Current()
	assert.Equal(t, "root", cur)
}

func TestContext_RestoresOnPanic(t *testing.T) {
	c := New("root")

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = c.With("a", func() error {
			return c.With("b", func() error { panic("kaboom") })
		})
	})

	cur, _ := c.Current()
	assert.Equal(t, "root", cur)
	assert.Equal(t, 1, c.Depth())
}
