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

package inspector

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/repr/apis"
	"dirpx.dev/repr/config"
	"dirpx.dev/repr/registry"
)

type Product struct {
	Name  string
	Price float64
	Stock int
}

func (Product) RepresentationMetadata(name string) map[string]any {
	if name == "price" {
		return map[string]any{"currency": "EUR", "type": "money"}
	}
	return nil
}

// fixed is a test strategy with canned answers.
type fixed struct {
	value   any
	handled bool
	err     error
	meta    map[string]any
}

func (f fixed) TryValue(any, string, apis.Config) (any, bool, error) {
	return f.value, f.handled, f.err
}

func (f fixed) TryMetadata(any, string, apis.Config) (map[string]any, bool) {
	return f.meta, f.meta != nil
}

func TestChain_FirstHandlerWins(t *testing.T) {
	ins := New(config.DefaultConfig(),
		nil,
		fixed{},
		fixed{value: "first", handled: true},
		fixed{value: "second", handled: true},
	)

	v, err := ins.Value(Product{}, "x")
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestChain_StrategyErrorStops(t *testing.T) {
	boom := errors.New("boom")
	ins := New(config.DefaultConfig(),
		fixed{err: boom},
		fixed{value: "unreached", handled: true},
	)

	_, err := ins.Value(Product{}, "x")
	assert.ErrorIs(t, err, boom)
}

func TestChain_NoSuchProperty(t *testing.T) {
	ins := Plain(config.DefaultConfig())

	_, err := ins.Value(Product{}, "colour")
	require.ErrorIs(t, err, ErrNoSuchProperty)

	var perr *PropertyError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "colour", perr.Name)
	assert.Equal(t, reflect.TypeOf(Product{}), perr.Type)
	assert.Contains(t, err.Error(), "inspector.Product.colour")
}

func TestChain_NilSubject(t *testing.T) {
	ins := Plain(config.DefaultConfig())

	for _, subject := range []any{nil, (*Product)(nil)} {
		_, err := ins.Value(subject, "name")
		assert.ErrorIs(t, err, ErrNilSubject)

		meta, err := ins.Metadata(subject, "name")
		require.NoError(t, err)
		assert.NotNil(t, meta)
		assert.Empty(t, meta)
	}
}

func TestPlain_Values(t *testing.T) {
	ins := Plain(config.DefaultConfig())
	p := &Product{Name: "Tea", Price: 3.5, Stock: 10}

	name, err := ins.Value(p, "name")
	require.NoError(t, err)
	assert.Equal(t, "Tea", name)

	stock, err := ins.Value(map[string]any{"stock": 4}, "stock")
	require.NoError(t, err)
	assert.Equal(t, 4, stock)
}

func TestPlain_MetadataIsAlwaysEmpty(t *testing.T) {
	ins := Plain(config.DefaultConfig())

	meta, err := ins.Metadata(Product{}, "price")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, meta)
}

func TestDescribed_Metadata(t *testing.T) {
	cfg := config.NewConfig(config.WithMetadata(true))
	reg := registry.New(cfg)
	require.NoError(t, reg.Register(reflect.TypeOf(Product{}), "price", map[string]any{
		"type":      "decimal", // shadowed by the Describer
		"precision": 2,
	}))
	ins := Described(cfg, reg)

	meta, err := ins.Metadata(Product{}, "price")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"currency": "EUR", "type": "money", "precision": 2}, meta)

	meta, err = ins.Metadata(Product{}, "name")
	require.NoError(t, err)
	assert.Empty(t, meta)
}

func TestDescribed_TypeHints(t *testing.T) {
	cfg := config.NewConfig(config.WithTypeHints(true))
	ins := Described(cfg, nil)

	meta, err := ins.Metadata(Product{Stock: 1}, "stock")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "integer"}, meta)

	// Describer wins over the hint.
	meta, err = ins.Metadata(Product{}, "price")
	require.NoError(t, err)
	assert.Equal(t, "money", meta["type"])

	meta, err = ins.Metadata(Product{}, "name")
	require.NoError(t, err)
	assert.Empty(t, meta)
}
