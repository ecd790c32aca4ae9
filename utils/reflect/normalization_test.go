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

package reflect_test

import (
	"errors"
	"iter"
	"reflect"
	"testing"

	"dirpx.dev/repr/apis"
	uref "dirpx.dev/repr/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Pointers(t *testing.T) {
	conf := cfg()

	a := &A{}
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr ptr", reflect.TypeOf(&a), reflect.TypeOf(A{})},
		{"generic", reflect.TypeOf(G[int]{}), reflect.TypeOf(G[int]{})},
		{"builtin", reflect.TypeOf(0), reflect.TypeOf(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Normalize(nil) err = %v, want ErrReflectNilType", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(struct{}{}), cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize(anonymous) err = %v, want ErrReflectTypeNotNamed", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf([]A{}), cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize([]A) err = %v, want ErrReflectTypeNotNamed", err)
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	type PP = **A
	tt := reflect.TypeOf((*PP)(nil)).Elem() // **A

	if _, err := uref.Normalize(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); err == nil {
		t.Fatal("MaxUnwrap=1: expected error for **A")
	}
	got, err := uref.Normalize(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 2 }))
	if err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=2: got (%v, %v), want (A, nil)", got, err)
	}
}

func TestIndirect(t *testing.T) {
	n := 9
	p := &n
	var nilPtr *int
	var iface any = &n

	if got := uref.Indirect(reflect.ValueOf(&p), cfg()); !got.IsValid() || got.Interface() != 9 {
		t.Fatalf("Indirect(**int) = %v, want 9", got)
	}
	if got := uref.Indirect(reflect.ValueOf(nilPtr), cfg()); got.IsValid() {
		t.Fatalf("Indirect(nil ptr) = %v, want invalid", got)
	}
	if got := uref.Indirect(reflect.ValueOf(&iface).Elem(), cfg()); !got.IsValid() || got.Interface() != 9 {
		t.Fatalf("Indirect(interface) = %v, want 9", got)
	}
}

func TestIsNil(t *testing.T) {
	var p *A
	var m map[string]int
	var s []int
	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil ptr", p, true},
		{"nil map", m, true},
		{"nil slice", s, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
		{"struct", A{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.IsNil(tc.v); got != tc.want {
				t.Fatalf("IsNil(%#v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestIterate(t *testing.T) {
	collect := func(v any) ([]any, bool) {
		var out []any
		ok, err := uref.Iterate(v, func(item any) error {
			out = append(out, item)
			return nil
		})
		if err != nil {
			t.Fatalf("Iterate(%v) err = %v", v, err)
		}
		return out, ok
	}

	seq := iter.Seq[any](func(yield func(any) bool) {
		for _, s := range []string{"x", "y"} {
			if !yield(s) {
				return
			}
		}
	})
	arr := [2]int{3, 4}

	cases := []struct {
		name   string
		v      any
		want   []any
		wantOK bool
	}{
		{"any slice", []any{1, "a"}, []any{1, "a"}, true},
		{"typed slice", []int{1, 2, 3}, []any{1, 2, 3}, true},
		{"array ptr", &arr, []any{3, 4}, true},
		{"seq", seq, []any{"x", "y"}, true},
		{"empty", []string{}, nil, true},
		{"string", "abc", nil, false},
		{"scalar", 42, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := collect(tc.v)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("items = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestIterate_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	ok, err := uref.Iterate([]int{1, 2, 3}, func(any) error {
		calls++
		return boom
	})
	if !ok || !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("got (ok=%v, err=%v, calls=%d), want (true, boom, 1)", ok, err, calls)
	}
}

func TestIsIterable(t *testing.T) {
	var nilSlice []int
	var seq iter.Seq[any] = func(func(any) bool) { t.Fatal("IsIterable must not consume sequences") }

	cases := []struct {
		v    any
		want bool
	}{
		{[]any{}, true},
		{nilSlice, true},
		{[3]string{}, true},
		{&[]int{1}, true},
		{seq, true},
		{"abc", false},
		{[]byte("abc"), false},
		{map[string]int{}, false},
		{nil, false},
		{3, false},
	}
	for _, tc := range cases {
		if got := uref.IsIterable(tc.v); got != tc.want {
			t.Errorf("IsIterable(%T) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
