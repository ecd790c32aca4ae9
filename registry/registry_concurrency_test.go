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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/repr/config"
	"dirpx.dev/repr/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}
type T4 struct{}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}),
	}
	attrs := []string{"a", "b", "c"}

	for _, tt := range types {
		for _, a := range attrs {
			if err := reg.Register(tt, a, map[string]any{"of": tt.Name() + "." + a}); err != nil {
				t.Fatalf("register %s.%s: %v", tt, a, err)
			}
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers * 2)

	// Readers
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 3000; i++ {
				tt := types[i%len(types)]
				a := attrs[i%len(attrs)]
				got, ok := reg.Lookup(tt, a)
				if !ok || got["of"] != tt.Name()+"."+a {
					t.Errorf("lookup failed for %v.%s: ok=%v got=%v", tt, a, ok, got)
					return
				}
			}
		}()
	}

	// Idempotent writers
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				tt := types[i%len(types)]
				a := attrs[i%len(attrs)]
				if err := reg.Register(tt, a, map[string]any{"of": tt.Name() + "." + a}); err != nil {
					t.Errorf("idempotent register %v.%s: %v", tt, a, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	want := len(types) * len(attrs)
	if got := reg.Count(); got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got := len(reg.Entries()); got != want {
		t.Fatalf("len(Entries()) = %d, want %d", got, want)
	}
}
