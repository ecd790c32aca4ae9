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

package text

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type shoe struct{ size int }

func (s shoe) String() string { return "shoe" }

func TestString(t *testing.T) {
	ts := time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Dune", "Dune"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"text marshaler", ts, "2009-11-10T23:00:00Z"},
		{"text marshaler over stringer", net.IPv4(10, 0, 0, 1), "10.0.0.1"},
		{"stringer", shoe{size: 9}, "shoe"},
		{"error", errors.New("boom"), "boom"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, String(tc.in))
		})
	}
}
