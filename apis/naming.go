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

package apis

// Naming maps a symbolic name to its rendered form.
// Implementations must be pure: same input, same output, no side effects.
type Naming interface {
	Format(name string) string
}

// NamingFunc adapts a plain function to the Naming interface.
type NamingFunc func(name string) string

// Format implements Naming for NamingFunc.
func (f NamingFunc) Format(name string) string {
	return f(name)
}
