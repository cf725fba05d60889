/*
   Copyright 2025 The dill-go Authors.

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

import "reflect"

// Builder is the type-erased producer contract every registered component
// satisfies. A Builder owns its Scope and its argument overrides; its lifetime
// equals the Catalog's.
//
// Implementations are expected to forward the type-erased Get to a typed path
// and perform a checked erasure on the way out, never an unchecked cast.
type Builder interface {
	// InstanceType is the advertised identity used for registry lookup:
	// the handle type the builder produces (conventionally *Component).
	InstanceType() reflect.Type

	// InstanceTypeName is a stable, human-readable name for diagnostics.
	InstanceTypeName() string

	// Get returns a shared handle to an instance, consulting the Scope first
	// and constructing (through cat) only on a cache miss. Any dependency
	// resolution failure aborts construction and is propagated unchanged.
	Get(cat Catalog) (any, error)
}
