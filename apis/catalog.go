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

// Catalog is the query side of the registry: it maps a requested type identity
// to a constructed instance. Implementations must be safe for unlimited
// concurrent readers once assembled.
//
// Builders receive a Catalog while constructing their dependencies; the value
// they receive carries the in-progress resolution stack, so nested lookups made
// through it participate in cycle detection.
type Catalog interface {
	// Get resolves exactly one instance whose identity matches t.
	// Zero matching builders yield *NotFoundError, more than one yield
	// *AmbiguousError. The returned handle is shared: callers must not
	// assume exclusive ownership.
	Get(t reflect.Type) (any, error)

	// GetAll resolves every builder matching t, in registration order.
	// Zero matches yield an empty slice, not an error.
	GetAll(t reflect.Type) ([]any, error)

	// Builders returns a snapshot of all registered builders for
	// diagnostics/docs (order follows registration).
	Builders() []Builder
}

// Cloner lets an owned-value component supply a deep copy of itself.
// When absent, owned resolution takes a plain value copy.
type Cloner[T any] interface {
	Clone() T
}
