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

// Scope is the lifecycle/caching policy owned by exactly one Builder.
//
// A scope is a two-state machine: Empty (no cached instance) and Populated
// (one cached handle). The Empty -> Populated transition happens at most once,
// on the first successful construction; a transient scope never leaves Empty.
type Scope interface {
	// Cached reports the instance published by a previous construction, if any.
	// It performs no construction work and has no side effects.
	Cached() (any, bool)

	// Provide returns the cached instance or runs construct to obtain one,
	// publishing the result per scope semantics. Implementations must make the
	// Empty -> Populated transition race-safe: concurrent first access runs at
	// most one construct whose result all callers observe. A failed construct
	// never populates the scope.
	Provide(construct func() (any, error)) (any, error)
}
