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

// Namer lets a component choose its own diagnostic name.
//
// When a component's value type implements Namer, builders use EntityName()
// as the InstanceTypeName instead of deriving a "pkg.Type" name by reflection.
// The returned name must be non-empty, deterministic for the type, and must
// not depend on mutable instance state (it is read off a zero value).
type Namer interface {
	// EntityName returns the canonical, type-level name for this component.
	EntityName() string
}
