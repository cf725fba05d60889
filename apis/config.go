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

// Config carries read-only resolution knobs fixed at catalog assembly time.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxDepth limits the depth of the resolution stack. Acts as a safety
	// guard against pathological dependency graphs: resolution exceeding it
	// fails with *CyclicDependencyError instead of overflowing the call stack.
	MaxDepth int

	// MatchInterfaces controls capability queries: when true, a request for an
	// interface type matches every builder whose handle type implements it.
	// When false, only exact identity matches are considered.
	MatchInterfaces bool
}
