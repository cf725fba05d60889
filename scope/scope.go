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

// Package scope implements the two lifecycle policies a builder can own:
// Transient (construct on every resolution) and Singleton (construct lazily
// at most once, then share).
package scope

import (
	"sync"
	"sync/atomic"

	"github.com/sergiimk/dill-go/apis"
)

// Transient returns a stateless scope that never caches: every Provide call
// runs construct afresh, and Cached always reports no instance.
func Transient() apis.Scope {
	return transient{}
}

type transient struct{}

// Ensure transient implements apis.Scope.
var _ apis.Scope = transient{}

// Cached always reports no instance: a transient scope never leaves Empty.
func (transient) Cached() (any, bool) { return nil, false }

// Provide constructs afresh; the result is owned solely by the caller.
func (transient) Provide(construct func() (any, error)) (any, error) {
	return construct()
}

// Singleton returns a scope that transitions Empty -> Populated at most once,
// on the first successful construction, and then hands out the cached instance
// forever.
//
// Concurrency: the fast path is a lock-free atomic load. On concurrent first
// access a mutex serializes construction, so exactly one construct runs and
// its result is published for every waiter (the strict at-most-once variant).
// A failed construct leaves the scope Empty; a later call may construct again.
func Singleton() apis.Scope {
	return &singleton{}
}

type singleton struct {
	// mu serializes the Empty -> Populated transition.
	mu sync.Mutex
	// inst holds the published instance; nil until Populated.
	inst atomic.Pointer[any]
}

// Ensure singleton implements apis.Scope.
var _ apis.Scope = (*singleton)(nil)

// Cached reports the published instance, if any.
func (s *singleton) Cached() (any, bool) {
	if p := s.inst.Load(); p != nil {
		return *p, true
	}
	return nil, false
}

// Provide returns the published instance or constructs and publishes one.
func (s *singleton) Provide(construct func() (any, error)) (any, error) {
	// Fast path: already populated.
	if p := s.inst.Load(); p != nil {
		return *p, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock: another goroutine may have populated meanwhile.
	if p := s.inst.Load(); p != nil {
		return *p, nil
	}

	v, err := construct()
	if err != nil {
		// Failed construction never populates; scope stays Empty.
		return nil, err
	}
	s.inst.Store(&v)
	return v, nil
}
