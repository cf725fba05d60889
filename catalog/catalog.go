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

// Package catalog implements the component registry and the resolution
// algorithm: an assembly-phase CatalogBuilder that collects producers, and the
// frozen Catalog it builds, which answers type-identity queries with cycle
// detection and a strict downcast guard.
package catalog

import (
	"errors"
	"reflect"

	"github.com/sergiimk/dill-go/apis"
	"github.com/sergiimk/dill-go/config"
)

var (
	// ErrNilBuilder is returned when a nil producer is added.
	ErrNilBuilder = errors.New("dill(catalog): nil builder provided")
	// ErrSealed indicates an Add after Build froze the catalog.
	ErrSealed = errors.New("dill(catalog): catalog builder already sealed by Build")
	// ErrNilType is returned when a nil reflect.Type is queried.
	ErrNilType = errors.New("dill(catalog): nil reflect.Type queried")
)

// CatalogBuilder accumulates producers during the assembly phase. It is not
// safe for concurrent use; assembly is expected to happen on one goroutine
// before the process starts serving.
type CatalogBuilder struct {
	cfg      apis.Config
	builders []apis.Builder
	sealed   bool
}

// NewBuilder creates an empty CatalogBuilder with the given options applied.
func NewBuilder(opts ...config.Option) *CatalogBuilder {
	return &CatalogBuilder{cfg: config.NewConfig(opts...)}
}

// Add registers producers in order. Registration order is observable: it fixes
// GetAll ordering and the candidate listing in ambiguity errors.
func (cb *CatalogBuilder) Add(bs ...apis.Builder) error {
	if cb.sealed {
		return ErrSealed
	}
	for _, b := range bs {
		if b == nil {
			return ErrNilBuilder
		}
	}
	cb.builders = append(cb.builders, bs...)
	return nil
}

// MustAdd is like Add but panics on error, for fluent assembly code where a
// registration failure is a programming bug.
func (cb *CatalogBuilder) MustAdd(bs ...apis.Builder) *CatalogBuilder {
	if err := cb.Add(bs...); err != nil {
		panic(err)
	}
	return cb
}

// Builders returns the producers added so far, in registration order.
func (cb *CatalogBuilder) Builders() []apis.Builder {
	out := make([]apis.Builder, len(cb.builders))
	copy(out, cb.builders)
	return out
}

// Build seals the assembly and freezes the registrations into a Catalog.
// After Build the CatalogBuilder rejects further Adds.
func (cb *CatalogBuilder) Build() *Catalog {
	cb.sealed = true

	exact := make(map[reflect.Type][]apis.Builder, len(cb.builders))
	for _, b := range cb.builders {
		t := b.InstanceType()
		exact[t] = append(exact[t], b)
	}
	return &Catalog{
		cfg:      cb.cfg,
		builders: cb.Builders(),
		exact:    exact,
	}
}

// Catalog is the frozen registry. Its registrations never change after Build,
// which is what makes lock-free concurrent reads safe; the only mutable state
// is inside each producer's scope, which synchronizes itself.
type Catalog struct {
	cfg      apis.Config
	builders []apis.Builder
	exact    map[reflect.Type][]apis.Builder
}

// Get resolves the single producer matching t and returns its instance.
// Zero matches yield *apis.NotFoundError, several yield *apis.AmbiguousError.
func (c *Catalog) Get(t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return (&session{cat: c}).Get(t)
}

// GetAll resolves every producer matching t, in registration order. Zero
// matches yield an empty slice, not an error.
func (c *Catalog) GetAll(t reflect.Type) ([]any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return (&session{cat: c}).GetAll(t)
}

// Builders returns a snapshot of the registrations, in registration order.
func (c *Catalog) Builders() []apis.Builder {
	out := make([]apis.Builder, len(c.builders))
	copy(out, c.builders)
	return out
}

// Config returns the catalog's resolution configuration.
func (c *Catalog) Config() apis.Config {
	return c.cfg
}

// match returns the producers answering t: exact identity matches first; when
// t is an interface and interface matching is enabled, every producer whose
// handle type implements t, in registration order. A producer never appears
// twice since exact and interface matches are disjoint by kind.
func (c *Catalog) match(t reflect.Type) []apis.Builder {
	if t == nil {
		return nil
	}
	if ms, ok := c.exact[t]; ok {
		return ms
	}
	if t.Kind() != reflect.Interface || !c.cfg.MatchInterfaces {
		return nil
	}
	var ms []apis.Builder
	for _, b := range c.builders {
		if b.InstanceType().Implements(t) {
			ms = append(ms, b)
		}
	}
	return ms
}

// session is one resolution walk. It implements apis.Catalog so producers can
// resolve their own dependencies through it, which threads the in-progress
// stack down the graph: that stack is what detects cycles. Sessions are
// single-goroutine by construction; each top-level query starts a fresh one.
type session struct {
	cat   *Catalog
	stack []apis.Builder
}

func (s *session) Get(t reflect.Type) (any, error) {
	ms := s.cat.match(t)
	switch len(ms) {
	case 0:
		return nil, &apis.NotFoundError{Requested: t}
	case 1:
		return s.resolve(ms[0], t)
	default:
		return nil, &apis.AmbiguousError{Requested: t, Candidates: names(ms)}
	}
}

func (s *session) GetAll(t reflect.Type) ([]any, error) {
	ms := s.cat.match(t)
	out := make([]any, 0, len(ms))
	for _, b := range ms {
		v, err := s.resolve(b, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *session) Builders() []apis.Builder {
	return s.cat.Builders()
}

// resolve runs one producer with cycle and depth guards, then verifies the
// returned handle satisfies the requested identity before handing it out.
func (s *session) resolve(b apis.Builder, t reflect.Type) (any, error) {
	if len(s.stack) >= s.cat.cfg.MaxDepth {
		return nil, &apis.CyclicDependencyError{Requested: t, Stack: names(s.stack)}
	}
	id := b.InstanceType()
	for _, ip := range s.stack {
		if ip.InstanceType() == id {
			return nil, &apis.CyclicDependencyError{Requested: t, Stack: names(s.stack)}
		}
	}

	// Copy-on-push keeps sibling resolutions from sharing backing storage.
	stack := make([]apis.Builder, len(s.stack)+1)
	copy(stack, s.stack)
	stack[len(s.stack)] = b

	v, err := b.Get(&session{cat: s.cat, stack: stack})
	if err != nil {
		return nil, err
	}

	if !satisfies(reflect.TypeOf(v), t) {
		return nil, &apis.DowncastError{
			TypeName:  b.InstanceTypeName(),
			Requested: t,
			Actual:    reflect.TypeOf(v),
		}
	}
	return v, nil
}

// satisfies reports whether a handle of dynamic type actual answers a query
// for t: exact identity for concrete queries, Implements for interfaces.
func satisfies(actual, t reflect.Type) bool {
	if actual == nil {
		return false
	}
	if t.Kind() == reflect.Interface {
		return actual.Implements(t)
	}
	return actual == t
}

func names(bs []apis.Builder) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.InstanceTypeName()
	}
	return out
}

// Compile-time interface satisfaction checks.
var (
	_ apis.Catalog = (*Catalog)(nil)
	_ apis.Catalog = (*session)(nil)
)
