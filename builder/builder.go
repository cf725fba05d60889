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

// Package builder provides the typed producer scaffold that hand-written
// component registrations are built from: the generic Builder[T], value
// producers, and the argument slots implementing the per-argument override
// chain.
package builder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sergiimk/dill-go/apis"
	"github.com/sergiimk/dill-go/scope"
	uref "github.com/sergiimk/dill-go/utils/reflect"
)

// Construct is the component constructor logic a Builder[T] wraps. It receives
// the resolving Catalog to obtain its dependencies and returns a new instance.
type Construct[T any] func(cat apis.Catalog) (*T, error)

// Builder is the generic typed producer for component type T. It advertises
// the handle type *T as its registry identity, owns a Scope (Transient unless
// configured otherwise), and funnels every resolution through the scope's
// cache policy.
//
// Configuration (WithScope, WithName) must complete before the builder is
// registered into a catalog; builders are treated as immutable afterwards.
type Builder[T any] struct {
	scope     apis.Scope
	name      string
	construct Construct[T]
}

// New creates a producer for T with Transient scope and a name derived from
// the type (or from apis.Namer when T implements it).
func New[T any](construct Construct[T]) *Builder[T] {
	return &Builder[T]{
		scope:     scope.Transient(),
		name:      nameFor[T](),
		construct: construct,
	}
}

// ForValue creates a producer serving a pre-built instance: a Singleton scope
// populated up front, so resolution never constructs.
func ForValue[T any](inst *T) *Builder[T] {
	b := New[T](func(apis.Catalog) (*T, error) { return inst, nil })
	b.scope = scope.Singleton()
	// Populate eagerly; this construct cannot fail.
	_, _ = b.scope.Provide(func() (any, error) { return inst, nil })
	return b
}

// WithScope replaces the builder's scope. The scope instance must be fresh:
// scopes hold per-builder cache state and must never be shared.
func (b *Builder[T]) WithScope(s apis.Scope) *Builder[T] {
	if s != nil {
		b.scope = s
	}
	return b
}

// WithName overrides the diagnostic name.
func (b *Builder[T]) WithName(name string) *Builder[T] {
	if name != "" {
		b.name = name
	}
	return b
}

// InstanceType is the advertised identity: the handle type *T.
func (b *Builder[T]) InstanceType() reflect.Type {
	return reflect.TypeFor[*T]()
}

// InstanceTypeName returns the diagnostic name.
func (b *Builder[T]) InstanceTypeName() string {
	return b.name
}

// Get is the type-erased entry point used by the catalog's dynamic dispatch.
// It forwards to the typed path; the erasure is safe by construction since
// GetTyped returns *T.
func (b *Builder[T]) Get(cat apis.Catalog) (any, error) {
	return b.GetTyped(cat)
}

// GetTyped resolves an instance of T:
//
//  1. A scope cache hit returns a new shared handle with no construction work.
//  2. Otherwise the constructor runs, resolving each argument through cat;
//     any failure aborts immediately and propagates unchanged.
//  3. The scope (possibly) caches the new handle per its semantics.
//
// Constructor errors that are not already injection errors are wrapped once
// in *apis.BuildError.
func (b *Builder[T]) GetTyped(cat apis.Catalog) (*T, error) {
	v, err := b.scope.Provide(func() (any, error) {
		inst, err := b.construct(cat)
		if err != nil {
			if apis.IsInjection(err) {
				return nil, err
			}
			return nil, &apis.BuildError{TypeName: b.name, Cause: err}
		}
		if inst == nil {
			return nil, &apis.BuildError{
				TypeName: b.name,
				Cause:    errors.New("constructor returned nil instance"),
			}
		}
		return inst, nil
	})
	if err != nil {
		return nil, err
	}

	inst, ok := v.(*T)
	if !ok {
		// Scope state violated the builder's identity; registration-layer bug.
		return nil, &apis.DowncastError{
			TypeName:  b.name,
			Requested: reflect.TypeFor[*T](),
			Actual:    reflect.TypeOf(v),
		}
	}
	return inst, nil
}

// nameFor derives the diagnostic name for T, preferring apis.Namer.
func nameFor[T any]() string {
	var zero T
	if n, ok := any(zero).(apis.Namer); ok {
		if name := n.EntityName(); name != "" {
			return name
		}
	}
	return uref.DisplayName(reflect.TypeFor[T]())
}

// String implements fmt.Stringer for debug output.
func (b *Builder[T]) String() string {
	return fmt.Sprintf("builder(%s)", b.name)
}
