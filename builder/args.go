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

package builder

import (
	"reflect"

	"github.com/sergiimk/dill-go/apis"
)

// Argument slots classify each constructor dependency by ownership shape and
// carry its optional override. The shape decides the resolution strategy:
//
//   - borrowed: Borrow[X], a live catalog lookup used only for the duration
//     of the construction call, never overridable.
//   - shared: SharedArg[X], a catalog lookup whose handle the component
//     keeps; overridable with a function producing a shared handle.
//   - owned: OwnedArg[X], a catalog lookup followed by an independent copy;
//     overridable with a fixed value or a function.
//
// When an override is set it supersedes catalog lookup entirely for that slot:
// the catalog is never touched. Overrides must be configured before the owning
// builder is registered and are treated as immutable afterwards.

// Borrow resolves a live reference to X for the duration of one construction
// call. Callers must not retain the returned handle beyond the call; use a
// SharedArg for dependencies the component keeps.
func Borrow[X any](cat apis.Catalog) (*X, error) {
	return lookup[X](cat)
}

// SharedArg is a shared-handle argument slot for dependency type X.
type SharedArg[X any] struct {
	name string
	fn   func(apis.Catalog) (*X, error)
}

// Shared creates a shared-handle slot named after the constructor argument.
func Shared[X any](name string) *SharedArg[X] {
	return &SharedArg[X]{name: name}
}

// Name returns the constructor argument this slot feeds.
func (a *SharedArg[X]) Name() string { return a.name }

// WithFn overrides resolution with a function producing a shared handle,
// evaluated fresh on every construction.
func (a *SharedArg[X]) WithFn(fn func(apis.Catalog) (*X, error)) *SharedArg[X] {
	a.fn = fn
	return a
}

// Clear removes the override, restoring catalog-sourced resolution.
func (a *SharedArg[X]) Clear() *SharedArg[X] {
	a.fn = nil
	return a
}

// Resolve obtains the argument: the override if set, otherwise a catalog
// lookup whose handle shares ownership with the catalog's cached instance.
func (a *SharedArg[X]) Resolve(cat apis.Catalog) (*X, error) {
	if a.fn != nil {
		return a.fn(cat)
	}
	return lookup[X](cat)
}

// OwnedArg is an owned-value argument slot for dependency type X.
type OwnedArg[X any] struct {
	name string
	fn   func(apis.Catalog) (X, error)
}

// Owned creates an owned-value slot named after the constructor argument.
func Owned[X any](name string) *OwnedArg[X] {
	return &OwnedArg[X]{name: name}
}

// Name returns the constructor argument this slot feeds.
func (a *OwnedArg[X]) Name() string { return a.name }

// With overrides resolution with a fixed value, captured once and copied on
// every construction (via apis.Cloner when X implements it).
func (a *OwnedArg[X]) With(val X) *OwnedArg[X] {
	a.fn = func(apis.Catalog) (X, error) {
		return copyValue(val), nil
	}
	return a
}

// WithFn overrides resolution with a function evaluated fresh on every
// construction.
func (a *OwnedArg[X]) WithFn(fn func(apis.Catalog) (X, error)) *OwnedArg[X] {
	a.fn = fn
	return a
}

// Clear removes the override, restoring catalog-sourced resolution.
func (a *OwnedArg[X]) Clear() *OwnedArg[X] {
	a.fn = nil
	return a
}

// Resolve obtains the argument: the override if set, otherwise a catalog
// lookup followed by an independent copy that decouples the value's lifetime
// from the catalog.
func (a *OwnedArg[X]) Resolve(cat apis.Catalog) (X, error) {
	if a.fn != nil {
		return a.fn(cat)
	}
	p, err := lookup[X](cat)
	if err != nil {
		var zero X
		return zero, err
	}
	return copyValue(*p), nil
}

// lookup is the catalog query shared by all strategies: exactly one builder
// advertising *X. The session guards the downcast already; the assertion here
// keeps the path checked even for foreign Catalog implementations.
func lookup[X any](cat apis.Catalog) (*X, error) {
	v, err := cat.Get(reflect.TypeFor[*X]())
	if err != nil {
		return nil, err
	}
	p, ok := v.(*X)
	if !ok {
		return nil, &apis.DowncastError{
			TypeName:  reflect.TypeFor[*X]().String(),
			Requested: reflect.TypeFor[*X](),
			Actual:    reflect.TypeOf(v),
		}
	}
	return p, nil
}

// copyValue takes an independent copy of v, honoring apis.Cloner.
func copyValue[X any](v X) X {
	if c, ok := any(v).(apis.Cloner[X]); ok {
		return c.Clone()
	}
	return v
}
