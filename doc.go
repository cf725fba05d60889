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

// Package dill is a runtime dependency-injection container built around
// explicit registration and type-identity lookup.
//
// dill is responsible for one job: given a set of component producers
// assembled at startup, resolve "give me an instance of T" requests at
// runtime, honoring each component's caching policy and constructing its
// dependency graph on demand.
//
// # Design
//
// The container is split into two phases with different mutability rules:
//
//   - Assembly: a CatalogBuilder collects producers (builders). Each
//     builder wraps one component's constructor, advertises the handle
//     type it serves (*T), and owns a Scope that decides whether instances
//     are cached. Assembly is single-goroutine and happens before the
//     process starts serving.
//
//   - Resolution: Build freezes the registrations into an immutable
//     Catalog. Because the Catalog never changes after Build, concurrent
//     lookups need no locking; the only mutable state is inside each
//     builder's scope, which synchronizes itself.
//
// A resolution request walks the dependency graph depth-first: the
// catalog finds the single builder matching the requested type, the
// builder's scope either serves a cached handle or runs the constructor,
// and the constructor resolves its own dependencies back through the
// catalog. Each top-level request threads an in-progress stack down the
// graph, which is how cyclic registrations are detected and reported
// rather than recursing forever.
//
// # Queries
//
// Components are identified by their handle type. Two query shapes exist:
//
//   - Singular: Get[T] and GetAs[I] expect exactly one match. Zero
//     matches fail with *apis.NotFoundError, several with
//     *apis.AmbiguousError carrying every candidate's name.
//
//   - Plural: GetAll[T] and GetAllAs[I] return every match in
//     registration order; zero matches is an empty slice, not an error.
//
// Interface-typed queries match any registered component whose handle
// implements the interface. This is on by default and can be disabled
// with config.WithMatchInterfaces(false).
//
// # Scopes
//
// A builder's scope fixes its caching policy:
//
//   - Transient: construct on every resolution; the scope never caches.
//
//   - Singleton: construct lazily on first resolution, then serve the
//     same shared handle forever. The first construction is strictly
//     at-most-once even under concurrent first access, and a failed
//     construction leaves the scope empty so a later call may retry.
//
// # Dependency shapes
//
// A constructor obtains each dependency through one of three shapes,
// which fix ownership and override behavior:
//
//   - builder.Borrow[X]: a live reference used only for the duration of
//     the construction call. Never overridable.
//
//   - builder.Shared[X]: a handle the component keeps, sharing ownership
//     with the catalog's cached instance. Overridable with a function.
//
//   - builder.Owned[X]: an independent copy whose lifetime is decoupled
//     from the catalog. Overridable with a fixed value or a function.
//
// An override, once set on a slot, supersedes catalog lookup entirely for
// that argument; clearing it restores catalog sourcing. Owned values are
// copied per construction, via apis.Cloner when the type implements it.
//
// # Errors
//
// Every resolution-path failure implements apis.InjectionError and is one
// of five kinds: NotFoundError, AmbiguousError, CyclicDependencyError,
// BuildError (wrapping the constructor's own error, reachable through
// errors.Unwrap), and DowncastError. The first four are usage or
// configuration errors; DowncastError means a builder produced a handle
// that contradicts its advertised type, which is a bug in the
// registration layer and should be treated as fatal.
//
// # Usage pattern in a binary
//
// A typical process does:
//
//  1. Assemble at startup:
//
//     cat := dill.NewCatalogBuilder().
//     MustAdd(builder.New(newDBPool).WithScope(scope.Singleton())).
//     MustAdd(builder.New(newRequestHandler)).
//     Build()
//
//  2. Resolve entry points where needed:
//
//     h, err := dill.Get[RequestHandler](cat)
//
//  3. In tests, override the slots that touch the outside world:
//
//     cfgArg.With(Config{DSN: "sqlite::memory:"})
//
// # Scope of the package
//
// dill is intentionally small. It does not scan, generate code, or manage
// lifecycles beyond construction and caching. Everything else (shutdown
// ordering, health, configuration loading) belongs to higher layers.
package dill
