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

// Package reflect derives stable, human-readable names for component types.
// It is used for builder naming and error diagnostics only; registry lookup
// keys on exact reflect.Type identity and never goes through here.
package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"
	"sync"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrTypeNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type (e.g., anonymous struct, func).
	ErrTypeNotNamed = errors.New("reflect: type has no name")
)

// DefaultMaxUnwrap bounds container unwrapping depth.
// A value of 8 is sufficient for all practical purposes.
const DefaultMaxUnwrap = 8

// Normalize unwraps containers (ptr/slice/array/chan/map element) up to
// maxUnwrap levels and returns the nearest named inner type, or an error if
// none is found. If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
			t = t.Elem()
		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrTypeNotNamed
}

// displayNameCache memoizes DisplayName results by type.
var displayNameCache sync.Map // key: reflect.Type, val: string

// DisplayName computes a stable "pkg.Type" identifier for t, unwrapping
// containers via Normalize and stripping generic instantiation parameters.
// Types that cannot be reduced to a named type fall back to t.String().
// Results are memoized; safe for concurrent use.
func DisplayName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := displayNameCache.Load(t); ok {
		return v.(string)
	}

	name := computeDisplayName(t)
	displayNameCache.Store(t, name)
	return name
}

func computeDisplayName(t reflect.Type) string {
	base, err := Normalize(t, DefaultMaxUnwrap)
	if err != nil || base == nil {
		return t.String()
	}

	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
