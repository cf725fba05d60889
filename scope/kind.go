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

package scope

import (
	"fmt"
	"strings"

	"github.com/sergiimk/dill-go/apis"
)

// Kind enumerates the scope variants, for use in configuration surfaces that
// declare a component's lifecycle textually. The mapping from known Kind
// values to strings is stable; changing it is a breaking change for systems
// that persist these tokens.
type Kind int

const (
	// TransientKind selects construct-on-every-resolution semantics.
	TransientKind Kind = iota
	// SingletonKind selects lazily-constructed, shared-instance semantics.
	SingletonKind
)

// String returns the canonical token for k, or a diagnostic "Unknown(<n>)"
// form for out-of-range values. It never panics.
func (k Kind) String() string {
	switch k {
	case TransientKind:
		return "Transient"
	case SingletonKind:
		return "Singleton"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// New constructs the scope instance k selects. Each call returns a fresh
// scope: scopes hold per-builder cache state and must never be shared.
func (k Kind) New() (apis.Scope, error) {
	switch k {
	case TransientKind:
		return Transient(), nil
	case SingletonKind:
		return Singleton(), nil
	default:
		return nil, fmt.Errorf("scope: unknown kind %d", k)
	}
}

// Parse converts a textual token into a Kind. Matching is case-insensitive
// and surrounding whitespace is trimmed. On failure it returns TransientKind
// and a non-nil error; callers must not rely on the Kind in the error case.
func Parse(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TransientKind, fmt.Errorf("scope: empty kind")
	}

	switch strings.ToLower(trimmed) {
	case "transient":
		return TransientKind, nil
	case "singleton":
		return SingletonKind, nil
	default:
		return TransientKind, fmt.Errorf("scope: unknown kind %q", s)
	}
}

// MustParse is like Parse but panics on invalid input. Intended for
// hard-coded tokens in assembly code and tests.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText encodes Kind as text. Unknown values return an error rather
// than silently serializing a diagnostic form.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case TransientKind, SingletonKind:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("scope: cannot marshal unknown kind %d", k)
	}
}

// UnmarshalText decodes a Kind from its textual representation. On failure
// the target is left unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
