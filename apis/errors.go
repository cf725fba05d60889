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

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InjectionError marks every resolution-path failure produced by the runtime.
// Callers can branch on the concrete kind with errors.As, or detect the class
// as a whole with IsInjection.
type InjectionError interface {
	error
	injectionError()
}

// IsInjection reports whether err (or anything it wraps) is a resolution-path
// error produced by this runtime.
func IsInjection(err error) bool {
	var ie InjectionError
	return errors.As(err, &ie)
}

// NotFoundError indicates that no builder is registered for the requested type.
type NotFoundError struct {
	// Requested is the queried type identity.
	Requested reflect.Type
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dill: no builder registered for type %s", typeString(e.Requested))
}

func (*NotFoundError) injectionError() {}

// AmbiguousError indicates that more than one builder matched the requested
// type. It carries every candidate name so the caller can see what collided;
// callers needing multiplicity must use the explicit GetAll query instead.
type AmbiguousError struct {
	// Requested is the queried type identity.
	Requested reflect.Type
	// Candidates holds the InstanceTypeName of every matching builder,
	// in registration order.
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf(
		"dill: ambiguous lookup for type %s: candidates [%s]",
		typeString(e.Requested), strings.Join(e.Candidates, ", "),
	)
}

func (*AmbiguousError) injectionError() {}

// CyclicDependencyError indicates that resolution re-entered a type already in
// progress on the current resolution stack, or exceeded the configured depth
// cap. Cyclic component graphs are a configuration error and are uniformly
// rejected, shared-handle arguments included.
type CyclicDependencyError struct {
	// Requested is the type whose resolution closed the cycle.
	Requested reflect.Type
	// Stack holds the InstanceTypeName of every builder in progress,
	// outermost first.
	Stack []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf(
		"dill: cyclic dependency resolving %s: in-progress stack [%s]",
		typeString(e.Requested), strings.Join(e.Stack, " -> "),
	)
}

func (*CyclicDependencyError) injectionError() {}

// BuildError indicates that a component's own constructor logic failed.
// The underlying cause is wrapped opaquely and reachable via errors.Unwrap.
type BuildError struct {
	// TypeName names the component whose construction failed.
	TypeName string
	// Cause is the constructor's error.
	Cause error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dill: building %s: %v", e.TypeName, e.Cause)
}

func (e *BuildError) Unwrap() error { return e.Cause }

func (*BuildError) injectionError() {}

// DowncastError indicates that a builder's type-erased handle did not match
// its advertised identity. This is a registry invariant violation, a bug in
// the registration layer rather than a usage error, and should be treated as
// fatal.
type DowncastError struct {
	// TypeName names the builder that produced the mismatched handle.
	TypeName string
	// Requested is the identity the caller asked for.
	Requested reflect.Type
	// Actual is the dynamic type of the handle actually produced.
	Actual reflect.Type
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf(
		"dill: builder %s produced %s, which does not satisfy requested type %s",
		e.TypeName, typeString(e.Actual), typeString(e.Requested),
	)
}

func (*DowncastError) injectionError() {}

// typeString tolerates nil types in diagnostics.
func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
