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

package dill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dill "github.com/sergiimk/dill-go"
	"github.com/sergiimk/dill-go/apis"
	"github.com/sergiimk/dill-go/builder"
	"github.com/sergiimk/dill-go/config"
	"github.com/sergiimk/dill-go/scope"
)

type logger struct {
	constructions int
}

func (l *logger) Log(string) {}

type sink interface {
	Log(string)
}

type service struct {
	log *logger
	cfg string
}

// TestSingletonServiceSharesLoggerHandle covers the canonical two-component
// wiring: a transient logger and a singleton service holding a shared logger
// handle. Resolving the service twice yields the same identity, and the
// logger handle inside was obtained once, at the service's construction.
func TestSingletonServiceSharesLoggerHandle(t *testing.T) {
	loggerConstructions := 0
	loggerB := builder.New(func(apis.Catalog) (*logger, error) {
		loggerConstructions++
		return &logger{constructions: loggerConstructions}, nil
	})

	logArg := builder.Shared[logger]("log")
	serviceB := builder.New(func(cat apis.Catalog) (*service, error) {
		log, err := logArg.Resolve(cat)
		if err != nil {
			return nil, err
		}
		return &service{log: log}, nil
	}).WithScope(scope.Singleton())

	cat := dill.NewCatalogBuilder().MustAdd(loggerB, serviceB).Build()

	s1, err := dill.Get[service](cat)
	require.NoError(t, err)
	s2, err := dill.Get[service](cat)
	require.NoError(t, err)

	assert.Same(t, s1, s2, "singleton service must resolve to one identity")
	assert.Same(t, s1.log, s2.log)
	assert.Equal(t, 1, loggerConstructions,
		"the shared logger is obtained once, when the service is constructed")

	// Direct logger resolution still constructs fresh transients.
	l, err := dill.Get[logger](cat)
	require.NoError(t, err)
	assert.NotSame(t, s1.log, l)
	assert.Equal(t, 2, loggerConstructions)
}

// TestLiteralConfigOverride covers overriding a value argument with a literal
// before registration: resolution never queries the catalog for the argument
// type, and the constructed instance carries the literal.
func TestLiteralConfigOverride(t *testing.T) {
	cfgArg := builder.Owned[string]("cfg").With("test")
	serviceB := builder.New(func(cat apis.Catalog) (*service, error) {
		cfg, err := cfgArg.Resolve(cat)
		if err != nil {
			return nil, err
		}
		return &service{cfg: cfg}, nil
	})

	// No string component registered anywhere: the override must keep the
	// catalog out of the argument's resolution path entirely.
	cat := dill.NewCatalogBuilder().MustAdd(serviceB).Build()

	s, err := dill.Get[service](cat)
	require.NoError(t, err)
	assert.Equal(t, "test", s.cfg)
}

func TestGetAs(t *testing.T) {
	cat := dill.NewCatalogBuilder().
		MustAdd(builder.New(func(apis.Catalog) (*logger, error) { return &logger{}, nil })).
		Build()

	s, err := dill.GetAs[sink](cat)
	require.NoError(t, err)
	require.NotNil(t, s)

	cat = dill.NewCatalogBuilder(config.WithMatchInterfaces(false)).
		MustAdd(builder.New(func(apis.Catalog) (*logger, error) { return &logger{}, nil })).
		Build()

	_, err = dill.GetAs[sink](cat)
	var nf *apis.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGetAll(t *testing.T) {
	cat := dill.NewCatalogBuilder().
		MustAdd(builder.New(func(apis.Catalog) (*logger, error) { return &logger{constructions: 1}, nil })).
		Build()

	ls, err := dill.GetAll[logger](cat)
	require.NoError(t, err)
	require.Len(t, ls, 1)

	sinks, err := dill.GetAllAs[sink](cat)
	require.NoError(t, err)
	require.Len(t, sinks, 1)

	// No match is an empty slice, not an error.
	none, err := dill.GetAll[service](cat)
	require.NoError(t, err)
	assert.Empty(t, none)
}

type snapshot struct {
	tags []string
}

func (s snapshot) Clone() snapshot {
	out := snapshot{tags: make([]string, len(s.tags))}
	copy(out.tags, s.tags)
	return out
}

func TestOwned(t *testing.T) {
	cached := &snapshot{tags: []string{"a"}}
	cat := dill.NewCatalogBuilder().MustAdd(builder.ForValue(cached)).Build()

	own, err := dill.Owned[snapshot](cat)
	require.NoError(t, err)
	require.Equal(t, cached.tags, own.tags)

	own.tags[0] = "mutated"
	assert.Equal(t, "a", cached.tags[0],
		"owned copies must not share state with the catalog's instance")
}
