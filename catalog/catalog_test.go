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

package catalog_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiimk/dill-go/apis"
	"github.com/sergiimk/dill-go/builder"
	"github.com/sergiimk/dill-go/catalog"
	"github.com/sergiimk/dill-go/config"
	"github.com/sergiimk/dill-go/scope"
)

type logger struct {
	lines int
}

func (l *logger) Log(string) { l.lines++ }

type sink interface {
	Log(string)
}

// fileSink and memSink are two sink implementations for multiplicity tests.
type fileSink struct{}

func (*fileSink) Log(string) {}

type memSink struct{}

func (*memSink) Log(string) {}

type service struct {
	log *logger
}

func newLogger() *builder.Builder[logger] {
	return builder.New(func(apis.Catalog) (*logger, error) {
		return &logger{}, nil
	})
}

func newService() *builder.Builder[service] {
	return builder.New(func(cat apis.Catalog) (*service, error) {
		log, err := builder.Borrow[logger](cat)
		if err != nil {
			return nil, err
		}
		return &service{log: log}, nil
	})
}

func TestCatalog_GetConcrete(t *testing.T) {
	cat := catalog.NewBuilder().MustAdd(newLogger()).Build()

	v, err := cat.Get(reflect.TypeFor[*logger]())
	require.NoError(t, err)
	_, ok := v.(*logger)
	assert.True(t, ok)
}

func TestCatalog_NotFound(t *testing.T) {
	cat := catalog.NewBuilder().Build()

	_, err := cat.Get(reflect.TypeFor[*logger]())
	var nf *apis.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, reflect.TypeFor[*logger](), nf.Requested)
	assert.True(t, apis.IsInjection(err))
}

func TestCatalog_AmbiguousConcrete(t *testing.T) {
	cat := catalog.NewBuilder().
		MustAdd(newLogger().WithName("loggerA")).
		MustAdd(newLogger().WithName("loggerB")).
		Build()

	_, err := cat.Get(reflect.TypeFor[*logger]())
	var amb *apis.AmbiguousError
	require.ErrorAs(t, err, &amb)

	want := []string{"loggerA", "loggerB"}
	if diff := cmp.Diff(want, amb.Candidates); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_InterfaceMatching(t *testing.T) {
	t.Run("single implementation resolves", func(t *testing.T) {
		cat := catalog.NewBuilder().
			MustAdd(builder.New(func(apis.Catalog) (*fileSink, error) { return &fileSink{}, nil })).
			Build()

		v, err := cat.Get(reflect.TypeFor[sink]())
		require.NoError(t, err)
		_, ok := v.(sink)
		assert.True(t, ok)
	})

	t.Run("several implementations are ambiguous", func(t *testing.T) {
		cat := catalog.NewBuilder().
			MustAdd(builder.New(func(apis.Catalog) (*fileSink, error) { return &fileSink{}, nil })).
			MustAdd(builder.New(func(apis.Catalog) (*memSink, error) { return &memSink{}, nil })).
			Build()

		_, err := cat.Get(reflect.TypeFor[sink]())
		var amb *apis.AmbiguousError
		require.ErrorAs(t, err, &amb)
		assert.Len(t, amb.Candidates, 2)
	})

	t.Run("disabled matching yields not found", func(t *testing.T) {
		cat := catalog.NewBuilder(config.WithMatchInterfaces(false)).
			MustAdd(builder.New(func(apis.Catalog) (*fileSink, error) { return &fileSink{}, nil })).
			Build()

		_, err := cat.Get(reflect.TypeFor[sink]())
		var nf *apis.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestCatalog_GetAll(t *testing.T) {
	cat := catalog.NewBuilder().
		MustAdd(builder.New(func(apis.Catalog) (*fileSink, error) { return &fileSink{}, nil }).WithName("file")).
		MustAdd(builder.New(func(apis.Catalog) (*memSink, error) { return &memSink{}, nil }).WithName("mem")).
		Build()

	all, err := cat.GetAll(reflect.TypeFor[sink]())
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Registration order is observable.
	_, isFile := all[0].(*fileSink)
	_, isMem := all[1].(*memSink)
	assert.True(t, isFile)
	assert.True(t, isMem)

	// Zero matches is an empty slice, not an error.
	none, err := cat.GetAll(reflect.TypeFor[*logger]())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalog_DependencyResolution(t *testing.T) {
	cat := catalog.NewBuilder().
		MustAdd(newLogger().WithScope(scope.Singleton())).
		MustAdd(newService()).
		Build()

	v, err := cat.Get(reflect.TypeFor[*service]())
	require.NoError(t, err)
	svc := v.(*service)
	require.NotNil(t, svc.log)

	// The singleton dependency is the same handle the catalog serves directly.
	lv, err := cat.Get(reflect.TypeFor[*logger]())
	require.NoError(t, err)
	assert.Same(t, lv, svc.log)
}

func TestCatalog_CycleDetection(t *testing.T) {
	type a struct{}
	type b struct{}

	ba := builder.New(func(cat apis.Catalog) (*a, error) {
		if _, err := cat.Get(reflect.TypeFor[*b]()); err != nil {
			return nil, err
		}
		return &a{}, nil
	}).WithName("compA")
	bb := builder.New(func(cat apis.Catalog) (*b, error) {
		if _, err := cat.Get(reflect.TypeFor[*a]()); err != nil {
			return nil, err
		}
		return &b{}, nil
	}).WithName("compB")

	cat := catalog.NewBuilder().MustAdd(ba, bb).Build()

	_, err := cat.Get(reflect.TypeFor[*a]())
	var cyc *apis.CyclicDependencyError
	require.ErrorAs(t, err, &cyc)

	want := []string{"compA", "compB"}
	if diff := cmp.Diff(want, cyc.Stack); diff != "" {
		t.Fatalf("in-progress stack mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_DepthCap(t *testing.T) {
	type c3 struct{}
	type c2 struct{ dep *c3 }
	type c1 struct{ dep *c2 }

	cat := catalog.NewBuilder(config.WithMaxDepth(2)).
		MustAdd(builder.New(func(apis.Catalog) (*c3, error) { return &c3{}, nil })).
		MustAdd(builder.New(func(cat apis.Catalog) (*c2, error) {
			dep, err := builder.Borrow[c3](cat)
			if err != nil {
				return nil, err
			}
			return &c2{dep: dep}, nil
		})).
		MustAdd(builder.New(func(cat apis.Catalog) (*c1, error) {
			dep, err := builder.Borrow[c2](cat)
			if err != nil {
				return nil, err
			}
			return &c1{dep: dep}, nil
		})).
		Build()

	_, err := cat.Get(reflect.TypeFor[*c1]())
	var cyc *apis.CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
}

// lyingBuilder advertises *logger but produces something else.
type lyingBuilder struct{}

func (lyingBuilder) InstanceType() reflect.Type    { return reflect.TypeFor[*logger]() }
func (lyingBuilder) InstanceTypeName() string      { return "liar" }
func (lyingBuilder) Get(apis.Catalog) (any, error) { return &fileSink{}, nil }

func TestCatalog_DowncastGuard(t *testing.T) {
	cat := catalog.NewBuilder().MustAdd(lyingBuilder{}).Build()

	_, err := cat.Get(reflect.TypeFor[*logger]())
	var dc *apis.DowncastError
	require.ErrorAs(t, err, &dc)
	assert.Equal(t, "liar", dc.TypeName)
	assert.Equal(t, reflect.TypeFor[*logger](), dc.Requested)
	assert.Equal(t, reflect.TypeFor[*fileSink](), dc.Actual)
}

func TestCatalogBuilder_Sealing(t *testing.T) {
	cb := catalog.NewBuilder()
	require.NoError(t, cb.Add(newLogger()))
	_ = cb.Build()

	err := cb.Add(newLogger())
	require.ErrorIs(t, err, catalog.ErrSealed)
	assert.Panics(t, func() { cb.MustAdd(newLogger()) })
}

func TestCatalog_NilTypeQuery(t *testing.T) {
	cat := catalog.NewBuilder().MustAdd(newLogger()).Build()

	_, err := cat.Get(nil)
	require.ErrorIs(t, err, catalog.ErrNilType)
	_, err = cat.GetAll(nil)
	require.ErrorIs(t, err, catalog.ErrNilType)
}

func TestCatalogBuilder_NilBuilder(t *testing.T) {
	cb := catalog.NewBuilder()
	err := cb.Add(nil)
	require.ErrorIs(t, err, catalog.ErrNilBuilder)
	assert.Empty(t, cb.Builders(), "a failed Add must not register anything")
}

func TestCatalog_BuildersSnapshot(t *testing.T) {
	cat := catalog.NewBuilder().
		MustAdd(newLogger().WithName("first")).
		MustAdd(newService().WithName("second")).
		Build()

	bs := cat.Builders()
	require.Len(t, bs, 2)
	assert.Equal(t, "first", bs[0].InstanceTypeName())
	assert.Equal(t, "second", bs[1].InstanceTypeName())

	// Mutating the snapshot must not affect the catalog.
	bs[0] = nil
	assert.Equal(t, "first", cat.Builders()[0].InstanceTypeName())
}
