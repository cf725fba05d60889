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

package dill

import (
	"reflect"

	"github.com/sergiimk/dill-go/apis"
	"github.com/sergiimk/dill-go/catalog"
	"github.com/sergiimk/dill-go/config"
)

// Aliases so simple consumers only import the root package.
type (
	// Catalog is the resolution interface served by a built catalog.
	Catalog = apis.Catalog
	// Builder is the type-erased producer contract.
	Builder = apis.Builder
)

// NewCatalogBuilder starts an assembly with the given options applied.
func NewCatalogBuilder(opts ...config.Option) *catalog.CatalogBuilder {
	return catalog.NewBuilder(opts...)
}

// Get resolves the single component registered for handle type *T.
func Get[T any](cat apis.Catalog) (*T, error) {
	v, err := cat.Get(reflect.TypeFor[*T]())
	if err != nil {
		return nil, err
	}
	p, ok := v.(*T)
	if !ok {
		return nil, &apis.DowncastError{
			TypeName:  reflect.TypeFor[*T]().String(),
			Requested: reflect.TypeFor[*T](),
			Actual:    reflect.TypeOf(v),
		}
	}
	return p, nil
}

// GetAs resolves the single component whose handle implements interface I.
func GetAs[I any](cat apis.Catalog) (I, error) {
	var zero I
	v, err := cat.Get(reflect.TypeFor[I]())
	if err != nil {
		return zero, err
	}
	i, ok := v.(I)
	if !ok {
		return zero, &apis.DowncastError{
			TypeName:  reflect.TypeFor[I]().String(),
			Requested: reflect.TypeFor[I](),
			Actual:    reflect.TypeOf(v),
		}
	}
	return i, nil
}

// GetAll resolves every component registered for handle type *T, in
// registration order. Zero matches is an empty slice, not an error.
func GetAll[T any](cat apis.Catalog) ([]*T, error) {
	vs, err := cat.GetAll(reflect.TypeFor[*T]())
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(vs))
	for _, v := range vs {
		p, ok := v.(*T)
		if !ok {
			return nil, &apis.DowncastError{
				TypeName:  reflect.TypeFor[*T]().String(),
				Requested: reflect.TypeFor[*T](),
				Actual:    reflect.TypeOf(v),
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// GetAllAs resolves every component whose handle implements interface I, in
// registration order.
func GetAllAs[I any](cat apis.Catalog) ([]I, error) {
	vs, err := cat.GetAll(reflect.TypeFor[I]())
	if err != nil {
		return nil, err
	}
	out := make([]I, 0, len(vs))
	for _, v := range vs {
		i, ok := v.(I)
		if !ok {
			return nil, &apis.DowncastError{
				TypeName:  reflect.TypeFor[I]().String(),
				Requested: reflect.TypeFor[I](),
				Actual:    reflect.TypeOf(v),
			}
		}
		out = append(out, i)
	}
	return out, nil
}

// Owned resolves the component registered for *T and returns an independent
// copy, via apis.Cloner when T implements it. The copy's lifetime is
// decoupled from the catalog's cached instance.
func Owned[T any](cat apis.Catalog) (T, error) {
	p, err := Get[T](cat)
	if err != nil {
		var zero T
		return zero, err
	}
	v := *p
	if c, ok := any(v).(apis.Cloner[T]); ok {
		return c.Clone(), nil
	}
	return v, nil
}
