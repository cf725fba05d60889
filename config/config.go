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

package config

import (
	"github.com/sergiimk/dill-go/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Dependency graphs deeper than 64 levels are a configuration smell;
	// the cap exists to fail fast instead of overflowing the call stack.
	DefaultMaxDepth = 64
	// DefaultMatchInterfaces represents the default for MatchInterfaces.
	// When true, interface-typed queries match implementing components.
	DefaultMatchInterfaces = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth is valid.
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:        DefaultMaxDepth,
		MatchInterfaces: DefaultMatchInterfaces,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithMatchInterfaces sets the MatchInterfaces option.
func WithMatchInterfaces(match bool) Option {
	return func(c *apis.Config) {
		c.MatchInterfaces = match
	}
}
