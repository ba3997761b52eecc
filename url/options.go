/*
Copyright 2025 Trident Authors

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

package url

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// Option configures a parse.
type Option func(*config)

type config struct {
	encoding      encoding.Encoding
	url           *URL
	stateOverride State
	reporter      Reporter
	blobs         BlobResolver
}

func newConfig(opts []Option) *config {
	cfg := &config{reporter: &LogReporter{}}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithEncoding sets the encoding queries of special URLs are encoded with.
// UTF-8 is used when enc is nil.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.encoding = enc }
}

// WithURL makes ParseBasic modify a copy of u instead of starting from an
// empty URL. It is meant to be used together with WithStateOverride.
func WithURL(u *URL) Option {
	return func(c *config) { c.url = u }
}

// WithStateOverride starts ParseBasic in state s and stops it once the
// component that state parses is done.
func WithStateOverride(s State) Option {
	return func(c *config) { c.stateOverride = s }
}

// WithReporter sends validation errors to r. A nil r discards them.
func WithReporter(r Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithLogger logs validation errors to logger at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.reporter = NewLogReporter(logger) }
}

// WithBlobResolver sets the lookup Parse uses to attach blob URL entries.
func WithBlobResolver(r BlobResolver) Option {
	return func(c *config) { c.blobs = r }
}
