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

import "golang.org/x/text/unicode/norm"

// BlobEntry is what a blob URL refers to: the object registered under it
// and the origin that registered it.
type BlobEntry struct {
	Object any
	Origin Origin
}

// BlobResolver looks up the entry a blob: URL was registered with.
type BlobResolver interface {
	ResolveBlob(u *URL) (BlobEntry, bool)
}

// Parse parses input as a URL, resolving it against base when base is not
// nil. The WithURL and WithStateOverride options are ignored. A blob: URL
// gets the entry the configured BlobResolver knows it by.
func Parse(input string, base *URL, opts ...Option) (*URL, error) {
	cfg := newConfig(opts)
	cfg.url = nil
	cfg.stateOverride = NoState

	u, err := basicParse(input, base, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.blobs != nil && u.scheme.String() == "blob" {
		if entry, ok := cfg.blobs.ResolveBlob(u); ok {
			u.blob = &entry
		}
	}
	return u, nil
}

// ParseBasic runs the basic URL parser. Together, WithURL and
// WithStateOverride re-parse a single component of an existing URL, which
// is left untouched: the result is a modified copy.
func ParseBasic(input string, base *URL, opts ...Option) (*URL, error) {
	return basicParse(input, base, newConfig(opts))
}

// ParseNormalized converts input to Unicode Normalization Form C before
// parsing it, so canonically equivalent inputs give the same URL.
func ParseNormalized(input string, base *URL, opts ...Option) (*URL, error) {
	return Parse(norm.NFC.String(input), base, opts...)
}

// CanParse reports whether input parses against base. Validation errors
// are not reported.
func CanParse(input string, base *URL) bool {
	_, err := Parse(input, base, WithReporter(nil))
	return err == nil
}

// Resolve parses ref against u.
func (u *URL) Resolve(ref string, opts ...Option) (*URL, error) {
	return Parse(ref, u, opts...)
}
