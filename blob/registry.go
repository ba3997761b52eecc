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

// Package blob keeps the objects that blob: URLs refer to. A Registry hands
// out a fresh blob: URL for each registered object and resolves those URLs
// back to their entries while they are not revoked.
package blob

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jplu/weburl/url"
)

// Registry maps blob: URLs, without their fragment, to entries. It is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]url.BlobEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]url.BlobEntry)}
}

// Register stores object on behalf of origin and returns the blob: URL that
// now refers to it.
func (r *Registry) Register(object any, origin url.Origin) (*url.URL, error) {
	u, err := url.Parse("blob:"+origin.String()+"/"+uuid.NewString(), nil, url.WithReporter(nil))
	if err != nil {
		return nil, err
	}

	entry := url.BlobEntry{Object: object, Origin: origin}
	r.mu.Lock()
	r.entries[url.Serialize(u, true)] = entry
	r.mu.Unlock()

	url.Logger().Debug("blob registered", "url", u.String(), "origin", origin.String())
	return r.attach(u), nil
}

// Revoke forgets the entry of u. It reports whether there was one.
func (r *Registry) Revoke(u *url.URL) bool {
	key := url.Serialize(u, true)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return false
	}
	delete(r.entries, key)
	return true
}

// ResolveBlob implements url.BlobResolver. The fragment of u is ignored.
func (r *Registry) ResolveBlob(u *url.URL) (url.BlobEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[url.Serialize(u, true)]
	return entry, ok
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Parse parses input against base, attaching the entry of a registered
// blob: URL.
func (r *Registry) Parse(input string, base *url.URL, opts ...url.Option) (*url.URL, error) {
	return url.Parse(input, base, append(opts, url.WithBlobResolver(r))...)
}

// attach reparses u so that it carries its entry.
func (r *Registry) attach(u *url.URL) *url.URL {
	resolved, err := r.Parse(u.String(), nil, url.WithReporter(nil))
	if err != nil {
		return u
	}
	return resolved
}
