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

import "strconv"

// Origin is the origin of a URL: either a tuple of scheme, host and port,
// or an opaque origin that is only the same as itself.
type Origin struct {
	scheme  string
	host    *Host
	port    uint16
	hasPort bool
	opaque  *opaqueOrigin
}

// opaqueOrigin has a non-zero size so that every allocation is distinct.
type opaqueOrigin struct{ _ byte }

// NewOpaqueOrigin returns a fresh opaque origin.
func NewOpaqueOrigin() Origin {
	return Origin{opaque: &opaqueOrigin{}}
}

// IsOpaque reports whether o is an opaque origin.
func (o Origin) IsOpaque() bool {
	return o.opaque != nil || o.host == nil
}

// Scheme returns the scheme of a tuple origin.
func (o Origin) Scheme() string {
	return o.scheme
}

// Host returns the host of a tuple origin, or nil.
func (o Origin) Host() *Host {
	return o.host
}

// Port returns the port of a tuple origin, if it has a non-default one.
func (o Origin) Port() (uint16, bool) {
	return o.port, o.hasPort
}

// SameOrigin reports whether o and other are the same origin. Opaque
// origins are only the same as themselves.
func (o Origin) SameOrigin(other Origin) bool {
	if o.IsOpaque() || other.IsOpaque() {
		return o.opaque != nil && o.opaque == other.opaque
	}
	return o.scheme == other.scheme && o.host.Equal(other.host) &&
		o.hasPort == other.hasPort && o.port == other.port
}

// String serializes the origin. An opaque origin serializes as "null".
func (o Origin) String() string {
	if o.IsOpaque() {
		return "null"
	}
	s := o.scheme + "://" + o.host.String()
	if o.hasPort {
		s += ":" + strconv.FormatUint(uint64(o.port), 10)
	}
	return s
}

// Origin returns the origin of u. A blob: URL has the origin of the URL in
// its path when that URL is http or https; file and custom schemes get a
// new opaque origin.
func (u *URL) Origin() Origin {
	switch u.scheme.Special() {
	case FTP, HTTP, HTTPS, WS, WSS:
		return Origin{scheme: u.scheme.String(), host: u.host, port: u.port, hasPort: u.hasPort}
	case File, NotSpecial:
	}

	if u.scheme.String() == "blob" {
		if u.blob != nil {
			return u.blob.Origin
		}
		pathURL, err := Parse(u.serializePath(), nil, WithReporter(nil))
		if err == nil && (pathURL.scheme.is(HTTP) || pathURL.scheme.is(HTTPS)) {
			return pathURL.Origin()
		}
	}
	return NewOpaqueOrigin()
}
