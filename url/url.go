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

// Package url implements the URL Standard's parser, host parser and
// serializer, the algorithm browsers use to resolve links, stylesheet
// references and blob URLs.
//
// The package offers:
//   - Parse and ParseBasic, which turn an input string and an optional base
//     URL into an immutable URL record, or fail.
//   - Serialize and URL.String, which render a record back to its canonical
//     string.
//   - ParseHost, ParseIPv4 and ParseIPv6 for validating bare hosts.
//   - The URL API accessors and setters (Href, Pathname, WithPort, ...),
//     Origin, SearchParams and Relativize.
//
// Irregular but recoverable input produces validation errors, which never
// stop parsing and are sent to a Reporter; failures are returned as
// *ParseError.
package url

import (
	"encoding/json"
	"strconv"
	"strings"
)

// URL is a parsed URL record. It is immutable: the setters return a new URL.
type URL struct {
	scheme      Scheme
	username    string
	password    string
	host        *Host
	port        uint16
	hasPort     bool
	path        []string
	opaquePath  bool
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
	blob        *BlobEntry
}

// Scheme returns the scheme.
func (u *URL) Scheme() Scheme {
	return u.scheme
}

// IsSpecial reports whether the URL has a special scheme.
func (u *URL) IsSpecial() bool {
	return u.scheme.IsSpecial()
}

// Username returns the percent-encoded username, possibly empty.
func (u *URL) Username() string {
	return u.username
}

// Password returns the percent-encoded password, possibly empty.
func (u *URL) Password() string {
	return u.password
}

// Host returns the host, or nil when the URL has none.
func (u *URL) Host() *Host {
	return u.host
}

// Port returns the port and whether one is set. A port equal to the
// scheme's default is never set.
func (u *URL) Port() (uint16, bool) {
	return u.port, u.hasPort
}

// Path returns a copy of the path segments. For a URL that cannot be a
// base, the single segment is the opaque path.
func (u *URL) Path() []string {
	return append([]string(nil), u.path...)
}

// CannotBeBase reports whether the URL has an opaque path, such as
// "mailto:someone@example.com", and so cannot be resolved against.
func (u *URL) CannotBeBase() bool {
	return u.opaquePath
}

// Query returns the percent-encoded query without "?" and whether it is
// present. A present but empty query is distinct from an absent one.
func (u *URL) Query() (string, bool) {
	return u.query, u.hasQuery
}

// Fragment returns the percent-encoded fragment without "#" and whether it
// is present.
func (u *URL) Fragment() (string, bool) {
	return u.fragment, u.hasFragment
}

// BlobEntry returns the entry a blob resolver attached to a blob: URL.
func (u *URL) BlobEntry() (BlobEntry, bool) {
	if u.blob == nil {
		return BlobEntry{}, false
	}
	return *u.blob, true
}

// IncludesCredentials reports whether the username or password is non-empty.
func (u *URL) IncludesCredentials() bool {
	return u.username != "" || u.password != ""
}

// CannotHaveCredentialsOrPort reports whether the URL can hold no username,
// password or port: it has no host or an empty one, cannot be a base, or
// is a file URL.
func (u *URL) CannotHaveCredentialsOrPort() bool {
	return u.host == nil || u.host.IsEmpty() || u.opaquePath || u.scheme.is(File)
}

// clone returns a deep copy of u that the parser may modify.
func (u *URL) clone() *URL {
	c := *u
	c.path = append([]string(nil), u.path...)
	return &c
}

// setPort stores port, or clears it when it is the scheme's default.
func (u *URL) setPort(port uint16) {
	if def, ok := u.scheme.DefaultPort(); ok && def == port {
		u.port, u.hasPort = 0, false
		return
	}
	u.port, u.hasPort = port, true
}

// setQuery sets a present query.
func (u *URL) setQuery(q string) {
	u.query, u.hasQuery = q, true
}

// clearQuery makes the query absent.
func (u *URL) clearQuery() {
	u.query, u.hasQuery = "", false
}

// setFragment sets a present fragment.
func (u *URL) setFragment(f string) {
	u.fragment, u.hasFragment = f, true
}

// stripTrailingSpaces drops the spaces that end an opaque path once no
// query or fragment follows it.
func (u *URL) stripTrailingSpaces() {
	if !u.opaquePath || u.hasFragment || u.hasQuery || len(u.path) == 0 {
		return
	}
	u.path[0] = strings.TrimRight(u.path[0], " ")
}

// Serialize renders u as a string. When excludeFragment is set the
// fragment is left out.
func Serialize(u *URL, excludeFragment bool) string {
	var b strings.Builder
	b.WriteString(u.scheme.String())
	b.WriteByte(':')

	if u.host != nil {
		b.WriteString("//")
		if u.IncludesCredentials() {
			b.WriteString(u.username)
			if u.password != "" {
				b.WriteByte(':')
				b.WriteString(u.password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.host.String())
		if u.hasPort {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(u.port), 10))
		}
	} else if u.scheme.is(File) {
		b.WriteString("//")
	}

	if u.host == nil && !u.opaquePath && len(u.path) > 1 && u.path[0] == "" {
		b.WriteString("/.")
	}
	b.WriteString(u.serializePath())

	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if !excludeFragment && u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// serializePath renders the path: the opaque path as is, or each segment
// preceded by "/".
func (u *URL) serializePath() string {
	if u.opaquePath {
		if len(u.path) == 0 {
			return ""
		}
		return u.path[0]
	}
	var b strings.Builder
	for _, segment := range u.path {
		b.WriteByte('/')
		b.WriteString(segment)
	}
	return b.String()
}

// String returns the serialization of u, fragment included.
func (u *URL) String() string {
	return Serialize(u, false)
}

// Equal reports whether u and other serialize identically, optionally
// ignoring their fragments.
func (u *URL) Equal(other *URL, excludeFragments bool) bool {
	if u == nil || other == nil {
		return u == other
	}
	return Serialize(u, excludeFragments) == Serialize(other, excludeFragments)
}

// MarshalJSON implements the json.Marshaler interface, encoding the URL as a
// JSON string.
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It parses the
// JSON string as an absolute URL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), nil)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
