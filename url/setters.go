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
	"strconv"
	"strings"
)

// reparse runs the basic parser over input with state override s on a copy
// of u.
func (u *URL) reparse(input string, s State, opts []Option) (*URL, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithURL(u), WithStateOverride(s))
	out, err := ParseBasic(input, nil, all...)
	if err != nil {
		return u, err
	}
	return out, nil
}

// Href returns the serialization of u.
func (u *URL) Href() string {
	return Serialize(u, false)
}

// WithHref parses href as a new absolute URL.
func (u *URL) WithHref(href string, opts ...Option) (*URL, error) {
	out, err := Parse(href, nil, opts...)
	if err != nil {
		return u, err
	}
	return out, nil
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string {
	return u.scheme.String() + ":"
}

// WithProtocol replaces the scheme. Switching between a special and a
// custom scheme is silently refused, as is switching to file while the URL
// has credentials or a port.
func (u *URL) WithProtocol(protocol string, opts ...Option) (*URL, error) {
	return u.reparse(protocol+":", SchemeStartState, opts)
}

// WithUsername replaces the username, percent-encoding it.
func (u *URL) WithUsername(username string) (*URL, error) {
	if u.CannotHaveCredentialsOrPort() {
		return u, newParseError(ErrCannotHaveCredentialsOrPort, u.String())
	}
	out := u.clone()
	out.username = percentEncodeString(username, &userinfoSet)
	return out, nil
}

// WithPassword replaces the password, percent-encoding it.
func (u *URL) WithPassword(password string) (*URL, error) {
	if u.CannotHaveCredentialsOrPort() {
		return u, newParseError(ErrCannotHaveCredentialsOrPort, u.String())
	}
	out := u.clone()
	out.password = percentEncodeString(password, &userinfoSet)
	return out, nil
}

// HostString returns the host and, when set, the port.
func (u *URL) HostString() string {
	if u.host == nil {
		return ""
	}
	if !u.hasPort {
		return u.host.String()
	}
	return u.host.String() + ":" + strconv.FormatUint(uint64(u.port), 10)
}

// WithHost replaces the host and, when one follows, the port.
func (u *URL) WithHost(host string, opts ...Option) (*URL, error) {
	if u.opaquePath {
		return u, newParseError(ErrOpaquePath, u.String())
	}
	return u.reparse(host, HostState, opts)
}

// Hostname returns the serialized host, or "" when there is none.
func (u *URL) Hostname() string {
	if u.host == nil {
		return ""
	}
	return u.host.String()
}

// WithHostname replaces the host, keeping the port.
func (u *URL) WithHostname(hostname string, opts ...Option) (*URL, error) {
	if u.opaquePath {
		return u, newParseError(ErrOpaquePath, u.String())
	}
	return u.reparse(hostname, HostnameState, opts)
}

// PortString returns the port in decimal, or "" when it is not set.
func (u *URL) PortString() string {
	if !u.hasPort {
		return ""
	}
	return strconv.FormatUint(uint64(u.port), 10)
}

// WithPort replaces the port. An empty port removes it; a port is read up
// to its first non-digit.
func (u *URL) WithPort(port string, opts ...Option) (*URL, error) {
	if u.CannotHaveCredentialsOrPort() {
		return u, newParseError(ErrCannotHaveCredentialsOrPort, u.String())
	}
	if port == "" {
		out := u.clone()
		out.port, out.hasPort = 0, false
		return out, nil
	}
	return u.reparse(port, PortState, opts)
}

// Pathname returns the serialized path.
func (u *URL) Pathname() string {
	return u.serializePath()
}

// WithPathname replaces the path.
func (u *URL) WithPathname(pathname string, opts ...Option) (*URL, error) {
	if u.opaquePath {
		return u, newParseError(ErrOpaquePath, u.String())
	}
	emptied := u.clone()
	emptied.path = nil
	out, err := emptied.reparse(pathname, PathStartState, opts)
	if err != nil {
		return u, err
	}
	return out, nil
}

// Search returns "?" and the query, or "" when the query is absent or empty.
func (u *URL) Search() string {
	if u.query == "" {
		return ""
	}
	return "?" + u.query
}

// WithSearch replaces the query. A leading "?" is ignored and an empty
// search removes the query.
func (u *URL) WithSearch(search string, opts ...Option) (*URL, error) {
	out := u.clone()
	if search == "" {
		out.clearQuery()
		out.stripTrailingSpaces()
		return out, nil
	}
	out.setQuery("")
	parsed, err := out.reparse(strings.TrimPrefix(search, "?"), QueryState, opts)
	if err != nil {
		return u, err
	}
	return parsed, nil
}

// Hash returns "#" and the fragment, or "" when the fragment is absent or
// empty.
func (u *URL) Hash() string {
	if u.fragment == "" {
		return ""
	}
	return "#" + u.fragment
}

// WithHash replaces the fragment. A leading "#" is ignored and an empty
// hash removes the fragment.
func (u *URL) WithHash(hash string, opts ...Option) (*URL, error) {
	out := u.clone()
	if hash == "" {
		out.fragment, out.hasFragment = "", false
		out.stripTrailingSpaces()
		return out, nil
	}
	out.setFragment("")
	parsed, err := out.reparse(strings.TrimPrefix(hash, "#"), FragmentState, opts)
	if err != nil {
		return u, err
	}
	return parsed, nil
}
