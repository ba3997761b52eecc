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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package url

import (
	"errors"
	"testing"
)

func TestSetters(t *testing.T) {
	const start = "http://u:p@h.example:8080/a/b?q#f"

	tests := []struct {
		name  string
		apply func(u *URL) (*URL, error)
		want  string
	}{
		{"href", func(u *URL) (*URL, error) { return u.WithHref("https://other/") }, "https://other/"},
		{"protocol", func(u *URL) (*URL, error) { return u.WithProtocol("https") }, "https://u:p@h.example:8080/a/b?q#f"},
		{"protocol with colon", func(u *URL) (*URL, error) { return u.WithProtocol("ws:") }, "ws://u:p@h.example:8080/a/b?q#f"},
		{"protocol special to custom", func(u *URL) (*URL, error) { return u.WithProtocol("foo") }, start},
		{"protocol to file with credentials", func(u *URL) (*URL, error) { return u.WithProtocol("file") }, start},
		{"username", func(u *URL) (*URL, error) { return u.WithUsername("a b@c") }, "http://a%20b%40c:p@h.example:8080/a/b?q#f"},
		{"password", func(u *URL) (*URL, error) { return u.WithPassword("") }, "http://u@h.example:8080/a/b?q#f"},
		{"host", func(u *URL) (*URL, error) { return u.WithHost("OTHER.example") }, "http://u:p@other.example:8080/a/b?q#f"},
		{"host with port", func(u *URL) (*URL, error) { return u.WithHost("other.example:81") }, "http://u:p@other.example:81/a/b?q#f"},
		{"hostname", func(u *URL) (*URL, error) { return u.WithHostname("[::1]") }, "http://u:p@[::1]:8080/a/b?q#f"},
		{"port", func(u *URL) (*URL, error) { return u.WithPort("81") }, "http://u:p@h.example:81/a/b?q#f"},
		{"port with trailing text", func(u *URL) (*URL, error) { return u.WithPort("82abc") }, "http://u:p@h.example:82/a/b?q#f"},
		{"default port", func(u *URL) (*URL, error) { return u.WithPort("80") }, "http://u:p@h.example/a/b?q#f"},
		{"empty port", func(u *URL) (*URL, error) { return u.WithPort("") }, "http://u:p@h.example/a/b?q#f"},
		{"pathname", func(u *URL) (*URL, error) { return u.WithPathname("/x/../y z") }, "http://u:p@h.example:8080/y%20z?q#f"},
		{"pathname keeps question mark", func(u *URL) (*URL, error) { return u.WithPathname("a?b") }, "http://u:p@h.example:8080/a%3Fb?q#f"},
		{"search", func(u *URL) (*URL, error) { return u.WithSearch("?x=1 2") }, "http://u:p@h.example:8080/a/b?x=1%202#f"},
		{"search keeps hash", func(u *URL) (*URL, error) { return u.WithSearch("a#b") }, "http://u:p@h.example:8080/a/b?a%23b#f"},
		{"empty search", func(u *URL) (*URL, error) { return u.WithSearch("") }, "http://u:p@h.example:8080/a/b#f"},
		{"hash", func(u *URL) (*URL, error) { return u.WithHash("#x y") }, "http://u:p@h.example:8080/a/b?q#x%20y"},
		{"empty hash", func(u *URL) (*URL, error) { return u.WithHash("") }, "http://u:p@h.example:8080/a/b?q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, start, nil)
			got, err := tt.apply(u)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if u.String() != start {
				t.Errorf("the original URL changed to %q", u)
			}
		})
	}
}

func TestSetters_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		apply func(u *URL) (*URL, error)
		want  error
	}{
		{"href", "http://h/", func(u *URL) (*URL, error) { return u.WithHref("not a url") }, ErrMissingSchemeNonRelativeURL},
		{"username on file", "file:///x", func(u *URL) (*URL, error) { return u.WithUsername("u") }, ErrCannotHaveCredentialsOrPort},
		{"password on opaque path", "mailto:x", func(u *URL) (*URL, error) { return u.WithPassword("p") }, ErrCannotHaveCredentialsOrPort},
		{"port on file", "file://h/x", func(u *URL) (*URL, error) { return u.WithPort("1") }, ErrCannotHaveCredentialsOrPort},
		{"port out of range", "http://h/", func(u *URL) (*URL, error) { return u.WithPort("65536") }, ErrPortOutOfRange},
		{"port without digits", "http://h/", func(u *URL) (*URL, error) { return u.WithPort("x") }, ErrPortInvalid},
		{"host on opaque path", "mailto:x", func(u *URL) (*URL, error) { return u.WithHost("h") }, ErrOpaquePath},
		{"empty host", "http://h/", func(u *URL) (*URL, error) { return u.WithHost("") }, ErrHostMissing},
		{"hostname with port", "http://h/", func(u *URL) (*URL, error) { return u.WithHostname("h:1") }, nil},
		{"pathname on opaque path", "mailto:x", func(u *URL) (*URL, error) { return u.WithPathname("/y") }, ErrOpaquePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.input, nil)
			got, err := tt.apply(u)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if got != u {
				t.Errorf("a failed setter should return the URL unchanged, got %q", got)
			}
		})
	}
}

func TestSetters_OpaquePathTrailingSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		apply func(u *URL) (*URL, error)
		want  string
	}{
		{"search cleared", "sc:a ?x", func(u *URL) (*URL, error) { return u.WithSearch("") }, "sc:a"},
		{"hash cleared", "sc:a #f", func(u *URL) (*URL, error) { return u.WithHash("") }, "sc:a"},
		{"search cleared before fragment", "sc:a ?x#f", func(u *URL) (*URL, error) { return u.WithSearch("") }, "sc:a #f"},
		{"hash cleared before query", "sc:a ?x#f", func(u *URL) (*URL, error) { return u.WithHash("") }, "sc:a ?x"},
		{"search params cleared", "sc:a ?x", func(u *URL) (*URL, error) { return u.WithSearchParams(SearchParams{}), nil }, "sc:a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.input, nil)
			got, err := tt.apply(u)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if u.String() != tt.input {
				t.Errorf("the original URL changed to %q", u)
			}
		})
	}
}

func TestSetters_File(t *testing.T) {
	u := mustParse(t, "file:///x", nil)

	withHost, err := u.WithHost("server")
	if err != nil {
		t.Fatal(err)
	}
	if withHost.String() != "file://server/x" {
		t.Errorf("WithHost = %q", withHost)
	}

	local, err := withHost.WithHost("localhost")
	if err != nil {
		t.Fatal(err)
	}
	if local.String() != "file:///x" {
		t.Errorf("WithHost(localhost) = %q", local)
	}
}

func TestGetters(t *testing.T) {
	u := mustParse(t, "https://u:p@h.example:8443/a/b?q=1#top", nil)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"href", u.Href(), "https://u:p@h.example:8443/a/b?q=1#top"},
		{"protocol", u.Protocol(), "https:"},
		{"host", u.HostString(), "h.example:8443"},
		{"hostname", u.Hostname(), "h.example"},
		{"port", u.PortString(), "8443"},
		{"pathname", u.Pathname(), "/a/b"},
		{"search", u.Search(), "?q=1"},
		{"hash", u.Hash(), "#top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	empty := mustParse(t, "http://h/?#", nil)
	if empty.Search() != "" || empty.Hash() != "" {
		t.Errorf("Search() = %q, Hash() = %q, want both empty", empty.Search(), empty.Hash())
	}
	if q, ok := empty.Query(); !ok || q != "" {
		t.Errorf("Query() = %q, %v, want \"\", true", q, ok)
	}
}
