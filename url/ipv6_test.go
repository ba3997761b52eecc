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
	"net/netip"
	"testing"
)

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"loopback", "::1", "::1"},
		{"loopback in full", "0:0:0:0:0:0:0:1", "::1"},
		{"unspecified", "::", "::"},
		{"compression in the middle", "2001:db8::8a2e:370:7334", "2001:db8::8a2e:370:7334"},
		{"uppercase hex", "2001:DB8::1", "2001:db8::1"},
		{"trailing compression", "1::", "1::"},
		{"no compression", "1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
		{"first longest zero run", "1:0:0:2:0:0:0:3", "1:0:0:2::3"},
		{"single zero is not compressed", "1:0:2:3:4:5:6:7", "1:0:2:3:4:5:6:7"},
		{"leading zeros", "0001:0db8::0001", "1:db8::1"},
		{"embedded IPv4", "::ffff:192.0.2.1", "::ffff:c000:201"},
		{"embedded IPv4 after six pieces", "1:2:3:4:5:6:1.2.3.4", "1:2:3:4:5:6:102:304"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIPv6(tt.input)
			if err != nil {
				t.Fatalf("ParseIPv6(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseIPv6(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIPv6_SameAddress(t *testing.T) {
	short, err := ParseIPv6("::1")
	if err != nil {
		t.Fatal(err)
	}
	full, err := ParseIPv6("0:0:0:0:0:0:0:1")
	if err != nil {
		t.Fatal(err)
	}
	if short != full {
		t.Errorf("ParseIPv6(\"::1\") = %v, ParseIPv6(\"0:0:0:0:0:0:0:1\") = %v", short, full)
	}
	if want := (IPv6{0, 0, 0, 0, 0, 0, 0, 1}); short != want {
		t.Errorf("pieces = %v, want %v", short, want)
	}
}

func TestParseIPv6_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ValidationKind
	}{
		{"single leading colon", ":1", IPv6InvalidCompression},
		{"two compressions", "1::2::3", IPv6MultipleCompression},
		{"triple colon", "1:::2", IPv6MultipleCompression},
		{"nine pieces", "1:2:3:4:5:6:7:8:9", IPv6TooManyPieces},
		{"three pieces", "1:2:3", IPv6TooFewPieces},
		{"five hex digits", "12345::", IPv6InvalidCodePoint},
		{"trailing colon", "1:", IPv6InvalidCodePoint},
		{"non-hex", "g::", IPv6InvalidCodePoint},
		{"IPv4 too few parts", "::1.2.3", IPv4InIPv6TooFewParts},
		{"IPv4 part too large", "::1.2.3.256", IPv4InIPv6OutOfRangePart},
		{"IPv4 too many parts", "::1.2.3.4.5", IPv4InIPv6InvalidCodePoint},
		{"IPv4 leading zero", "::01.2.3.4", IPv4InIPv6InvalidCodePoint},
		{"IPv4 too late", "1:2:3:4:5:6:7:1.2.3.4", IPv4InIPv6TooManyPieces},
		{"IPv4 without digits", "::.1.2.3", IPv4InIPv6InvalidCodePoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{}
			_, err := ParseIPv6(tt.input, WithReporter(c))
			if !errors.Is(err, ErrInvalidIPv6) {
				t.Fatalf("ParseIPv6(%q) error = %v, want ErrInvalidIPv6", tt.input, err)
			}
			kinds := c.Kinds()
			if len(kinds) != 1 || kinds[0] != tt.kind {
				t.Errorf("ParseIPv6(%q) reported %v, want [%s]", tt.input, kinds, tt.kind)
			}
		})
	}
}

func TestIPv6_Addr(t *testing.T) {
	a, err := ParseIPv6("2001:db8::ff00:42:8329")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Addr(); got != netip.MustParseAddr("2001:db8::ff00:42:8329") {
		t.Errorf("Addr() = %v", got)
	}
}
