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
	"strings"
	"sync"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// HostKind tells which of the host grammars produced a Host.
type HostKind uint8

// Host kinds.
const (
	// DomainHost is an ASCII domain produced by domain-to-ASCII.
	DomainHost HostKind = iota + 1
	// IPv4Host is an IPv4 address.
	IPv4Host
	// IPv6Host is a bracketed IPv6 address.
	IPv6Host
	// OpaqueHost is the percent-encoded host of a non-special URL.
	OpaqueHost
	// EmptyHost is the empty host of file URLs and some non-special URLs.
	EmptyHost
)

// String returns the name of the kind.
func (k HostKind) String() string {
	switch k {
	case DomainHost:
		return "domain"
	case IPv4Host:
		return "ipv4"
	case IPv6Host:
		return "ipv6"
	case OpaqueHost:
		return "opaque"
	case EmptyHost:
		return "empty"
	}
	return "unknown"
}

// Host is a parsed host. Only the field matching its kind is meaningful.
type Host struct {
	kind HostKind
	text string
	ipv4 IPv4
	ipv6 IPv6
}

//nolint:gochecknoglobals // Shared immutable value for the empty host.
var emptyHost = &Host{kind: EmptyHost}

// Kind returns the kind of host.
func (h *Host) Kind() HostKind {
	return h.kind
}

// Domain returns the domain, and false if h is not a domain.
func (h *Host) Domain() (string, bool) {
	return h.text, h.kind == DomainHost
}

// Opaque returns the opaque host, and false if h is not an opaque host.
func (h *Host) Opaque() (string, bool) {
	return h.text, h.kind == OpaqueHost
}

// IPv4 returns the address, and false if h is not an IPv4 address.
func (h *Host) IPv4() (IPv4, bool) {
	return h.ipv4, h.kind == IPv4Host
}

// IPv6 returns the address, and false if h is not an IPv6 address.
func (h *Host) IPv6() (IPv6, bool) {
	return h.ipv6, h.kind == IPv6Host
}

// IsEmpty reports whether h is the empty host.
func (h *Host) IsEmpty() bool {
	return h.kind == EmptyHost
}

// String serializes the host. IPv6 addresses are enclosed in brackets.
func (h *Host) String() string {
	switch h.kind {
	case IPv4Host:
		return h.ipv4.String()
	case IPv6Host:
		return "[" + h.ipv6.String() + "]"
	case DomainHost, OpaqueHost, EmptyHost:
	}
	return h.text
}

// Equal reports whether h and other serialize identically.
func (h *Host) Equal(other *Host) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.kind == other.kind && h.String() == other.String()
}

// Unicode returns the domain converted back to Unicode for display. Other
// kinds of host are returned serialized.
func (h *Host) Unicode() string {
	if h.kind != DomainHost {
		return h.String()
	}
	u, err := domainProfile().ToUnicode(h.text)
	if err != nil {
		return h.text
	}
	return u
}

// PublicSuffix returns the public suffix of a domain host, keeping a
// trailing dot if the domain has one. It returns false for other kinds.
func (h *Host) PublicSuffix() (string, bool) {
	if h.kind != DomainHost {
		return "", false
	}
	domain, trailingDot := strings.CutSuffix(h.text, ".")
	if domain == "" {
		return "", false
	}
	suffix, _ := publicsuffix.PublicSuffix(domain)
	if trailingDot {
		suffix += "."
	}
	return suffix, true
}

// RegistrableDomain returns the public suffix of a domain host plus the label
// before it. It returns false for other kinds and when the domain is itself a
// public suffix.
func (h *Host) RegistrableDomain() (string, bool) {
	if h.kind != DomainHost {
		return "", false
	}
	domain, trailingDot := strings.CutSuffix(h.text, ".")
	registrable, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return "", false
	}
	if trailingDot {
		registrable += "."
	}
	return registrable, true
}

// ParseHost parses a host string. Bracketed input is parsed as IPv6. When
// isNotSpecial is set the input is an opaque host; otherwise it is
// percent-decoded, converted to an ASCII domain, and parsed as IPv4 when it
// ends in a number.
func ParseHost(input string, isNotSpecial bool, opts ...Option) (*Host, error) {
	cfg := newConfig(opts)
	return parseHost(input, isNotSpecial, &validator{reporter: cfg.reporter, input: input})
}

func parseHost(input string, isNotSpecial bool, v *validator) (*Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") || len(input) < 2 {
			v.report(IPv6Unclosed, -1)
			return nil, ipv6Failure(IPv6Unclosed, input)
		}
		inner := input[1 : len(input)-1]
		address, err := parseIPv6(inner, v.on(inner))
		if err != nil {
			return nil, err
		}
		return &Host{kind: IPv6Host, ipv6: address}, nil
	}

	if isNotSpecial {
		return parseOpaqueHost(input, v)
	}

	if input == "" {
		v.report(HostMissing, -1)
		return nil, newParseError(ErrHostMissing, input)
	}

	domain := decodeUTF8(PercentDecodeString(input))
	asciiDomain, err := domainToASCII(domain)
	if err != nil {
		v.report(DomainToASCII, -1)
		return nil, newParseError(ErrDomainToASCII, domain)
	}

	for i, r := range []rune(asciiDomain) {
		if isForbiddenDomainCodePoint(r) {
			v.report(DomainInvalidCodePoint, i)
			return nil, &ParseError{
				Message: (&kindError{message: ErrDomainInvalidCodePoint.message, char: r}).Error(),
				Err:     ErrDomainInvalidCodePoint,
			}
		}
	}

	if endsInANumber(asciiDomain) {
		address, err := parseIPv4(asciiDomain, v.on(asciiDomain))
		if err != nil {
			return nil, err
		}
		return &Host{kind: IPv4Host, ipv4: address}, nil
	}

	return &Host{kind: DomainHost, text: asciiDomain}, nil
}

// parseOpaqueHost checks and percent-encodes the host of a non-special URL.
func parseOpaqueHost(input string, v *validator) (*Host, error) {
	in := []rune(input)
	for i, r := range in {
		if isForbiddenOpaqueHostCodePoint(r) {
			v.report(HostInvalidCodePoint, i)
			return nil, &ParseError{
				Message: (&kindError{message: ErrHostInvalidCodePoint.message, char: r}).Error(),
				Err:     ErrHostInvalidCodePoint,
			}
		}
	}
	for i, r := range in {
		if r == '%' {
			if !hasPercentEscapeAt(in, i) {
				v.report(InvalidURLUnit, i)
			}
		} else if !isURLCodePoint(r) {
			v.report(InvalidURLUnit, i)
		}
	}
	if input == "" {
		return emptyHost, nil
	}
	return &Host{kind: OpaqueHost, text: percentEncodeString(input, &c0ControlSet)}, nil
}

//nolint:gochecknoglobals // The profile is built once and is safe for concurrent use.
var (
	profileOnce sync.Once
	profile     *idna.Profile
)

// domainProfile returns the UTS #46 profile used for domain-to-ASCII:
// non-transitional mapping, no STD3 rules, no hyphen checks, and the bidi
// and joiner checks enabled.
func domainProfile() *idna.Profile {
	profileOnce.Do(func() {
		profile = idna.New(
			idna.MapForLookup(),
			idna.Transitional(false),
			idna.StrictDomainName(false),
			idna.CheckHyphens(false),
			idna.CheckJoiners(true),
			idna.BidiRule(),
			idna.VerifyDNSLength(false),
		)
	})
	return profile
}

// domainToASCII converts domain to its ASCII form. An empty result is a
// failure.
func domainToASCII(domain string) (string, error) {
	ascii, err := domainProfile().ToASCII(domain)
	if err != nil {
		return "", err
	}
	if ascii == "" {
		return "", ErrDomainToASCII
	}
	return ascii, nil
}
