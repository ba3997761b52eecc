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
	"errors"
	"fmt"
)

// ParseError is the error type returned by parsing functions in this package.
// It contains a descriptive message and wraps the failure that stopped the
// parser, which can be matched with errors.Is against the Err* variables.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URL parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Failures that stop the parser. Each one is reported as a validation error
// of the matching kind before being returned.
var (
	// ErrMissingSchemeNonRelativeURL is returned when the input has no scheme
	// and there is no base URL it can be resolved against.
	ErrMissingSchemeNonRelativeURL = &kindError{
		message: "No scheme and no base URL to resolve against",
		kind:    MissingSchemeNonRelativeURL,
	}
	// ErrInvalidCredentials is returned when an authority has an "@" but an
	// empty host follows it.
	ErrInvalidCredentials = &kindError{message: "Credentials without a host", kind: HostMissing}
	// ErrHostMissing is returned for an empty host on a special URL.
	ErrHostMissing = &kindError{message: "Missing host", kind: HostMissing}
	// ErrPortOutOfRange is returned for a port greater than 65535.
	ErrPortOutOfRange = &kindError{message: "Port out of range", kind: PortOutOfRange}
	// ErrPortInvalid is returned for a port containing a non-digit.
	ErrPortInvalid = &kindError{message: "Invalid port", kind: PortInvalid}
	// ErrSchemeInvalid is returned when a scheme override is not a valid scheme.
	ErrSchemeInvalid = &kindError{message: "Invalid scheme"}
	// ErrDomainToASCII is returned when a domain cannot be converted to ASCII.
	ErrDomainToASCII = &kindError{message: "Domain to ASCII failed", kind: DomainToASCII}
	// ErrDomainInvalidCodePoint is returned when a domain contains a forbidden
	// host code point.
	ErrDomainInvalidCodePoint = &kindError{message: "Invalid domain code point", kind: DomainInvalidCodePoint}
	// ErrHostInvalidCodePoint is returned when an opaque host contains a
	// forbidden host code point.
	ErrHostInvalidCodePoint = &kindError{message: "Invalid host code point", kind: HostInvalidCodePoint}
	// ErrInvalidIPv4 is returned for an IPv4 address that fails to parse.
	ErrInvalidIPv4 = &kindError{message: "Invalid IPv4 address"}
	// ErrInvalidIPv6 is returned for an IPv6 address that fails to parse.
	ErrInvalidIPv6 = &kindError{message: "Invalid IPv6 address"}
	// ErrCannotHaveCredentialsOrPort is returned by the credential and port
	// setters of a URL without a host, with an opaque path, or with the file
	// scheme.
	ErrCannotHaveCredentialsOrPort = &kindError{message: "URL cannot have credentials or a port"}
	// ErrOpaquePath is returned by the host and path setters of a URL with an
	// opaque path.
	ErrOpaquePath = &kindError{message: "URL has an opaque path"}
	// ErrRelativize is returned by Relativize when no reference string
	// resolves back to the target URL.
	ErrRelativize = errors.New("it is not possible to make this URL relative to the base URL")
)

// kindError is the failure type used by the parser. Its message describes the
// failure and kind names the validation error reported alongside it.
type kindError struct {
	message string
	kind    ValidationKind
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

// newParseError wraps a failure sentinel, adding details to the message.
// It returns nil if err is nil.
func newParseError(err *kindError, details string) *ParseError {
	if err == nil {
		return nil
	}
	withDetails := *err
	withDetails.details = details
	return &ParseError{Message: withDetails.Error(), Err: err}
}

// ipv4Failure builds the error returned by the IPv4 parser for kind.
func ipv4Failure(kind ValidationKind, input string) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("%s '%s' (%s)", ErrInvalidIPv4.message, input, kind),
		Err:     ErrInvalidIPv4,
	}
}

// ipv6Failure builds the error returned by the IPv6 parser for kind.
func ipv6Failure(kind ValidationKind, input string) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("%s '%s' (%s)", ErrInvalidIPv6.message, input, kind),
		Err:     ErrInvalidIPv6,
	}
}
