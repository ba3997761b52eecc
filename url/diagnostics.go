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
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// ValidationKind identifies a validation error. The values are the names the
// URL Standard uses for them.
type ValidationKind string

// Validation error kinds.
const (
	InvalidURLUnit                       ValidationKind = "invalid-URL-unit"
	LeadingOrTrailingC0ControlOrSpace    ValidationKind = "leading-or-trailing-C0-control-or-space"
	TabOrNewline                         ValidationKind = "tab-or-newline"
	SpecialSchemeMissingFollowingSolidus ValidationKind = "special-scheme-missing-following-solidus"
	MissingSchemeNonRelativeURL          ValidationKind = "missing-scheme-non-relative-URL"
	InvalidReverseSolidus                ValidationKind = "invalid-reverse-solidus"
	InvalidCredentials                   ValidationKind = "invalid-credentials"
	HostMissing                          ValidationKind = "host-missing"
	PortOutOfRange                       ValidationKind = "port-out-of-range"
	PortInvalid                          ValidationKind = "port-invalid"
	FileInvalidWindowsDriveLetter        ValidationKind = "file-invalid-Windows-drive-letter"
	FileInvalidWindowsDriveLetterHost    ValidationKind = "file-invalid-Windows-drive-letter-host"
	FileLeadingEmptySegment              ValidationKind = "file-leading-empty-segment"
	DomainToASCII                        ValidationKind = "domain-to-ASCII"
	DomainInvalidCodePoint               ValidationKind = "domain-invalid-code-point"
	HostInvalidCodePoint                 ValidationKind = "host-invalid-code-point"
	IPv4EmptyPart                        ValidationKind = "IPv4-empty-part"
	IPv4TooManyParts                     ValidationKind = "IPv4-too-many-parts"
	IPv4NonNumericPart                   ValidationKind = "IPv4-non-numeric-part"
	IPv4NonDecimalPart                   ValidationKind = "IPv4-non-decimal-part"
	IPv4OutOfRangePart                   ValidationKind = "IPv4-out-of-range-part"
	IPv6Unclosed                         ValidationKind = "IPv6-unclosed"
	IPv6InvalidCompression               ValidationKind = "IPv6-invalid-compression"
	IPv6TooManyPieces                    ValidationKind = "IPv6-too-many-pieces"
	IPv6MultipleCompression              ValidationKind = "IPv6-multiple-compression"
	IPv6InvalidCodePoint                 ValidationKind = "IPv6-invalid-code-point"
	IPv6TooFewPieces                     ValidationKind = "IPv6-too-few-pieces"
	IPv4InIPv6TooManyPieces              ValidationKind = "IPv4-in-IPv6-too-many-pieces"
	IPv4InIPv6InvalidCodePoint           ValidationKind = "IPv4-in-IPv6-invalid-code-point"
	IPv4InIPv6OutOfRangePart             ValidationKind = "IPv4-in-IPv6-out-of-range-part"
	IPv4InIPv6TooFewParts                ValidationKind = "IPv4-in-IPv6-too-few-parts"
)

// ValidationError describes a non-fatal irregularity found while parsing.
// Parsing always continues after one.
type ValidationError struct {
	Kind ValidationKind
	// Input is the string being parsed when the error was found: the URL
	// input after tab and newline removal, or a host string.
	Input string
	// Pos is the code point offset into Input, or -1 when the error is
	// about Input as a whole.
	Pos int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s in %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%s at %d in %q", e.Kind, e.Pos, e.Input)
}

// Reporter receives validation errors as they are found.
type Reporter interface {
	Report(ValidationError)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ValidationError)

// Report calls f(e).
func (f ReporterFunc) Report(e ValidationError) { f(e) }

// LogReporter writes each validation error to a structured logger at warn
// level.
type LogReporter struct {
	Logger *slog.Logger
}

// NewLogReporter returns a LogReporter for logger, or for the package
// logger when logger is nil.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{Logger: logger}
}

// Report logs e.
func (r *LogReporter) Report(e ValidationError) {
	logger := r.Logger
	if logger == nil {
		logger = Logger()
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	logger.Warn("URL validation error",
		"kind", string(e.Kind),
		"input", e.Input,
		"pos", e.Pos,
	)
}

// Collector records validation errors. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	errors []ValidationError
}

// Report appends e to the collected errors.
func (c *Collector) Report(e ValidationError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, e)
}

// Errors returns a copy of the collected errors in the order found.
func (c *Collector) Errors() []ValidationError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ValidationError(nil), c.errors...)
}

// Kinds returns the kinds of the collected errors in the order found.
func (c *Collector) Kinds() []ValidationKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]ValidationKind, len(c.errors))
	for i, e := range c.errors {
		kinds[i] = e.Kind
	}
	return kinds
}

// Reset drops the collected errors.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
}

// MultiReporter forwards every validation error to each of reporters.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(e ValidationError) {
		for _, r := range reporters {
			if r != nil {
				r.Report(e)
			}
		}
	})
}

//nolint:gochecknoglobals // Package-wide logger, replaced with SetLogger.
var (
	loggerMu      sync.RWMutex
	packageLogger = slog.New(slog.DiscardHandler)
)

// SetLogger sets the logger used by the default reporter. Validation errors
// are discarded until a logger is set.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	packageLogger = logger
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return packageLogger
}

// validator tags validation errors with the input they were found in and
// hands them to a reporter. A nil reporter drops them.
type validator struct {
	reporter Reporter
	input    string
}

func (v *validator) report(kind ValidationKind, pos int) {
	if v == nil || v.reporter == nil {
		return
	}
	v.reporter.Report(ValidationError{Kind: kind, Input: v.input, Pos: pos})
}

// on returns a validator for another input sharing v's reporter.
func (v *validator) on(input string) *validator {
	if v == nil {
		return nil
	}
	return &validator{reporter: v.reporter, input: input}
}
