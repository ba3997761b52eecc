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
	"net/netip"
	"strconv"
	"strings"
)

const (
	// maxIPv4Parts is the largest number of dot-separated parts in an IPv4 host.
	maxIPv4Parts = 4
	// ipv4Saturation caps parsed numbers; anything above 2^32 is out of range
	// for every part, so the exact value no longer matters.
	ipv4Saturation = 1 << 33
)

// IPv4 is an IPv4 address held as a 32-bit number, most significant byte
// first.
type IPv4 uint32

// String serializes the address in dotted-decimal form.
func (a IPv4) String() string {
	var b strings.Builder
	n := uint32(a)
	for i := 0; i < maxIPv4Parts; i++ {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(n>>24), 10))
		n <<= 8
	}
	return b.String()
}

// Addr converts a to a netip.Addr.
func (a IPv4) Addr() netip.Addr {
	n := uint32(a)
	return netip.AddrFrom4([4]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
}

// ParseIPv4 parses a dot-separated IPv4 host such as "192.168.0.1",
// "0xC0.0250.1" or "3232235521". Each part may be decimal, octal (leading
// "0") or hexadecimal (leading "0x"), and the last part fills all the bytes
// not given by the others.
func ParseIPv4(input string, opts ...Option) (IPv4, error) {
	cfg := newConfig(opts)
	return parseIPv4(input, &validator{reporter: cfg.reporter, input: input})
}

func parseIPv4(input string, v *validator) (IPv4, error) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		v.report(IPv4EmptyPart, -1)
		if len(parts) > 1 {
			parts = parts[:len(parts)-1]
		}
	}

	if len(parts) > maxIPv4Parts {
		v.report(IPv4TooManyParts, -1)
		return 0, ipv4Failure(IPv4TooManyParts, input)
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, nonDecimal, ok := parseIPv4Number(part)
		if !ok {
			v.report(IPv4NonNumericPart, -1)
			return 0, ipv4Failure(IPv4NonNumericPart, input)
		}
		if nonDecimal {
			v.report(IPv4NonDecimalPart, -1)
		}
		numbers = append(numbers, n)
	}

	for i, n := range numbers {
		if n > 255 {
			v.report(IPv4OutOfRangePart, -1)
			if i != len(numbers)-1 {
				return 0, ipv4Failure(IPv4OutOfRangePart, input)
			}
		}
	}

	last := numbers[len(numbers)-1]
	if last >= 1<<(8*(5-len(numbers))) {
		return 0, ipv4Failure(IPv4OutOfRangePart, input)
	}

	ipv4 := last
	for i, n := range numbers[:len(numbers)-1] {
		ipv4 += n << (8 * (3 - i))
	}
	return IPv4(ipv4), nil
}

// parseIPv4Number parses one IPv4 part. It returns the value, whether the
// part used a non-decimal notation, and false if the part is not a number.
func parseIPv4Number(input string) (uint64, bool, bool) {
	if input == "" {
		return 0, false, false
	}

	nonDecimal := false
	radix := uint64(10)
	switch {
	case len(input) >= 2 && (strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X")):
		nonDecimal = true
		input = input[2:]
		radix = 16
	case len(input) >= 2 && input[0] == '0':
		nonDecimal = true
		input = input[1:]
		radix = 8
	}

	if input == "" {
		return 0, nonDecimal, true
	}

	var n uint64
	for i := 0; i < len(input); i++ {
		d, ok := digitValue(input[i], radix)
		if !ok {
			return 0, nonDecimal, false
		}
		n = n*radix + d
		if n > ipv4Saturation {
			n = ipv4Saturation
		}
	}
	return n, nonDecimal, true
}

// digitValue returns the value of c as a digit in radix 8, 10 or 16.
func digitValue(c byte, radix uint64) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < radix
}

// endsInANumber reports whether a domain's last label looks numeric, in which
// case the host must be parsed as IPv4.
func endsInANumber(input string) bool {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		if len(parts) == 1 {
			return false
		}
		parts = parts[:len(parts)-1]
	}
	last := parts[len(parts)-1]
	if last != "" && strings.Trim(last, "0123456789") == "" {
		return true
	}
	_, _, ok := parseIPv4Number(last)
	return ok
}
