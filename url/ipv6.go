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

// ipv6Pieces is the number of 16-bit pieces in an IPv6 address.
const ipv6Pieces = 8

// IPv6 is an IPv6 address held as eight 16-bit pieces.
type IPv6 [ipv6Pieces]uint16

// String serializes the address with lowercase hex pieces, compressing the
// first longest run of two or more zero pieces to "::". Brackets are not
// included.
func (a IPv6) String() string {
	var b strings.Builder
	compress := a.compressedPieceIndex()
	ignore0 := false
	for i, piece := range a {
		if ignore0 && piece == 0 {
			continue
		}
		ignore0 = false
		if compress == i {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignore0 = true
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(piece), 16))
		if i != ipv6Pieces-1 {
			b.WriteByte(':')
		}
	}
	return b.String()
}

// compressedPieceIndex returns the start of the first longest run of at least
// two zero pieces, or -1.
func (a IPv6) compressedPieceIndex() int {
	best, bestLen := -1, 1
	for i := 0; i < ipv6Pieces; {
		if a[i] != 0 {
			i++
			continue
		}
		start := i
		for i < ipv6Pieces && a[i] == 0 {
			i++
		}
		if i-start > bestLen {
			best, bestLen = start, i-start
		}
	}
	return best
}

// Addr converts a to a netip.Addr.
func (a IPv6) Addr() netip.Addr {
	var bs [16]byte
	for i, piece := range a {
		bs[2*i] = byte(piece >> 8)
		bs[2*i+1] = byte(piece)
	}
	return netip.AddrFrom16(bs)
}

// ParseIPv6 parses the text between the brackets of an IPv6 host, such as
// "::1", "2001:db8::8a2e:370:7334" or "::ffff:192.0.2.1".
func ParseIPv6(input string, opts ...Option) (IPv6, error) {
	cfg := newConfig(opts)
	return parseIPv6(input, &validator{reporter: cfg.reporter, input: input})
}

func parseIPv6(input string, v *validator) (IPv6, error) {
	var address IPv6
	in := []rune(input)
	at := func(i int) rune {
		if i < len(in) {
			return in[i]
		}
		return eof
	}
	fail := func(kind ValidationKind, pos int) (IPv6, error) {
		v.report(kind, pos)
		return IPv6{}, ipv6Failure(kind, input)
	}

	pieceIndex := 0
	compress := -1
	pointer := 0

	if at(pointer) == ':' {
		if at(pointer+1) != ':' {
			return fail(IPv6InvalidCompression, pointer)
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for at(pointer) != eof {
		if pieceIndex == ipv6Pieces {
			return fail(IPv6TooManyPieces, pointer)
		}

		if at(pointer) == ':' {
			if compress != -1 {
				return fail(IPv6MultipleCompression, pointer)
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, length := 0, 0
		for length < 4 && isASCIIHexDigit(at(pointer)) {
			value = value*0x10 + int(hexValue(byte(at(pointer))))
			pointer++
			length++
		}

		switch at(pointer) {
		case '.':
			if length == 0 {
				return fail(IPv4InIPv6InvalidCodePoint, pointer)
			}
			pointer -= length
			if pieceIndex > ipv6Pieces-2 {
				return fail(IPv4InIPv6TooManyPieces, pointer)
			}
			var err error
			if pieceIndex, err = parseIPv4InIPv6(in, pointer, pieceIndex, &address, fail); err != nil {
				return IPv6{}, err
			}
			return finishIPv6(address, pieceIndex, compress, fail)
		case ':':
			pointer++
			if at(pointer) == eof {
				return fail(IPv6InvalidCodePoint, pointer)
			}
		case eof:
		default:
			return fail(IPv6InvalidCodePoint, pointer)
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	return finishIPv6(address, pieceIndex, compress, fail)
}

// parseIPv4InIPv6 fills two pieces of address from the dotted-decimal tail
// starting at in[pointer]. It returns the piece index after the tail.
func parseIPv4InIPv6(
	in []rune, pointer, pieceIndex int, address *IPv6,
	fail func(ValidationKind, int) (IPv6, error),
) (int, error) {
	at := func(i int) rune {
		if i < len(in) {
			return in[i]
		}
		return eof
	}

	numbersSeen := 0
	for at(pointer) != eof {
		ipv4Piece := -1
		if numbersSeen > 0 {
			if at(pointer) != '.' || numbersSeen >= 4 {
				_, err := fail(IPv4InIPv6InvalidCodePoint, pointer)
				return 0, err
			}
			pointer++
		}
		if !isASCIIDigit(at(pointer)) {
			_, err := fail(IPv4InIPv6InvalidCodePoint, pointer)
			return 0, err
		}
		for isASCIIDigit(at(pointer)) {
			number := int(at(pointer) - '0')
			switch ipv4Piece {
			case -1:
				ipv4Piece = number
			case 0:
				_, err := fail(IPv4InIPv6InvalidCodePoint, pointer)
				return 0, err
			default:
				ipv4Piece = ipv4Piece*10 + number
			}
			if ipv4Piece > 255 {
				_, err := fail(IPv4InIPv6OutOfRangePart, pointer)
				return 0, err
			}
			pointer++
		}
		address[pieceIndex] = address[pieceIndex]*0x100 + uint16(ipv4Piece)
		numbersSeen++
		if numbersSeen == 2 || numbersSeen == 4 {
			pieceIndex++
		}
	}
	if numbersSeen != 4 {
		_, err := fail(IPv4InIPv6TooFewParts, pointer)
		return 0, err
	}
	return pieceIndex, nil
}

// finishIPv6 moves the pieces after the compression point to the end of the
// address, or checks that all eight pieces were given when there is none.
func finishIPv6(
	address IPv6, pieceIndex, compress int,
	fail func(ValidationKind, int) (IPv6, error),
) (IPv6, error) {
	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = ipv6Pieces - 1
		for pieceIndex != 0 && swaps > 0 {
			address[pieceIndex], address[compress+swaps-1] = address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
		return address, nil
	}
	if pieceIndex != ipv6Pieces {
		return fail(IPv6TooFewPieces, -1)
	}
	return address, nil
}
