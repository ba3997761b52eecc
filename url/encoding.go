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
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

const upperHex = "0123456789ABCDEF"

// asciiSet is a bitset over the 128 ASCII bytes. It selects the bytes an
// encode set requires to be percent-encoded. Bytes >= 0x80 are always
// encoded and are not represented.
type asciiSet [4]uint32

// with returns a copy of as that also contains every byte of chars.
func (as asciiSet) with(chars string) asciiSet {
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		as[c/32] |= 1 << (c % 32)
	}
	return as
}

// contains reports whether c is inside the set.
func (as *asciiSet) contains(c byte) bool {
	return c < utf8.RuneSelf && (as[c/32]&(1<<(c%32))) != 0
}

// shouldEncode reports whether c must be percent-encoded under as.
func (as *asciiSet) shouldEncode(c byte) bool {
	return c >= utf8.RuneSelf || as.contains(c)
}

func makeC0ControlSet() asciiSet {
	var as asciiSet
	for c := byte(0); c <= 0x1F; c++ {
		as[c/32] |= 1 << (c % 32)
	}
	return as.with("\x7f")
}

// The encode sets are layered: every set contains the one it is built from.
//
//nolint:gochecknoglobals // Encode sets are immutable lookup tables.
var (
	c0ControlSet    = makeC0ControlSet()
	fragmentSet     = c0ControlSet.with(" \"<>`")
	querySet        = c0ControlSet.with(" \"#<>")
	specialQuerySet = querySet.with("'")
	pathSet         = querySet.with("?`{}")
	userinfoSet     = pathSet.with("/:;=@[\\]^|")
	componentSet    = userinfoSet.with("$%&+,")
	formSet         = componentSet.with("!'()~")
)

// EncodeSet names one of the percent-encode sets of the URL Standard.
type EncodeSet uint8

// The named encode sets, from the smallest to the largest.
const (
	C0ControlEncodeSet EncodeSet = iota
	FragmentEncodeSet
	QueryEncodeSet
	SpecialQueryEncodeSet
	PathEncodeSet
	UserinfoEncodeSet
	ComponentEncodeSet
	FormEncodeSet
)

func (s EncodeSet) set() *asciiSet {
	switch s {
	case FragmentEncodeSet:
		return &fragmentSet
	case QueryEncodeSet:
		return &querySet
	case SpecialQueryEncodeSet:
		return &specialQuerySet
	case PathEncodeSet:
		return &pathSet
	case UserinfoEncodeSet:
		return &userinfoSet
	case ComponentEncodeSet:
		return &componentSet
	case FormEncodeSet:
		return &formSet
	case C0ControlEncodeSet:
	}
	return &c0ControlSet
}

// writePercentEncodedByte appends "%XX" for c with uppercase hex digits.
func writePercentEncodedByte(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0F])
}

// writePercentEncodedRune writes the UTF-8 encoding of r into b, escaping
// every byte selected by set.
func writePercentEncodedRune(b *strings.Builder, r rune, set *asciiSet) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, c := range buf[:n] {
		if set.shouldEncode(c) {
			writePercentEncodedByte(b, c)
		} else {
			b.WriteByte(c)
		}
	}
}

// percentEncodeString UTF-8 percent-encodes every code point of s under set.
func percentEncodeString(s string, set *asciiSet) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		writePercentEncodedRune(&b, r, set)
	}
	return b.String()
}

// PercentEncode UTF-8 percent-encodes s using the given encode set.
func PercentEncode(s string, set EncodeSet) string {
	return percentEncodeString(s, set.set())
}

// hexValue returns the value of an ASCII hex digit. c must be a hex digit.
func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// PercentDecode replaces every "%" followed by two ASCII hex digits with the
// byte they denote. Any other "%" is left as is.
func PercentDecode(input []byte) []byte {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '%' && i+2 < len(input) &&
			isASCIIHexDigit(rune(input[i+1])) && isASCIIHexDigit(rune(input[i+2])) {
			out = append(out, hexValue(input[i+1])<<4|hexValue(input[i+2]))
			i += 2
			continue
		}
		out = append(out, c)
	}
	return out
}

// PercentDecodeString is PercentDecode over the UTF-8 bytes of s.
func PercentDecodeString(s string) []byte {
	return PercentDecode([]byte(s))
}

// decodeUTF8 decodes b as UTF-8 without BOM handling, replacing ill-formed
// sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

// hasPercentEscapeAt reports whether s[i:] starts with '%' and two hex digits.
func hasPercentEscapeAt(s []rune, i int) bool {
	return i+2 < len(s) && s[i] == '%' && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2])
}

// outputEncoding returns the encoding a query is encoded with: nil stands for
// UTF-8, which is also what UTF-16BE, UTF-16LE and the replacement encoding
// collapse to.
func outputEncoding(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return nil
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return enc
	}
	switch name {
	case "utf-8", "utf-16be", "utf-16le", "replacement":
		return nil
	}
	return enc
}

// LookupEncoding returns the encoding for a WHATWG Encoding Standard label
// such as "windows-1252" or "shift_jis".
func LookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, &kindError{message: "Unknown encoding label", details: label}
	}
	return enc, nil
}

// percentEncodeAfterEncoding encodes s with enc (nil meaning UTF-8) and then
// percent-encodes the resulting bytes under set. A code point enc cannot
// represent is written as the numeric character reference "&#N;", itself
// percent-encoded as "%26%23N%3B". When spaceAsPlus is set, 0x20 becomes '+'.
func percentEncodeAfterEncoding(enc encoding.Encoding, s string, set *asciiSet, spaceAsPlus bool) string {
	var b strings.Builder
	b.Grow(len(s))

	writeBytes := func(bs []byte) {
		for _, c := range bs {
			switch {
			case spaceAsPlus && c == ' ':
				b.WriteByte('+')
			case set.shouldEncode(c):
				writePercentEncodedByte(&b, c)
			default:
				b.WriteByte(c)
			}
		}
	}

	if enc == nil {
		writeBytes([]byte(s))
		return b.String()
	}

	// The encoder is reset by every call to Bytes, so each code point is
	// encoded on its own and an unencodable one is known exactly.
	encoder := enc.NewEncoder()
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], r)
		out, err := encoder.Bytes(buf[:n])
		if err != nil {
			b.WriteString("%26%23")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteString("%3B")
			continue
		}
		writeBytes(out)
	}
	return b.String()
}
