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

import "strings"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isASCIIAlphanumeric checks if a rune is an ASCII letter or digit.
func isASCIIAlphanumeric(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r)
}

// isC0Control reports whether r is in the range U+0000 to U+001F inclusive.
func isC0Control(r rune) bool {
	return 0 <= r && r <= 0x1F
}

// isC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
func isC0ControlOrSpace(r rune) bool {
	return isC0Control(r) || r == ' '
}

// isTabOrNewline reports whether r is U+0009 TAB, U+000A LF or U+000D CR.
func isTabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// isForbiddenHostCodePoint reports whether r may never appear in a host.
// The set is U+0000, TAB, LF, CR, SPACE, and "#%/:?@[\]".
func isForbiddenHostCodePoint(r rune) bool {
	switch r {
	case 0, '\t', '\n', '\r', ' ', '#', '%', '/', ':', '?', '@', '[', '\\', ']':
		return true
	}
	return false
}

// isForbiddenOpaqueHostCodePoint is isForbiddenHostCodePoint minus '%', so
// that percent-escapes in opaque hosts survive.
func isForbiddenOpaqueHostCodePoint(r rune) bool {
	return r != '%' && isForbiddenHostCodePoint(r)
}

// isForbiddenDomainCodePoint reports whether r may never appear in a
// domain: a forbidden host code point, a C0 control, '%' or U+007F.
func isForbiddenDomainCodePoint(r rune) bool {
	return isForbiddenHostCodePoint(r) || isC0Control(r) || r == '%' || r == 0x7F
}

// isSurrogate reports whether r is in the range U+D800 to U+DFFF.
func isSurrogate(r rune) bool {
	return 0xD800 <= r && r <= 0xDFFF
}

// isNoncharacter reports whether r is a Unicode noncharacter: U+FDD0 to
// U+FDEF, or any code point whose low 16 bits are FFFE or FFFF.
func isNoncharacter(r rune) bool {
	if 0xFDD0 <= r && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return r <= 0x10FFFF && (low == 0xFFFE || low == 0xFFFF)
}

// isURLCodePoint reports whether r is an ASCII alphanumeric, one of
// "!$&'()*+,-./:;=?@_~", or a code point in U+00A0 to U+10FFFF excluding
// surrogates and noncharacters.
func isURLCodePoint(r rune) bool {
	if isASCIIAlphanumeric(r) {
		return true
	}
	if r < 0x80 {
		return strings.ContainsRune("!$&'()*+,-./:;=?@_~", r)
	}
	return 0xA0 <= r && r <= 0x10FFFF && !isSurrogate(r) && !isNoncharacter(r)
}

// isWindowsDriveLetter reports whether s is two code points, an ASCII letter
// followed by ':' or '|'.
func isWindowsDriveLetter(s []rune) bool {
	return len(s) == 2 && isASCIILetter(s[0]) && (s[1] == ':' || s[1] == '|')
}

// isNormalizedWindowsDriveLetter is isWindowsDriveLetter with ':' only.
func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIILetter(rune(s[0])) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports whether s starts with a Windows drive
// letter that is either the whole of s or followed by one of "/\?#".
func startsWithWindowsDriveLetter(s []rune) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}
