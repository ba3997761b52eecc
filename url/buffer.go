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
	"unicode/utf8"
)

// runeBuffer is the state machine's scratch buffer. It accumulates code
// points until a state decides what they are, and is then flushed into a
// URL component and reset.
type runeBuffer struct {
	runes []rune
}

// writeRune appends a single rune to the buffer.
func (b *runeBuffer) writeRune(r rune) { b.runes = append(b.runes, r) }

// writeLowerRune appends the ASCII lowercase form of r.
func (b *runeBuffer) writeLowerRune(r rune) {
	if 'A' <= r && r <= 'Z' {
		r += 'a' - 'A'
	}
	b.runes = append(b.runes, r)
}

// writeEncodedRune appends r, percent-encoding the bytes of its UTF-8 form
// that set selects.
func (b *runeBuffer) writeEncodedRune(r rune, set *asciiSet) {
	if r < utf8.RuneSelf && !set.shouldEncode(byte(r)) {
		b.runes = append(b.runes, r)
		return
	}
	var sb strings.Builder
	writePercentEncodedRune(&sb, r, set)
	for _, c := range sb.String() {
		b.runes = append(b.runes, c)
	}
}

// prependString inserts s in front of the buffer content.
func (b *runeBuffer) prependString(s string) {
	b.runes = append([]rune(s), b.runes...)
}

// string returns the content of the buffer.
func (b *runeBuffer) string() string { return string(b.runes) }

// len returns the number of code points in the buffer.
func (b *runeBuffer) len() int { return len(b.runes) }

// isEmpty reports whether the buffer holds nothing.
func (b *runeBuffer) isEmpty() bool { return len(b.runes) == 0 }

// reset clears the buffer, keeping its storage.
func (b *runeBuffer) reset() { b.runes = b.runes[:0] }

// setRune replaces the code point at i.
func (b *runeBuffer) setRune(i int, r rune) { b.runes[i] = r }

// isSingleDot reports whether the buffer is a "." path segment, including
// its percent-encoded spelling.
func (b *runeBuffer) isSingleDot() bool {
	s := b.string()
	return s == "." || strings.EqualFold(s, "%2e")
}

// isDoubleDot reports whether the buffer is a ".." path segment, in any
// mix of "." and "%2e" spellings.
func (b *runeBuffer) isDoubleDot() bool {
	switch strings.ToLower(b.string()) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}
