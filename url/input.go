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

// eof is the code point seen when the pointer is past the end of the input.
const eof rune = -1

// parserInput is the immutable code point sequence the state machine walks
// with an integer pointer. Lookahead and rewinding are plain index
// arithmetic.
type parserInput struct {
	runes []rune
}

// newParserInput prepares s for parsing. When trim is set, leading and
// trailing C0 controls and spaces are removed; tabs and newlines are always
// removed. It reports which of the two removals happened.
func newParserInput(s string, trim bool) (parserInput, bool, bool) {
	runes := []rune(s)
	trimmed := false
	if trim {
		start, end := 0, len(runes)
		for start < end && isC0ControlOrSpace(runes[start]) {
			start++
		}
		for end > start && isC0ControlOrSpace(runes[end-1]) {
			end--
		}
		trimmed = start != 0 || end != len(runes)
		runes = runes[start:end]
	}

	removed := false
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if isTabOrNewline(r) {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return parserInput{runes: out}, trimmed, removed
}

// at returns the code point at i, or eof.
func (in parserInput) at(i int) rune {
	if i >= 0 && i < len(in.runes) {
		return in.runes[i]
	}
	return eof
}

// len returns the number of code points.
func (in parserInput) len() int {
	return len(in.runes)
}

// remaining returns the code points after i.
func (in parserInput) remaining(i int) []rune {
	if i+1 >= len(in.runes) {
		return nil
	}
	return in.runes[i+1:]
}

// from returns the code points starting at i.
func (in parserInput) from(i int) []rune {
	if i >= len(in.runes) {
		return nil
	}
	if i < 0 {
		i = 0
	}
	return in.runes[i:]
}

// remainingStartsWith reports whether the code points after i start with s.
func (in parserInput) remainingStartsWith(i int, s string) bool {
	rest := in.remaining(i)
	j := 0
	for _, r := range s {
		if j >= len(rest) || rest[j] != r {
			return false
		}
		j++
	}
	return true
}

// String returns the prepared input.
func (in parserInput) String() string {
	return string(in.runes)
}
