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
	"slices"
	"strings"
	"unicode/utf16"
)

// SearchParams is an ordered list of application/x-www-form-urlencoded
// name-value pairs. Names may repeat.
type SearchParams struct {
	list []nameValue
}

type nameValue struct {
	name  string
	value string
}

// ParseSearchParams parses an application/x-www-form-urlencoded string. A
// leading "?" is ignored.
func ParseSearchParams(s string) SearchParams {
	return parseSearchParams(strings.TrimPrefix(s, "?"))
}

// parseSearchParams parses s as is; a leading '?' is part of the first name.
func parseSearchParams(s string) SearchParams {
	var sp SearchParams
	for _, sequence := range strings.Split(s, "&") {
		if sequence == "" {
			continue
		}
		name, value, _ := strings.Cut(sequence, "=")
		sp.list = append(sp.list, nameValue{name: decodeFormComponent(name), value: decodeFormComponent(value)})
	}
	return sp
}

// decodeFormComponent turns '+' into a space, percent-decodes, and decodes
// the bytes as UTF-8.
func decodeFormComponent(s string) string {
	return decodeUTF8(PercentDecodeString(strings.ReplaceAll(s, "+", " ")))
}

// Len returns the number of pairs.
func (sp *SearchParams) Len() int {
	return len(sp.list)
}

// Get returns the value of the first pair named name.
func (sp *SearchParams) Get(name string) (string, bool) {
	for _, nv := range sp.list {
		if nv.name == name {
			return nv.value, true
		}
	}
	return "", false
}

// GetAll returns the values of all pairs named name, in order.
func (sp *SearchParams) GetAll(name string) []string {
	var values []string
	for _, nv := range sp.list {
		if nv.name == name {
			values = append(values, nv.value)
		}
	}
	return values
}

// Has reports whether a pair named name exists.
func (sp *SearchParams) Has(name string) bool {
	_, ok := sp.Get(name)
	return ok
}

// Append adds a pair at the end.
func (sp *SearchParams) Append(name, value string) {
	sp.list = append(sp.list, nameValue{name: name, value: value})
}

// Set sets the value of the first pair named name and removes the others,
// or appends a pair when there is none.
func (sp *SearchParams) Set(name, value string) {
	found := false
	sp.list = slices.DeleteFunc(sp.list, func(nv nameValue) bool {
		if nv.name != name {
			return false
		}
		if found {
			return true
		}
		found = true
		return false
	})
	for i := range sp.list {
		if sp.list[i].name == name {
			sp.list[i].value = value
			return
		}
	}
	sp.Append(name, value)
}

// Delete removes every pair named name.
func (sp *SearchParams) Delete(name string) {
	sp.list = slices.DeleteFunc(sp.list, func(nv nameValue) bool { return nv.name == name })
}

// Sort orders the pairs by name, comparing UTF-16 code units. Pairs with
// equal names keep their relative order.
func (sp *SearchParams) Sort() {
	slices.SortStableFunc(sp.list, func(a, b nameValue) int {
		return slices.Compare(utf16.Encode([]rune(a.name)), utf16.Encode([]rune(b.name)))
	})
}

// String serializes the pairs as application/x-www-form-urlencoded.
func (sp *SearchParams) String() string {
	var b strings.Builder
	for i, nv := range sp.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percentEncodeAfterEncoding(nil, nv.name, &formSet, true))
		b.WriteByte('=')
		b.WriteString(percentEncodeAfterEncoding(nil, nv.value, &formSet, true))
	}
	return b.String()
}

// SearchParams parses the query of u.
func (u *URL) SearchParams() SearchParams {
	if !u.hasQuery {
		return SearchParams{}
	}
	return parseSearchParams(u.query)
}

// WithSearchParams replaces the query of u with the serialization of sp. An
// empty list removes the query.
func (u *URL) WithSearchParams(sp SearchParams) *URL {
	out := u.clone()
	if q := sp.String(); q != "" {
		out.setQuery(q)
	} else {
		out.clearQuery()
		out.stripTrailingSpaces()
	}
	return out
}
