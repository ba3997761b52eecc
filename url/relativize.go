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

// Relativize returns the shortest reference string that resolves against u
// to target. Schemes that differ give the full serialization of target and
// authorities that differ give a scheme-relative reference. It returns
// ErrRelativize when u cannot be a base.
func (u *URL) Relativize(target *URL) (string, error) {
	if u.opaquePath {
		return "", ErrRelativize
	}
	if u.scheme != target.scheme || target.opaquePath {
		return target.String(), nil
	}

	for _, candidate := range u.relativeCandidates(target) {
		if u.resolvesTo(candidate, target) {
			return candidate, nil
		}
	}
	return target.String(), nil
}

// relativeCandidates lists references to target, from the shortest to the
// most explicit.
func (u *URL) relativeCandidates(target *URL) []string {
	var candidates []string
	if u.sameAuthority(target) {
		if u.serializePath() == target.serializePath() {
			candidates = append(candidates, u.relativizeSamePath(target))
		}
		candidates = append(candidates,
			withQueryAndFragment(u.relativizePath(target), target),
			withQueryAndFragment(target.serializePath(), target),
		)
	}
	if target.host != nil {
		candidates = append(candidates, strings.TrimPrefix(target.String(), target.Protocol()))
	}
	return candidates
}

// resolvesTo reports whether ref resolves against u to target.
func (u *URL) resolvesTo(ref string, target *URL) bool {
	resolved, err := Parse(ref, u, WithReporter(nil))
	return err == nil && resolved.Equal(target, false)
}

// sameAuthority reports whether u and other share credentials, host and
// port.
func (u *URL) sameAuthority(other *URL) bool {
	if (u.host == nil) != (other.host == nil) {
		return false
	}
	if u.host != nil && !u.host.Equal(other.host) {
		return false
	}
	return u.username == other.username && u.password == other.password &&
		u.hasPort == other.hasPort && u.port == other.port
}

// relativizeSamePath handles a target that differs from u in its query or
// fragment only.
func (u *URL) relativizeSamePath(target *URL) string {
	if u.hasQuery == target.hasQuery && u.query == target.query {
		if target.hasFragment {
			return "#" + target.fragment
		}
		return ""
	}

	if !target.hasQuery {
		last := ""
		if len(target.path) > 0 {
			last = target.path[len(target.path)-1]
		}
		if last == "" {
			last = "."
		}
		return withQueryAndFragment(last, target)
	}
	return withQueryAndFragment("", target)
}

// relativizePath builds a path-relative reference, going up with "../" out
// of the directories of u that target does not share.
func (u *URL) relativizePath(target *URL) string {
	var baseDir []string
	if len(u.path) > 0 {
		baseDir = u.path[:len(u.path)-1]
	}
	targetSegs := target.path

	common := 0
	for common < len(baseDir) && common < len(targetSegs) && baseDir[common] == targetSegs[common] {
		common++
	}

	var b strings.Builder
	for range baseDir[common:] {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))
	relPath := b.String()

	if relPath == "" {
		return "."
	}
	if !strings.HasPrefix(relPath, ".") {
		// A colon before the first slash would be read as a scheme.
		firstColon := strings.Index(relPath, ":")
		if firstColon != -1 {
			firstSlash := strings.Index(relPath, "/")
			if firstSlash == -1 || firstColon < firstSlash {
				relPath = "./" + relPath
			}
		}
	}
	return relPath
}

// withQueryAndFragment appends the query and fragment of target to ref.
func withQueryAndFragment(ref string, target *URL) string {
	var b strings.Builder
	b.WriteString(ref)
	if target.hasQuery {
		b.WriteByte('?')
		b.WriteString(target.query)
	}
	if target.hasFragment {
		b.WriteByte('#')
		b.WriteString(target.fragment)
	}
	return b.String()
}
