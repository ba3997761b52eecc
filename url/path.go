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

// shortenPath removes the last path segment. A file URL whose path is a
// single drive letter keeps it.
func (u *URL) shortenPath() {
	if u.scheme.is(File) && len(u.path) == 1 && isNormalizedWindowsDriveLetter(u.path[0]) {
		return
	}
	if len(u.path) > 0 {
		u.path = u.path[:len(u.path)-1]
	}
}

func (p *parser) parseFile(c rune) step {
	p.url.scheme = lookupScheme("file")
	p.url.host = emptyHost

	if c == '/' || c == '\\' {
		if c == '\\' {
			p.v.report(InvalidReverseSolidus, p.pointer)
		}
		p.state = FileSlashState
		return stepNext
	}

	if p.base == nil || !p.base.scheme.is(File) {
		p.state = PathState
		return stepReconsume
	}

	p.url.host = p.base.host
	p.url.path = append([]string(nil), p.base.path...)
	p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
	switch c {
	case '?':
		p.url.setQuery("")
		p.state = QueryState
	case '#':
		p.url.setFragment("")
		p.state = FragmentState
	case eof:
	default:
		p.url.clearQuery()
		if startsWithWindowsDriveLetter(p.input.from(p.pointer)) {
			p.v.report(FileInvalidWindowsDriveLetter, p.pointer)
			p.url.path = nil
		} else {
			p.url.shortenPath()
		}
		p.state = PathState
		return stepReconsume
	}
	return stepNext
}

func (p *parser) parseFileSlash(c rune) step {
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.v.report(InvalidReverseSolidus, p.pointer)
		}
		p.state = FileHostState
		return stepNext
	}

	if p.base != nil && p.base.scheme.is(File) {
		p.url.host = p.base.host
		if !startsWithWindowsDriveLetter(p.input.from(p.pointer)) &&
			len(p.base.path) > 0 && isNormalizedWindowsDriveLetter(p.base.path[0]) {
			p.url.path = append(p.url.path, p.base.path[0])
		}
	}
	p.state = PathState
	return stepReconsume
}

func (p *parser) parseFileHost(c rune) (step, error) {
	if c != eof && c != '/' && c != '\\' && c != '?' && c != '#' {
		p.buffer.writeRune(c)
		return stepNext, nil
	}

	switch {
	case p.stateOverride == NoState && isWindowsDriveLetter(p.buffer.runes):
		// The buffer is left as is: the path state reads it as the first
		// segment.
		p.v.report(FileInvalidWindowsDriveLetterHost, p.pointer)
		p.state = PathState
	case p.buffer.isEmpty():
		p.url.host = emptyHost
		if p.stateOverride != NoState {
			return stepReturn, nil
		}
		p.state = PathStartState
	default:
		input := p.buffer.string()
		host, err := parseHost(input, false, p.v.on(input))
		if err != nil {
			return stepReturn, err
		}
		if domain, ok := host.Domain(); ok && domain == "localhost" {
			host = emptyHost
		}
		p.url.host = host
		if p.stateOverride != NoState {
			return stepReturn, nil
		}
		p.buffer.reset()
		p.state = PathStartState
	}
	return stepReconsume, nil
}

func (p *parser) parsePathStart(c rune) step {
	switch {
	case p.url.IsSpecial():
		if c == '\\' {
			p.v.report(InvalidReverseSolidus, p.pointer)
		}
		p.state = PathState
		if c != '/' && c != '\\' {
			return stepReconsume
		}
	case p.stateOverride == NoState && c == '?':
		p.url.setQuery("")
		p.state = QueryState
	case p.stateOverride == NoState && c == '#':
		p.url.setFragment("")
		p.state = FragmentState
	case c != eof:
		p.state = PathState
		if c != '/' {
			return stepReconsume
		}
	case p.stateOverride != NoState && p.url.host == nil:
		p.url.path = append(p.url.path, "")
	}
	return stepNext
}

func (p *parser) parsePath(c rune) step {
	slash := p.isSpecialSlash(c)
	if !slash && c != eof && (p.stateOverride != NoState || (c != '?' && c != '#')) {
		p.checkURLUnit(c)
		p.buffer.writeEncodedRune(c, &pathSet)
		return stepNext
	}

	if c == '\\' {
		p.v.report(InvalidReverseSolidus, p.pointer)
	}
	switch {
	case p.buffer.isDoubleDot():
		p.url.shortenPath()
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	case p.buffer.isSingleDot():
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	default:
		if p.url.scheme.is(File) && len(p.url.path) == 0 && isWindowsDriveLetter(p.buffer.runes) {
			p.buffer.setRune(1, ':')
		}
		p.url.path = append(p.url.path, p.buffer.string())
	}
	p.buffer.reset()

	if p.url.scheme.is(File) && (c == eof || c == '?' || c == '#') {
		for len(p.url.path) > 1 && p.url.path[0] == "" {
			p.v.report(FileLeadingEmptySegment, p.pointer)
			p.url.path = p.url.path[1:]
		}
	}

	switch c {
	case '?':
		p.url.setQuery("")
		p.state = QueryState
	case '#':
		p.url.setFragment("")
		p.state = FragmentState
	}
	return stepNext
}

func (p *parser) parseOpaquePath(c rune) step {
	switch c {
	case '?', '#', eof:
		if len(p.url.path) == 0 {
			p.url.path = []string{""}
		}
		p.url.path[0] += p.buffer.string()
		p.buffer.reset()
	default:
		p.checkURLUnit(c)
		p.buffer.writeEncodedRune(c, &c0ControlSet)
		return stepNext
	}

	switch c {
	case '?':
		p.url.setQuery("")
		p.state = QueryState
	case '#':
		p.url.setFragment("")
		p.state = FragmentState
	}
	return stepNext
}
