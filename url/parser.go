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
	"golang.org/x/text/encoding"
)

// step tells the driving loop what to do after a state handler ran.
type step uint8

const (
	// stepNext advances the pointer, or ends the parse at the end of input.
	stepNext step = iota
	// stepReconsume runs the next state on the same code point.
	stepReconsume
	// stepReturn ends the parse successfully.
	stepReturn
)

// parser holds the state of a single run of the basic URL parser. It
// mutates url, which is either a fresh record or a private clone of the
// URL given with WithURL; a failed run discards it.
type parser struct {
	input   parserInput
	pointer int
	state   State
	buffer  runeBuffer

	url  *URL
	base *URL

	encoding      encoding.Encoding
	stateOverride State

	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool

	v *validator
}

// basicParse runs the basic URL parser over input.
func basicParse(input string, base *URL, cfg *config) (*URL, error) {
	u := &URL{}
	if cfg.url != nil {
		u = cfg.url.clone()
	}

	in, trimmed, removed := newParserInput(input, cfg.url == nil)
	v := &validator{reporter: cfg.reporter, input: in.String()}
	if trimmed {
		v.report(LeadingOrTrailingC0ControlOrSpace, -1)
	}
	if removed {
		v.report(TabOrNewline, -1)
	}

	p := &parser{
		input:         in,
		state:         SchemeStartState,
		url:           u,
		base:          base,
		encoding:      outputEncoding(cfg.encoding),
		stateOverride: cfg.stateOverride,
		v:             v,
	}
	if cfg.stateOverride != NoState {
		p.state = cfg.stateOverride
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.url, nil
}

// run drives the state machine until a handler returns, fails, or the end
// of input has been processed.
func (p *parser) run() error {
	for {
		st, err := p.step(p.input.at(p.pointer))
		if err != nil {
			return err
		}
		switch st {
		case stepReturn:
			return nil
		case stepReconsume:
			continue
		case stepNext:
		}
		if p.pointer >= p.input.len() {
			return nil
		}
		p.pointer++
	}
}

func (p *parser) step(c rune) (step, error) {
	switch p.state {
	case SchemeStartState:
		return p.parseSchemeStart(c)
	case SchemeState:
		return p.parseScheme(c)
	case NoSchemeState:
		return p.parseNoScheme(c)
	case SpecialRelativeOrAuthorityState:
		return p.parseSpecialRelativeOrAuthority(c), nil
	case PathOrAuthorityState:
		return p.parsePathOrAuthority(c), nil
	case RelativeState:
		return p.parseRelative(c), nil
	case RelativeSlashState:
		return p.parseRelativeSlash(c), nil
	case SpecialAuthoritySlashesState:
		return p.parseSpecialAuthoritySlashes(c), nil
	case SpecialAuthorityIgnoreSlashesState:
		return p.parseSpecialAuthorityIgnoreSlashes(c), nil
	case AuthorityState:
		return p.parseAuthority(c)
	case HostState, HostnameState:
		return p.parseHost(c)
	case PortState:
		return p.parsePort(c)
	case FileState:
		return p.parseFile(c), nil
	case FileSlashState:
		return p.parseFileSlash(c), nil
	case FileHostState:
		return p.parseFileHost(c)
	case PathStartState:
		return p.parsePathStart(c), nil
	case PathState:
		return p.parsePath(c), nil
	case OpaquePathState:
		return p.parseOpaquePath(c), nil
	case QueryState:
		return p.parseQuery(c), nil
	case FragmentState:
		return p.parseFragment(c), nil
	case NoState:
	}
	return stepReturn, nil
}

// fail reports the validation error matching err and returns it as a
// *ParseError.
func (p *parser) fail(err *kindError, details string) error {
	if err.kind != "" {
		p.v.report(err.kind, p.pointer)
	}
	return newParseError(err, details)
}

// isSpecialSlash reports whether c separates components: '/' always, '\'
// for special URLs only.
func (p *parser) isSpecialSlash(c rune) bool {
	return c == '/' || (c == '\\' && p.url.IsSpecial())
}

// isComponentEnd reports whether c ends an authority component.
func (p *parser) isComponentEnd(c rune) bool {
	return c == eof || c == '?' || c == '#' || p.isSpecialSlash(c)
}

// checkURLUnit reports an invalid-URL-unit validation error for a code
// point that is neither a URL code point nor the start of a percent escape.
func (p *parser) checkURLUnit(c rune) {
	if c == '%' {
		if !hasPercentEscapeAt(p.input.runes, p.pointer) {
			p.v.report(InvalidURLUnit, p.pointer)
		}
		return
	}
	if !isURLCodePoint(c) {
		p.v.report(InvalidURLUnit, p.pointer)
	}
}

func (p *parser) parseSchemeStart(c rune) (step, error) {
	switch {
	case isASCIILetter(c):
		p.buffer.writeLowerRune(c)
		p.state = SchemeState
		return stepNext, nil
	case p.stateOverride == NoState:
		p.state = NoSchemeState
		return stepReconsume, nil
	}
	return stepReturn, newParseError(ErrSchemeInvalid, p.input.String())
}

func (p *parser) parseScheme(c rune) (step, error) {
	switch {
	case isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.':
		p.buffer.writeLowerRune(c)
		return stepNext, nil
	case c == ':':
		return p.endScheme(), nil
	case p.stateOverride == NoState:
		p.buffer.reset()
		p.state = NoSchemeState
		p.pointer = 0
		return stepReconsume, nil
	}
	return stepReturn, newParseError(ErrSchemeInvalid, p.input.String())
}

// endScheme stores the scheme held in the buffer and picks the state that
// parses what follows the colon.
func (p *parser) endScheme() step {
	scheme := lookupScheme(p.buffer.string())
	if p.stateOverride != NoState {
		u := p.url
		switch {
		case u.IsSpecial() != scheme.IsSpecial():
			return stepReturn
		case (u.IncludesCredentials() || u.hasPort) && scheme.is(File):
			return stepReturn
		case u.scheme.is(File) && u.host != nil && u.host.IsEmpty():
			return stepReturn
		}
	}

	p.url.scheme = scheme
	if p.stateOverride != NoState {
		if p.url.hasPort {
			p.url.setPort(p.url.port)
		}
		return stepReturn
	}
	p.buffer.reset()

	switch {
	case scheme.is(File):
		if !p.input.remainingStartsWith(p.pointer, "//") {
			p.v.report(SpecialSchemeMissingFollowingSolidus, p.pointer)
		}
		p.state = FileState
	case scheme.IsSpecial() && p.base != nil && p.base.scheme == scheme:
		p.state = SpecialRelativeOrAuthorityState
	case scheme.IsSpecial():
		p.state = SpecialAuthoritySlashesState
	case p.input.remainingStartsWith(p.pointer, "/"):
		p.state = PathOrAuthorityState
		p.pointer++
	default:
		p.url.path = []string{""}
		p.url.opaquePath = true
		p.state = OpaquePathState
	}
	return stepNext
}

func (p *parser) parseNoScheme(c rune) (step, error) {
	switch {
	case p.base == nil || (p.base.opaquePath && c != '#'):
		return stepReturn, p.fail(ErrMissingSchemeNonRelativeURL, p.input.String())
	case p.base.opaquePath:
		p.url.scheme = p.base.scheme
		p.url.path = append([]string(nil), p.base.path...)
		p.url.opaquePath = true
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		p.url.setFragment("")
		p.state = FragmentState
		return stepNext, nil
	case !p.base.scheme.is(File):
		p.state = RelativeState
	default:
		p.state = FileState
	}
	return stepReconsume, nil
}

func (p *parser) parseSpecialRelativeOrAuthority(c rune) step {
	if c == '/' && p.input.remainingStartsWith(p.pointer, "/") {
		p.state = SpecialAuthorityIgnoreSlashesState
		p.pointer++
		return stepNext
	}
	p.v.report(SpecialSchemeMissingFollowingSolidus, p.pointer)
	p.state = RelativeState
	return stepReconsume
}

func (p *parser) parsePathOrAuthority(c rune) step {
	if c == '/' {
		p.state = AuthorityState
		return stepNext
	}
	p.state = PathState
	return stepReconsume
}

// copyAuthority copies the credentials, host and port of the base URL.
func (p *parser) copyAuthority() {
	p.url.username = p.base.username
	p.url.password = p.base.password
	p.url.host = p.base.host
	p.url.port, p.url.hasPort = p.base.port, p.base.hasPort
}

func (p *parser) parseRelative(c rune) step {
	p.url.scheme = p.base.scheme
	switch {
	case c == '/':
		p.state = RelativeSlashState
		return stepNext
	case p.url.IsSpecial() && c == '\\':
		p.v.report(InvalidReverseSolidus, p.pointer)
		p.state = RelativeSlashState
		return stepNext
	}

	p.copyAuthority()
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
		p.url.shortenPath()
		p.state = PathState
		return stepReconsume
	}
	return stepNext
}

func (p *parser) parseRelativeSlash(c rune) step {
	switch {
	case p.url.IsSpecial() && (c == '/' || c == '\\'):
		if c == '\\' {
			p.v.report(InvalidReverseSolidus, p.pointer)
		}
		p.state = SpecialAuthorityIgnoreSlashesState
		return stepNext
	case c == '/':
		p.state = AuthorityState
		return stepNext
	}
	p.copyAuthority()
	p.state = PathState
	return stepReconsume
}

func (p *parser) parseSpecialAuthoritySlashes(c rune) step {
	p.state = SpecialAuthorityIgnoreSlashesState
	if c == '/' && p.input.remainingStartsWith(p.pointer, "/") {
		p.pointer++
		return stepNext
	}
	p.v.report(SpecialSchemeMissingFollowingSolidus, p.pointer)
	return stepReconsume
}

func (p *parser) parseSpecialAuthorityIgnoreSlashes(c rune) step {
	if c != '/' && c != '\\' {
		p.state = AuthorityState
		return stepReconsume
	}
	p.v.report(SpecialSchemeMissingFollowingSolidus, p.pointer)
	return stepNext
}

func (p *parser) parseQuery(c rune) step {
	if p.encoding != nil && (!p.url.IsSpecial() || p.url.scheme.is(WS) || p.url.scheme.is(WSS)) {
		p.encoding = nil
	}

	if c == eof || (c == '#' && p.stateOverride == NoState) {
		set := &querySet
		if p.url.IsSpecial() {
			set = &specialQuerySet
		}
		p.url.query += percentEncodeAfterEncoding(p.encoding, p.buffer.string(), set, false)
		p.buffer.reset()
		if c == '#' {
			p.url.setFragment("")
			p.state = FragmentState
		}
		return stepNext
	}

	p.checkURLUnit(c)
	p.buffer.writeRune(c)
	return stepNext
}

func (p *parser) parseFragment(c rune) step {
	if c == eof {
		p.url.fragment += p.buffer.string()
		p.buffer.reset()
		return stepNext
	}
	p.checkURLUnit(c)
	p.buffer.writeEncodedRune(c, &fragmentSet)
	return stepNext
}
