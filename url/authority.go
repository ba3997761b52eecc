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

// maxPort is the largest valid port number.
const maxPort = 65535

// parseAuthority collects the userinfo. Code points are buffered until an
// '@' proves they were credentials, or the end of the authority sends the
// parser back to read them again as the host.
func (p *parser) parseAuthority(c rune) (step, error) {
	if c == '@' {
		p.v.report(InvalidCredentials, p.pointer)
		if p.atSignSeen {
			p.buffer.prependString("%40")
		}
		p.atSignSeen = true
		p.flushCredentials()
		return stepNext, nil
	}

	if p.isComponentEnd(c) {
		if p.atSignSeen && p.buffer.isEmpty() {
			return stepReturn, p.fail(ErrInvalidCredentials, p.input.String())
		}
		p.pointer -= p.buffer.len() + 1
		p.buffer.reset()
		p.state = HostState
		return stepNext, nil
	}

	p.buffer.writeRune(c)
	return stepNext, nil
}

// flushCredentials moves the buffer into the username, or the password once
// the first ':' has been seen.
func (p *parser) flushCredentials() {
	var username, password strings.Builder
	username.WriteString(p.url.username)
	password.WriteString(p.url.password)
	for _, r := range p.buffer.runes {
		if r == ':' && !p.passwordTokenSeen {
			p.passwordTokenSeen = true
			continue
		}
		if p.passwordTokenSeen {
			writePercentEncodedRune(&password, r, &userinfoSet)
		} else {
			writePercentEncodedRune(&username, r, &userinfoSet)
		}
	}
	p.url.username = username.String()
	p.url.password = password.String()
	p.buffer.reset()
}

// parseHost handles both the host and the hostname states.
func (p *parser) parseHost(c rune) (step, error) {
	if p.stateOverride != NoState && p.url.scheme.is(File) {
		p.state = FileHostState
		return stepReconsume, nil
	}

	switch {
	case c == ':' && !p.insideBrackets:
		if p.buffer.isEmpty() {
			return stepReturn, p.fail(ErrHostMissing, p.input.String())
		}
		if p.stateOverride == HostnameState {
			return stepReturn, newParseError(ErrPortInvalid, p.input.String())
		}
		if err := p.setHostFromBuffer(); err != nil {
			return stepReturn, err
		}
		p.state = PortState
		return stepNext, nil

	case p.isComponentEnd(c):
		if p.url.IsSpecial() && p.buffer.isEmpty() {
			return stepReturn, p.fail(ErrHostMissing, p.input.String())
		}
		if p.stateOverride != NoState && p.buffer.isEmpty() && (p.url.IncludesCredentials() || p.url.hasPort) {
			return stepReturn, newParseError(ErrInvalidCredentials, p.input.String())
		}
		if err := p.setHostFromBuffer(); err != nil {
			return stepReturn, err
		}
		p.state = PathStartState
		if p.stateOverride != NoState {
			return stepReturn, nil
		}
		return stepReconsume, nil
	}

	switch c {
	case '[':
		p.insideBrackets = true
	case ']':
		p.insideBrackets = false
	}
	p.buffer.writeRune(c)
	return stepNext, nil
}

// setHostFromBuffer parses the buffer as the URL's host and clears it.
func (p *parser) setHostFromBuffer() error {
	input := p.buffer.string()
	host, err := parseHost(input, !p.url.IsSpecial(), p.v.on(input))
	if err != nil {
		return err
	}
	p.url.host = host
	p.buffer.reset()
	return nil
}

func (p *parser) parsePort(c rune) (step, error) {
	if isASCIIDigit(c) {
		p.buffer.writeRune(c)
		return stepNext, nil
	}

	if !p.isComponentEnd(c) && p.stateOverride == NoState {
		return stepReturn, p.fail(ErrPortInvalid, p.input.String())
	}

	if !p.buffer.isEmpty() {
		port := 0
		for _, r := range p.buffer.runes {
			port = port*10 + int(r-'0')
			if port > maxPort {
				return stepReturn, p.fail(ErrPortOutOfRange, p.buffer.string())
			}
		}
		p.url.setPort(uint16(port))
		p.buffer.reset()
		if p.stateOverride != NoState {
			return stepReturn, nil
		}
	}
	if p.stateOverride != NoState {
		return stepReturn, newParseError(ErrPortInvalid, p.input.String())
	}
	p.state = PathStartState
	return stepReconsume, nil
}
