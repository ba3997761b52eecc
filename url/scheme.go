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

// SpecialScheme enumerates the schemes the URL Standard treats specially.
// NotSpecial marks a custom scheme.
type SpecialScheme uint8

// The special schemes.
const (
	NotSpecial SpecialScheme = iota
	FTP
	File
	HTTP
	HTTPS
	WS
	WSS
)

// String returns the scheme name, or "" for NotSpecial.
func (s SpecialScheme) String() string {
	switch s {
	case FTP:
		return "ftp"
	case File:
		return "file"
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	case WS:
		return "ws"
	case WSS:
		return "wss"
	case NotSpecial:
	}
	return ""
}

// DefaultPort returns the default port of the scheme. file and custom
// schemes have none.
func (s SpecialScheme) DefaultPort() (uint16, bool) {
	switch s {
	case FTP:
		return 21, true
	case HTTP, WS:
		return 80, true
	case HTTPS, WSS:
		return 443, true
	case File, NotSpecial:
	}
	return 0, false
}

// Scheme is a lowercase URL scheme: one of the special schemes, or a custom
// scheme carrying its own name.
type Scheme struct {
	special SpecialScheme
	custom  string
}

// lookupScheme returns the Scheme for a lowercase scheme name.
func lookupScheme(name string) Scheme {
	switch name {
	case "ftp":
		return Scheme{special: FTP}
	case "file":
		return Scheme{special: File}
	case "http":
		return Scheme{special: HTTP}
	case "https":
		return Scheme{special: HTTPS}
	case "ws":
		return Scheme{special: WS}
	case "wss":
		return Scheme{special: WSS}
	}
	return Scheme{custom: name}
}

// String returns the scheme name without the trailing colon.
func (s Scheme) String() string {
	if s.special != NotSpecial {
		return s.special.String()
	}
	return s.custom
}

// Special returns the special scheme, or NotSpecial for a custom scheme.
func (s Scheme) Special() SpecialScheme {
	return s.special
}

// IsSpecial reports whether s is one of the special schemes.
func (s Scheme) IsSpecial() bool {
	return s.special != NotSpecial
}

// DefaultPort returns the default port of the scheme, if it has one.
func (s Scheme) DefaultPort() (uint16, bool) {
	return s.special.DefaultPort()
}

// is reports whether s is the special scheme sp.
func (s Scheme) is(sp SpecialScheme) bool {
	return s.special == sp && sp != NotSpecial
}
