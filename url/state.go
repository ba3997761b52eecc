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

// State is a state of the basic URL parser. A state can be given to
// ParseBasic as an override to re-parse a single component of a URL.
type State uint8

// Parser states.
const (
	NoState State = iota
	SchemeStartState
	SchemeState
	NoSchemeState
	SpecialRelativeOrAuthorityState
	PathOrAuthorityState
	RelativeState
	RelativeSlashState
	SpecialAuthoritySlashesState
	SpecialAuthorityIgnoreSlashesState
	AuthorityState
	HostState
	HostnameState
	PortState
	FileState
	FileSlashState
	FileHostState
	PathStartState
	PathState
	// OpaquePathState is the cannot-be-a-base-URL path state.
	OpaquePathState
	QueryState
	FragmentState
)

//nolint:gochecknoglobals // Read-only name table.
var stateNames = [...]string{
	NoState:                            "no state",
	SchemeStartState:                   "scheme start",
	SchemeState:                        "scheme",
	NoSchemeState:                      "no scheme",
	SpecialRelativeOrAuthorityState:    "special relative or authority",
	PathOrAuthorityState:               "path or authority",
	RelativeState:                      "relative",
	RelativeSlashState:                 "relative slash",
	SpecialAuthoritySlashesState:       "special authority slashes",
	SpecialAuthorityIgnoreSlashesState: "special authority ignore slashes",
	AuthorityState:                     "authority",
	HostState:                          "host",
	HostnameState:                      "hostname",
	PortState:                          "port",
	FileState:                          "file",
	FileSlashState:                     "file slash",
	FileHostState:                      "file host",
	PathStartState:                     "path start",
	PathState:                          "path",
	OpaquePathState:                    "opaque path",
	QueryState:                         "query",
	FragmentState:                      "fragment",
}

// String returns the name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
