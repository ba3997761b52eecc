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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jplu/weburl/url"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

// field is one line of text output.
type field struct {
	name  string
	value string
}

// texter is implemented by results that have a text rendering.
type texter interface {
	fields() []field
}

// render writes v to w in format.
func render(w io.Writer, format string, v texter) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, f := range v.fields() {
		if f.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", f.name+":", f.value); err != nil {
			return err
		}
	}
	return nil
}

// urlReport describes a parsed URL.
type urlReport struct {
	Input            string   `json:"input"                      yaml:"input"`
	Href             string   `json:"href"                       yaml:"href"`
	Protocol         string   `json:"protocol"                   yaml:"protocol"`
	Username         string   `json:"username,omitempty"         yaml:"username,omitempty"`
	Password         string   `json:"password,omitempty"         yaml:"password,omitempty"`
	Host             string   `json:"host,omitempty"             yaml:"host,omitempty"`
	Hostname         string   `json:"hostname,omitempty"         yaml:"hostname,omitempty"`
	Port             string   `json:"port,omitempty"             yaml:"port,omitempty"`
	Pathname         string   `json:"pathname"                   yaml:"pathname"`
	Search           string   `json:"search,omitempty"           yaml:"search,omitempty"`
	Hash             string   `json:"hash,omitempty"             yaml:"hash,omitempty"`
	Origin           string   `json:"origin"                     yaml:"origin"`
	ValidationErrors []string `json:"validationErrors,omitempty" yaml:"validationErrors,omitempty"`
}

func newURLReport(input string, u *url.URL, excludeFragment bool, errs []url.ValidationError) urlReport {
	r := urlReport{
		Input:    input,
		Href:     url.Serialize(u, excludeFragment),
		Protocol: u.Protocol(),
		Username: u.Username(),
		Password: u.Password(),
		Host:     u.HostString(),
		Hostname: u.Hostname(),
		Port:     u.PortString(),
		Pathname: u.Pathname(),
		Search:   u.Search(),
		Origin:   u.Origin().String(),
	}
	if !excludeFragment {
		r.Hash = u.Hash()
	}
	for _, e := range errs {
		r.ValidationErrors = append(r.ValidationErrors, e.Error())
	}
	return r
}

func (r urlReport) fields() []field {
	fs := []field{
		{"href", r.Href},
		{"protocol", r.Protocol},
		{"username", r.Username},
		{"password", r.Password},
		{"host", r.Host},
		{"hostname", r.Hostname},
		{"port", r.Port},
		{"pathname", r.Pathname},
		{"search", r.Search},
		{"hash", r.Hash},
		{"origin", r.Origin},
	}
	for _, e := range r.ValidationErrors {
		fs = append(fs, field{"warning", e})
	}
	return fs
}

// hostReport describes a parsed host.
type hostReport struct {
	Input             string `json:"input"                       yaml:"input"`
	Kind              string `json:"kind"                        yaml:"kind"`
	Serialized        string `json:"serialized"                  yaml:"serialized"`
	Unicode           string `json:"unicode,omitempty"           yaml:"unicode,omitempty"`
	PublicSuffix      string `json:"publicSuffix,omitempty"      yaml:"publicSuffix,omitempty"`
	RegistrableDomain string `json:"registrableDomain,omitempty" yaml:"registrableDomain,omitempty"`
}

func newHostReport(input string, h *url.Host) hostReport {
	r := hostReport{
		Input:      input,
		Kind:       h.Kind().String(),
		Serialized: h.String(),
	}
	if _, ok := h.Domain(); ok {
		r.Unicode = h.Unicode()
		r.PublicSuffix, _ = h.PublicSuffix()
		r.RegistrableDomain, _ = h.RegistrableDomain()
	}
	return r
}

func (r hostReport) fields() []field {
	return []field{
		{"kind", r.Kind},
		{"host", r.Serialized},
		{"unicode", r.Unicode},
		{"suffix", r.PublicSuffix},
		{"domain", r.RegistrableDomain},
	}
}

// stringReport is a single string result.
type stringReport struct {
	Value string `json:"value" yaml:"value"`
}

func (r stringReport) fields() []field {
	return []field{{"value", r.Value}}
}
