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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jplu/weburl/url"
)

func newParseCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse URL...",
		Short: "Parse URLs and print their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := o.baseURL()
			if err != nil {
				return err
			}
			opts, collector, err := o.parseOptions()
			if err != nil {
				return err
			}

			for _, input := range args {
				collector.Reset()
				u, err := url.Parse(input, base, opts...)
				if err != nil {
					return fmt.Errorf("parse %q: %w", input, err)
				}
				report := newURLReport(input, u, o.excludeFragment, collector.Errors())
				if err := render(cmd.OutOrStdout(), o.output, report); err != nil {
					return err
				}
				if err := o.checkStrict(collector); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newResolveCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BASE REF",
		Short: "Resolve a reference against a base URL and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, collector, err := o.parseOptions()
			if err != nil {
				return err
			}
			base, err := url.Parse(args[0], nil, opts...)
			if err != nil {
				return fmt.Errorf("invalid base URL: %w", err)
			}
			u, err := base.Resolve(args[1], opts...)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", args[1], err)
			}
			report := stringReport{Value: url.Serialize(u, o.excludeFragment)}
			if err := render(cmd.OutOrStdout(), o.output, report); err != nil {
				return err
			}
			return o.checkStrict(collector)
		},
	}
}

func newHostCommand(o *options) *cobra.Command {
	var opaque bool
	cmd := &cobra.Command{
		Use:   "host HOST",
		Short: "Parse a host the way the host of a URL is parsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, collector, err := o.parseOptions()
			if err != nil {
				return err
			}
			h, err := url.ParseHost(args[0], opaque, opts...)
			if err != nil {
				return fmt.Errorf("host %q: %w", args[0], err)
			}
			if err := render(cmd.OutOrStdout(), o.output, newHostReport(args[0], h)); err != nil {
				return err
			}
			return o.checkStrict(collector)
		},
	}
	cmd.Flags().BoolVar(&opaque, "opaque", false, "parse as the opaque host of a non-special URL")
	return cmd
}

func newRelativizeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "relativize BASE TARGET",
		Short: "Print the shortest reference from BASE to TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := o.parseOptions()
			if err != nil {
				return err
			}
			base, err := url.Parse(args[0], nil, opts...)
			if err != nil {
				return fmt.Errorf("invalid base URL: %w", err)
			}
			target, err := url.Parse(args[1], nil, opts...)
			if err != nil {
				return fmt.Errorf("invalid target URL: %w", err)
			}
			ref, err := base.Relativize(target)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o.output, stringReport{Value: ref})
		},
	}
}

// versionInfo is the output of the version command.
type versionInfo struct {
	Version   string `json:"version"   yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

func (v versionInfo) fields() []field {
	return []field{{"version", v.Version}, {"go", v.GoVersion}}
}

func newVersionCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{Version: Version, GoVersion: runtime.Version()}
			return render(cmd.OutOrStdout(), o.output, info)
		},
	}
}
