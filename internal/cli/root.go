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

// Package cli implements the weburl command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding"

	"github.com/jplu/weburl/url"
)

// Version is set at build time with -ldflags.
//
//nolint:gochecknoglobals // Overridden by the linker.
var Version = "dev"

// errStrict is returned in strict mode when a parse reported validation
// errors.
//
//nolint:gochecknoglobals // Sentinel error matched with errors.Is.
var errStrict = errors.New("validation errors reported")

// options holds the values of the persistent flags.
type options struct {
	base            string
	encoding        string
	output          string
	logFormat       string
	debug           bool
	strict          bool
	excludeFragment bool
}

// addFlags registers the persistent flags on fs.
func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.base, "base", "", "base URL relative inputs are resolved against")
	fs.StringVar(&o.encoding, "encoding", "utf-8", "encoding label used for the query of special URLs")
	fs.StringVarP(&o.output, "output", "o", formatText, "output format: text, json or yaml")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format on stderr: text or json")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&o.strict, "strict", false, "fail when a validation error is reported")
	fs.BoolVar(&o.excludeFragment, "exclude-fragment", false, "serialize URLs without their fragment")
}

// setupLogger installs the logger validation errors are written to.
func (o *options) setupLogger(w io.Writer) error {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch o.logFormat {
	case "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return fmt.Errorf("unknown log format %q", o.logFormat)
	}
	url.SetLogger(slog.New(handler))
	return nil
}

// parseOptions returns the url options for the flags, and the collector
// that will receive the validation errors.
func (o *options) parseOptions() ([]url.Option, *url.Collector, error) {
	var enc encoding.Encoding
	if o.encoding != "" {
		var err error
		if enc, err = url.LookupEncoding(o.encoding); err != nil {
			return nil, nil, err
		}
	}
	collector := &url.Collector{}
	opts := []url.Option{
		url.WithEncoding(enc),
		url.WithReporter(url.MultiReporter(collector, url.NewLogReporter(nil))),
	}
	return opts, collector, nil
}

// baseURL parses the --base flag, or returns nil when it is not set.
func (o *options) baseURL() (*url.URL, error) {
	if o.base == "" {
		return nil, nil
	}
	base, err := url.Parse(o.base, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return base, nil
}

// checkStrict fails in strict mode when c holds validation errors.
func (o *options) checkStrict(c *url.Collector) error {
	if o.strict && len(c.Errors()) > 0 {
		return fmt.Errorf("%w: %d", errStrict, len(c.Errors()))
	}
	return nil
}

// NewRootCommand builds the weburl command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "weburl",
		Short:         "Parse, resolve and serialize URLs the way browsers do",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(o.output); err != nil {
				return err
			}
			return o.setupLogger(cmd.ErrOrStderr())
		},
	}
	o.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newParseCommand(o),
		newResolveCommand(o),
		newHostCommand(o),
		newRelativizeCommand(o),
		newVersionCommand(o),
	)
	return cmd
}
