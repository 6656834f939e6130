// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/maker/internal/color"
	"github.com/matt-FFFFFF/maker/internal/copier"
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

var (
	// ErrUnknownFormat is returned for a format name that has no renderer.
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrRender is returned when a report cannot be encoded or written.
	ErrRender = errors.New("failed to render report")
)

// ParseFormat converts a name such as "json" to a Format. Matching ignores case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type options struct {
	colour bool
}

// Option configures rendering.
type Option func(o *options)

// WithColour forces colour on or off. The default follows color.Enabled.
func WithColour(on bool) Option {
	return func(o *options) {
		o.colour = on
	}
}

// Write renders r to w in format f.
func Write(w io.Writer, r *copier.Report, f Format, opts ...Option) error {
	o := &options{colour: color.Enabled()}
	for _, opt := range opts {
		opt(o)
	}

	if r == nil {
		r = &copier.Report{}
	}

	var err error

	switch f {
	case FormatText, "":
		err = writeText(w, r, o)
	case FormatJSON:
		err = writeJSON(w, r, o)
	case FormatYAML:
		err = writeYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if err != nil {
		return errors.Join(ErrRender, err)
	}

	return nil
}

// document is the structured form shared by the JSON and YAML renderers.
type document struct {
	Destination string `json:"destination" yaml:"destination"`
	Copied      int    `json:"copied" yaml:"copied"`
	UpToDate    int    `json:"up_to_date" yaml:"up_to_date"`
	Failed      int    `json:"failed" yaml:"failed"`
	Items       []item `json:"items" yaml:"items"`
}

type item struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Outcome     string `json:"outcome" yaml:"outcome"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newDocument(r *copier.Report) document {
	doc := document{
		Destination: r.Destination,
		Copied:      r.Count(copier.OutcomeCopied),
		UpToDate:    r.Count(copier.OutcomeUpToDate),
		Failed:      r.Count(copier.OutcomeFailed),
		Items:       make([]item, 0, len(r.Events)),
	}

	for _, ev := range r.Events {
		it := item{
			Source:      ev.Source,
			Destination: ev.Destination,
			Outcome:     ev.Outcome.String(),
		}

		if ev.Err != nil {
			it.Error = ev.Err.Error()
		}

		doc.Items = append(doc.Items, it)
	}

	return doc
}
