// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/maker/internal/copier"
)

const jsonIndent = 2

func writeJSON(w io.Writer, r *copier.Report, o *options) error {
	// colorjson only understands the generic types produced by encoding/json.
	raw, err := json.Marshal(newDocument(r))
	if err != nil {
		return err
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = jsonIndent
	formatter.DisabledColor = !o.colour

	b, err := formatter.Marshal(generic)
	if err != nil {
		return err
	}

	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}

func writeYAML(w io.Writer, r *copier.Report) error {
	b, err := yaml.Marshal(newDocument(r))
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}
