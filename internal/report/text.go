// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/maker/internal/copier"
	"github.com/muesli/termenv"
)

type textStyles struct {
	Copied   lipgloss.Style
	UpToDate lipgloss.Style
	Failed   lipgloss.Style
	Error    lipgloss.Style
	Summary  lipgloss.Style
}

func newTextStyles(w io.Writer, colour bool) textStyles {
	r := lipgloss.NewRenderer(w)
	if colour {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return textStyles{
		Copied:   r.NewStyle().Foreground(lipgloss.Color("10")),
		UpToDate: r.NewStyle().Foreground(lipgloss.Color("8")),
		Failed:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Summary:  r.NewStyle().Bold(true),
	}
}

func writeText(w io.Writer, r *copier.Report, o *options) error {
	s := newTextStyles(w, o.colour)
	sb := strings.Builder{}

	for _, ev := range r.Events {
		var marker string

		switch ev.Outcome {
		case copier.OutcomeCopied:
			marker = s.Copied.Render("✓")
		case copier.OutcomeUpToDate:
			marker = s.UpToDate.Render("~")
		default:
			marker = s.Failed.Render("✗")
		}

		fmt.Fprintf(&sb, "%s %s -> %s\n", marker, ev.Source, ev.Destination)

		if ev.Err != nil {
			fmt.Fprintf(&sb, "  %s %s\n", s.Error.Render("➜ Error:"), ev.Err.Error())
		}
	}

	summary := fmt.Sprintf("%d copied, %d up to date, %d failed",
		r.Count(copier.OutcomeCopied),
		r.Count(copier.OutcomeUpToDate),
		r.Count(copier.OutcomeFailed),
	)
	sb.WriteString(s.Summary.Render(summary))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())

	return err
}
