// Package tui drives an interactive report browser over survey prompts. The
// rendered bytes are the transcript of every group detail the user inspected.
package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/report"
)

// Renderer implements report.Renderer for terminal-driven sessions.
type Renderer struct {
	driver   PromptDriver
	pageSize int
}

// New constructs a TUI renderer with the survey-backed driver by default.
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:   driver,
		pageSize: 15,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render shows the report overview, then loops: pick a group, print its
// specialization breakdown, ask whether to continue. The returned bytes hold
// the transcript of everything inspected.
func (r *Renderer) Render(ctx context.Context, rep report.Report, options report.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	overview := fmt.Sprintf("%d symbols, %d groups, total %s, unique %s",
		rep.Totals.SymbolCount, rep.Totals.GroupCount,
		report.FormatBytes(rep.Totals.SizeBytes), report.FormatBytes(rep.Totals.UniqueSizeBytes))
	if err := r.driver.Info(ctx, overview); err != nil {
		return nil, err
	}

	ordered := report.SortedGroups(rep, options)
	if len(ordered) == 0 {
		if err := r.driver.Info(ctx, "no symbol groups to inspect"); err != nil {
			return nil, err
		}
		return []byte(overview + "\n"), nil
	}

	labels := make([]string, len(ordered))
	for i, group := range ordered {
		labels[i] = fmt.Sprintf("%s (%d symbols, %s)",
			group.Name, group.Totals.SymbolCount, report.FormatBytes(group.Totals.SizeBytes))
	}

	var transcript bytes.Buffer
	transcript.WriteString(overview)
	transcript.WriteByte('\n')

	for {
		index, err := r.driver.Select(ctx, SelectConfig{
			Message:  "Inspect a group",
			Options:  labels,
			PageSize: r.pageSize,
		})
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(ordered) {
			return nil, fmt.Errorf("tui: selection %d out of range", index)
		}

		detail, err := groupDetail(ordered[index])
		if err != nil {
			return nil, err
		}
		if err := r.driver.Info(ctx, detail); err != nil {
			return nil, err
		}
		transcript.WriteByte('\n')
		transcript.WriteString(detail)
		transcript.WriteByte('\n')

		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Inspect another group?"})
		if err != nil {
			return nil, err
		}
		if !again {
			return transcript.Bytes(), nil
		}
	}
}

func groupDetail(group groups.GroupSummary) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %d symbols, %s total, %s unique\n",
		group.Name, group.Totals.SymbolCount,
		report.FormatBytes(group.Totals.SizeBytes),
		report.FormatBytes(group.Totals.UniqueSizeBytes))

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIALIZATION\tSYMBOLS\tSIZE\tUNIQUE")
	for _, spec := range group.Specializations {
		key := "(none)"
		if spec.Key != nil {
			key = fmt.Sprintf("%s<%s>", group.Name, *spec.Key)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			key, spec.Totals.SymbolCount,
			report.FormatBytes(spec.Totals.SizeBytes),
			report.FormatBytes(spec.Totals.UniqueSizeBytes))
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("tui: format group detail: %w", err)
	}
	return buf.String(), nil
}
