// Package report shapes finalized group summaries into the presentation model
// consumed by renderers, and hosts the renderer registry.
package report

import (
	"fmt"

	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/groups"
)

// Totals aggregates the whole symbol population.
type Totals struct {
	SymbolCount         int   `json:"symbolCount"`
	GroupCount          int   `json:"groupCount"`
	TemplateGroupCount  int   `json:"templateGroupCount"`
	SpecializationCount int   `json:"specializationCount"`
	SizeBytes           int64 `json:"sizeBytes"`
	UniqueSizeBytes     int64 `json:"uniqueSizeBytes"`
}

// Report is the immutable presentation model: the group rollup in builder
// order plus global and per-category totals.
type Report struct {
	Groups     []groups.GroupSummary `json:"groups"`
	Totals     Totals                `json:"totals"`
	Categories []category.Total      `json:"categories,omitempty"`
}

// Option customises report composition.
type Option func(*composer)

type composer struct {
	categorizer *category.Categorizer
}

// WithCategorizer attaches a memory-category breakdown computed with the
// supplied categorizer.
func WithCategorizer(categorizer *category.Categorizer) Option {
	return func(c *composer) {
		c.categorizer = categorizer
	}
}

// New composes a Report from finalized group summaries. Builder output order
// is preserved; sorting is a renderer concern.
func New(summaries []groups.GroupSummary, options ...Option) Report {
	cfg := composer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	totals := Totals{GroupCount: len(summaries)}
	unique := groups.NewUniqueSizeTracker()
	for _, group := range summaries {
		totals.SymbolCount += group.Totals.SymbolCount
		totals.SizeBytes += group.Totals.SizeBytes
		totals.SpecializationCount += group.Totals.SpecializationCount
		if group.IsTemplate {
			totals.TemplateGroupCount++
		}
		for _, sym := range group.Symbols {
			unique.Add(groups.LocationKey(sym.Section, sym.Address), sym.SizeBytes)
		}
	}
	totals.UniqueSizeBytes = unique.Total()

	rep := Report{Groups: summaries, Totals: totals}
	if cfg.categorizer != nil {
		rep.Categories = category.Totals(summaries, cfg.categorizer)
	}
	return rep
}

// FormatBytes renders a byte count with a binary-unit suffix, keeping small
// counts exact.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
