// Package text renders reports as plain terminal-friendly tables.
package text

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/goliatone/go-binsize/pkg/report"
)

const defaultTitle = "Binary size report"

// Renderer writes an aligned plain-text summary.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, rep report.Report, options report.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("text renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", title)
	fmt.Fprintf(&buf, "symbols: %d  groups: %d  template families: %d  specializations: %d\n",
		rep.Totals.SymbolCount, rep.Totals.GroupCount,
		rep.Totals.TemplateGroupCount, rep.Totals.SpecializationCount)
	fmt.Fprintf(&buf, "total size: %s  unique size: %s\n\n",
		report.FormatBytes(rep.Totals.SizeBytes), report.FormatBytes(rep.Totals.UniqueSizeBytes))

	if len(rep.Categories) > 0 {
		w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tSYMBOLS\tSIZE\tUNIQUE")
		for _, cat := range rep.Categories {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				cat.Category, cat.SymbolCount,
				report.FormatBytes(cat.SizeBytes), report.FormatBytes(cat.UniqueSizeBytes))
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("text renderer: flush categories: %w", err)
		}
		buf.WriteByte('\n')
	}

	ordered := report.SortedGroups(rep, options)
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tSYMBOLS\tSPECS\tSIZE\tUNIQUE")
	for _, group := range ordered {
		specs := "-"
		if group.IsTemplate {
			specs = fmt.Sprintf("%d", group.Totals.SpecializationCount)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			group.Name, group.Totals.SymbolCount, specs,
			report.FormatBytes(group.Totals.SizeBytes),
			report.FormatBytes(group.Totals.UniqueSizeBytes))
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("text renderer: flush groups: %w", err)
	}

	return buf.Bytes(), nil
}
