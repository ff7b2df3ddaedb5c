package report

import (
	"sort"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-binsize/pkg/groups"
)

// SortKey names the orderings renderers offer for group listings.
type SortKey string

const (
	SortBySize       SortKey = "size"
	SortByUniqueSize SortKey = "unique"
	SortByCount      SortKey = "count"
	SortByName       SortKey = "name"
)

// RenderOptions carries per-request presentation instructions. Renderers treat
// the zero value as "full report, builder order".
type RenderOptions struct {
	// Title labels the rendered report. Empty falls back to the renderer's
	// default heading.
	Title string

	// TopGroups limits the listing to the first N groups after sorting.
	// Zero or negative means no limit.
	TopGroups int

	// SortBy orders the group listing. Empty preserves builder order.
	SortBy SortKey

	// HeaderHTML is an optional markup fragment the HTML renderer places
	// above the report body. It is sanitized before rendering.
	HeaderHTML string

	// Theme carries resolved go-theme tokens and CSS variables for renderers
	// that support theming.
	Theme *theme.RendererConfig
}

// SortedGroups returns the report's groups ordered and truncated per the
// options. The report itself is never mutated; callers receive a copy.
func SortedGroups(rep Report, options RenderOptions) []groups.GroupSummary {
	ordered := append([]groups.GroupSummary(nil), rep.Groups...)

	switch options.SortBy {
	case SortBySize:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Totals.SizeBytes > ordered[j].Totals.SizeBytes
		})
	case SortByUniqueSize:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Totals.UniqueSizeBytes > ordered[j].Totals.UniqueSizeBytes
		})
	case SortByCount:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Totals.SymbolCount > ordered[j].Totals.SymbolCount
		})
	case SortByName:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Name < ordered[j].Name
		})
	}

	if options.TopGroups > 0 && options.TopGroups < len(ordered) {
		ordered = ordered[:options.TopGroups]
	}
	return ordered
}
