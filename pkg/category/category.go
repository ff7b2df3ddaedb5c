// Package category assigns symbols to the fixed memory-category labels used
// by report summaries and computes per-category totals.
package category

import (
	"sort"
	"strings"

	"github.com/goliatone/go-binsize/pkg/groups"
)

// Category is one of the fixed memory-category labels.
type Category string

const (
	CategoryCode     Category = "code"
	CategoryData     Category = "data"
	CategoryReadOnly Category = "read-only data"
	CategoryZeroFill Category = "zero-fill"
	CategoryDebug    Category = "debug"
	CategoryOther    Category = "other"
)

// labelOrder fixes the presentation order of category totals.
var labelOrder = []Category{
	CategoryCode,
	CategoryData,
	CategoryReadOnly,
	CategoryZeroFill,
	CategoryDebug,
	CategoryOther,
}

// defaultPrefixes maps section-name prefixes onto categories. Longest prefix
// wins so ".data.rel.ro" style sections can be overridden precisely.
var defaultPrefixes = map[string]Category{
	".text":   CategoryCode,
	".data":   CategoryData,
	".rodata": CategoryReadOnly,
	".bss":    CategoryZeroFill,
	".debug":  CategoryDebug,
}

// Categorizer resolves section identifiers to categories. The zero value is
// not usable; construct with NewCategorizer.
type Categorizer struct {
	prefixes map[string]Category
}

// NewCategorizer builds a Categorizer from the default section prefixes merged
// with the supplied overrides (override prefixes shadow defaults).
func NewCategorizer(overrides map[string]Category) *Categorizer {
	prefixes := make(map[string]Category, len(defaultPrefixes)+len(overrides))
	for prefix, cat := range defaultPrefixes {
		prefixes[prefix] = cat
	}
	for prefix, cat := range overrides {
		if prefix == "" {
			continue
		}
		prefixes[prefix] = cat
	}
	return &Categorizer{prefixes: prefixes}
}

// Categorize maps a section identifier to its category. Unknown and empty
// sections fall into CategoryOther.
func (c *Categorizer) Categorize(section string) Category {
	if section == "" {
		return CategoryOther
	}

	best := CategoryOther
	bestLen := -1
	for prefix, cat := range c.prefixes {
		if strings.HasPrefix(section, prefix) && len(prefix) > bestLen {
			best = cat
			bestLen = len(prefix)
		}
	}
	return best
}

// Total aggregates one category's share of the symbol population.
type Total struct {
	Category        Category `json:"category"`
	SymbolCount     int      `json:"symbolCount"`
	SizeBytes       int64    `json:"sizeBytes"`
	UniqueSizeBytes int64    `json:"uniqueSizeBytes"`
}

// Totals computes per-category aggregates across the member symbols of the
// supplied group summaries. Categories appear in the fixed label order;
// categories with no symbols are omitted.
func Totals(summaries []groups.GroupSummary, categorizer *Categorizer) []Total {
	if categorizer == nil {
		categorizer = NewCategorizer(nil)
	}

	counts := make(map[Category]*Total)
	trackers := make(map[Category]*groups.UniqueSizeTracker)

	for _, group := range summaries {
		for _, sym := range group.Symbols {
			cat := categorizer.Categorize(sym.Section)
			total, ok := counts[cat]
			if !ok {
				total = &Total{Category: cat}
				counts[cat] = total
				trackers[cat] = groups.NewUniqueSizeTracker()
			}
			total.SymbolCount++
			total.SizeBytes += sym.SizeBytes
			trackers[cat].Add(groups.LocationKey(sym.Section, sym.Address), sym.SizeBytes)
		}
	}

	ordered := make([]Total, 0, len(counts))
	for _, cat := range labelOrder {
		if total, ok := counts[cat]; ok {
			total.UniqueSizeBytes = trackers[cat].Total()
			ordered = append(ordered, *total)
		}
	}

	// Custom categories from overrides sort after the fixed labels.
	var extras []Total
	for cat, total := range counts {
		if !isFixedLabel(cat) {
			total.UniqueSizeBytes = trackers[cat].Total()
			extras = append(extras, *total)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Category < extras[j].Category })
	return append(ordered, extras...)
}

func isFixedLabel(cat Category) bool {
	for _, label := range labelOrder {
		if cat == label {
			return true
		}
	}
	return false
}
