package groups

import "github.com/goliatone/go-binsize/pkg/symbol"

// SymbolSummary is the immutable per-symbol record carried inside group and
// specialization summaries. Sizes are normalized: non-finite input becomes 0.
type SymbolSummary struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Mangled         string           `json:"mangled,omitempty"`
	SizeBytes       int64            `json:"sizeBytes"`
	Specialization  *string          `json:"specialization,omitempty"`
	Section         string           `json:"section,omitempty"`
	Block           string           `json:"block,omitempty"`
	Window          string           `json:"window,omitempty"`
	Address         *uint64          `json:"address,omitempty"`
	PrimaryLocation *symbol.Location `json:"primaryLocation,omitempty"`
}

// Totals are the shared aggregates computed for groups and specializations.
// UniqueSizeBytes never exceeds SizeBytes.
type Totals struct {
	SymbolCount     int   `json:"symbolCount"`
	SizeBytes       int64 `json:"sizeBytes"`
	UniqueSizeBytes int64 `json:"uniqueSizeBytes"`
}

// SpecializationSummary holds one argument-list bucket within a template
// group. Key is nil for non-template symbols and empty argument lists.
type SpecializationSummary struct {
	Key     *string         `json:"key,omitempty"`
	Symbols []SymbolSummary `json:"symbols"`
	Totals  Totals          `json:"totals"`
}

// GroupTotals extends the shared aggregates with group-only figures.
type GroupTotals struct {
	Totals
	SpecializationCount int   `json:"specializationCount"`
	LargestSymbolBytes  int64 `json:"largestSymbolBytes"`
	SmallestSymbolBytes int64 `json:"smallestSymbolBytes"`
}

// GroupSummary is the finalized rollup for one template family (or one
// non-template name). Specializations appear in first-encountered order.
type GroupSummary struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	IsTemplate      bool                    `json:"isTemplate"`
	Symbols         []SymbolSummary         `json:"symbols"`
	Specializations []SpecializationSummary `json:"specializations"`
	Totals          GroupTotals             `json:"totals"`
}
