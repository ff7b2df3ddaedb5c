package groups

import internalgroups "github.com/goliatone/go-binsize/internal/groups"

// Re-exports of the internal grouping types so consumers never import
// internal packages directly.

type Signature = internalgroups.Signature
type SymbolSummary = internalgroups.SymbolSummary
type Totals = internalgroups.Totals
type SpecializationSummary = internalgroups.SpecializationSummary
type GroupTotals = internalgroups.GroupTotals
type GroupSummary = internalgroups.GroupSummary
type UniqueSizeTracker = internalgroups.UniqueSizeTracker

// ParseSignature classifies a display name as a template instantiation,
// returning its base name and trimmed argument-list text.
func ParseSignature(name string) (Signature, bool) {
	return internalgroups.ParseSignature(name)
}

// LocationKey derives the (section, address) identity used for size
// deduplication, substituting sentinels for missing metadata.
func LocationKey(section string, address *uint64) string {
	return internalgroups.LocationKey(section, address)
}

// NewUniqueSizeTracker returns an empty tracker that keeps the maximum size
// per distinct location key.
func NewUniqueSizeTracker() *UniqueSizeTracker {
	return internalgroups.NewUniqueSizeTracker()
}
