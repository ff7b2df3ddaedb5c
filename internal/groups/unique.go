package groups

import "fmt"

// Sentinel tokens substituted into location keys when a symbol lacks section
// or address metadata. Symbols missing both collapse to one key; the dedup is
// a best-effort correction for linker aliasing, not an identity check.
const (
	unknownSection = "unknown-section"
	unknownAddress = "unknown-address"
)

// LocationKey derives the (section, address) identity used to detect symbols
// that alias the same memory.
func LocationKey(section string, address *uint64) string {
	if section == "" {
		section = unknownSection
	}
	addr := unknownAddress
	if address != nil {
		addr = fmt.Sprintf("0x%x", *address)
	}
	return section + ":" + addr
}

// UniqueSizeTracker accumulates the deduplicated size of a symbol set. Aliased
// symbols at one location may be reported with slightly different sizes, so
// the tracker keeps the maximum per distinct location key: never undercounting
// real footprint, never double-counting one memory location.
type UniqueSizeTracker struct {
	max map[string]int64
}

// NewUniqueSizeTracker returns an empty per-build tracker.
func NewUniqueSizeTracker() *UniqueSizeTracker {
	return &UniqueSizeTracker{max: make(map[string]int64)}
}

// Add records a size observation for a location key, keeping the largest size
// seen for that key.
func (t *UniqueSizeTracker) Add(locationKey string, size int64) {
	if current, ok := t.max[locationKey]; !ok || size > current {
		t.max[locationKey] = size
	}
}

// Total sums the stored maxima across all distinct location keys.
func (t *UniqueSizeTracker) Total() int64 {
	var total int64
	for _, size := range t.max {
		total += size
	}
	return total
}
