// Package groups exposes the template-grouping and size-aggregation engine:
// a pure, single-pass fold that classifies each symbol's display name with a
// heuristic template-signature parser, partitions symbols into template
// families and specializations, and finalizes immutable rollups. Size totals
// come in two flavours: a plain sum that double-counts linker aliases, and a
// deduplicated sum that counts each (section, address) location once using
// the maximum size observed there. Builders live in internal/groups but
// return the types defined here.
package groups
