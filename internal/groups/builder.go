package groups

import (
	"math"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// nonTemplatePrefix keeps group ids for distinct non-template names from ever
// colliding with a template family called the same thing.
const nonTemplatePrefix = "sym:"

// Builder folds an ordered symbol collection into finalized group summaries.
// Each Build call owns its accumulators, so one Builder may serve concurrent
// callers.
type Builder struct{}

// NewBuilder constructs a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build runs a single left-to-right pass over the input: classify each symbol
// with ParseSignature, route it into its group and specialization
// accumulators, then finalize everything into immutable summaries. Group and
// specialization order is order of first occurrence. Duplicate symbol ids are
// accepted; only sizes are deduplicated, and only by location.
func (b *Builder) Build(symbols []symbol.Symbol) []GroupSummary {
	accs := make(map[string]*groupAccumulator)
	var order []string

	for _, sym := range symbols {
		sig, isTemplate := ParseSignature(sym.Name)

		id := nonTemplatePrefix + sym.Name
		name := sym.Name
		if isTemplate {
			id = sig.GroupName
			name = sig.GroupName
		}

		acc, ok := accs[id]
		if !ok {
			acc = newGroupAccumulator(id, name, isTemplate)
			accs[id] = acc
			order = append(order, id)
		}

		acc.add(summarize(sym, sig.SpecializationKey))
	}

	summaries := make([]GroupSummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, accs[id].finalize())
	}
	return summaries
}

func summarize(sym symbol.Symbol, specialization *string) SymbolSummary {
	return SymbolSummary{
		ID:              sym.ID,
		Name:            sym.Name,
		Mangled:         sym.Mangled,
		SizeBytes:       normalizeSize(sym.Size),
		Specialization:  specialization,
		Section:         sym.Section,
		Block:           sym.Block,
		Window:          sym.Window,
		Address:         sym.Address,
		PrimaryLocation: sym.PrimaryLocation,
	}
}

// normalizeSize maps non-finite, negative, and int64-overflowing sizes to
// zero. Tool output can carry 0xffffffffffffffff placeholder sizes; above
// the int64 range the float conversion is implementation-dependent, so such
// values are treated as absent rather than clamped.
func normalizeSize(size float64) int64 {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		return 0
	}
	if size >= math.MaxInt64 {
		return 0
	}
	return int64(size)
}

type groupAccumulator struct {
	id         string
	name       string
	isTemplate bool

	symbols []SymbolSummary
	unique  *UniqueSizeTracker

	specs     map[string]*specAccumulator
	specOrder []string

	largest  int64
	smallest int64
}

func newGroupAccumulator(id, name string, isTemplate bool) *groupAccumulator {
	return &groupAccumulator{
		id:         id,
		name:       name,
		isTemplate: isTemplate,
		unique:     NewUniqueSizeTracker(),
		specs:      make(map[string]*specAccumulator),
		smallest:   math.MaxInt64,
	}
}

func (g *groupAccumulator) add(sum SymbolSummary) {
	g.symbols = append(g.symbols, sum)

	key := LocationKey(sum.Section, sum.Address)
	g.unique.Add(key, sum.SizeBytes)

	if sum.SizeBytes > g.largest {
		g.largest = sum.SizeBytes
	}
	if sum.SizeBytes < g.smallest {
		g.smallest = sum.SizeBytes
	}

	// Empty-string map key stands for "no specialization"; trimmed-empty
	// argument lists already normalized to a nil key during parsing.
	specKey := ""
	if sum.Specialization != nil {
		specKey = *sum.Specialization
	}
	spec, ok := g.specs[specKey]
	if !ok {
		spec = &specAccumulator{key: sum.Specialization, unique: NewUniqueSizeTracker()}
		g.specs[specKey] = spec
		g.specOrder = append(g.specOrder, specKey)
	}
	spec.symbols = append(spec.symbols, sum)
	spec.unique.Add(key, sum.SizeBytes)
}

func (g *groupAccumulator) finalize() GroupSummary {
	specs := make([]SpecializationSummary, 0, len(g.specOrder))
	for _, key := range g.specOrder {
		specs = append(specs, g.specs[key].finalize())
	}

	smallest := g.smallest
	if len(g.symbols) == 0 {
		smallest = 0
	}

	return GroupSummary{
		ID:              g.id,
		Name:            g.name,
		IsTemplate:      g.isTemplate,
		Symbols:         g.symbols,
		Specializations: specs,
		Totals: GroupTotals{
			Totals:              totalsFor(g.symbols, g.unique),
			SpecializationCount: len(specs),
			LargestSymbolBytes:  g.largest,
			SmallestSymbolBytes: smallest,
		},
	}
}

type specAccumulator struct {
	key     *string
	symbols []SymbolSummary
	unique  *UniqueSizeTracker
}

func (s *specAccumulator) finalize() SpecializationSummary {
	return SpecializationSummary{
		Key:     s.key,
		Symbols: s.symbols,
		Totals:  totalsFor(s.symbols, s.unique),
	}
}

func totalsFor(symbols []SymbolSummary, unique *UniqueSizeTracker) Totals {
	var plain int64
	for _, sum := range symbols {
		plain += sum.SizeBytes
	}
	return Totals{
		SymbolCount:     len(symbols),
		SizeBytes:       plain,
		UniqueSizeBytes: unique.Total(),
	}
}
