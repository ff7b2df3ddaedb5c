package groups_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/symbol"
	"github.com/goliatone/go-binsize/pkg/testsupport"
)

func TestBuildFromYAMLFixture(t *testing.T) {
	symbols := testsupport.MustLoadSymbols(t, filepath.Join("testdata", "symbols.yaml"))
	if len(symbols) != 3 {
		t.Fatalf("fixture symbols: want 3, got %d", len(symbols))
	}

	summaries := groups.NewBuilder().Build(symbols)
	if len(summaries) != 2 {
		t.Fatalf("want 2 groups, got %d", len(summaries))
	}

	vec := summaries[0]
	if vec.ID != "Vec" || !vec.IsTemplate {
		t.Fatalf("unexpected first group: %+v", vec)
	}
	if vec.Totals.SymbolCount != 2 || vec.Totals.SizeBytes != 40 || vec.Totals.UniqueSizeBytes != 40 {
		t.Fatalf("vec totals: %+v", vec.Totals)
	}
	if vec.Totals.SpecializationCount != 2 {
		t.Fatalf("specialization count: %d", vec.Totals.SpecializationCount)
	}
	if key := vec.Specializations[0].Key; key == nil || *key != "int" {
		t.Fatalf("first specialization key: %v", key)
	}
	if vec.Symbols[0].Mangled != "_ZN3VecIiE4pushEi" {
		t.Fatalf("mangled name lost: %+v", vec.Symbols[0])
	}

	main := summaries[1]
	if main.ID != "sym:main" || main.IsTemplate {
		t.Fatalf("unexpected second group: %+v", main)
	}
}

func TestForwardedHelpers(t *testing.T) {
	sig, ok := groups.ParseSignature("Map<int, long>")
	if !ok || sig.GroupName != "Map" || sig.SpecializationKey == nil || *sig.SpecializationKey != "int, long" {
		t.Fatalf("parse signature: %+v %v", sig, ok)
	}

	key := groups.LocationKey(".text", symbol.Addr(0x100))
	if key != ".text:0x100" {
		t.Fatalf("location key: %q", key)
	}

	tracker := groups.NewUniqueSizeTracker()
	tracker.Add(key, 16)
	tracker.Add(key, 12)
	if tracker.Total() != 16 {
		t.Fatalf("tracker total: %d", tracker.Total())
	}
}
