package report_test

import (
	"testing"

	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

func sampleSummaries(t *testing.T) []groups.GroupSummary {
	t.Helper()
	return groups.NewBuilder().Build([]symbol.Symbol{
		{ID: "1", Name: "Vec<int>", Section: ".text", Address: symbol.Addr(0x100), Size: 16},
		{ID: "2", Name: "Vec<int>", Section: ".text", Address: symbol.Addr(0x100), Size: 16},
		{ID: "3", Name: "Vec<float>", Section: ".text", Address: symbol.Addr(0x200), Size: 24},
		{ID: "4", Name: "main", Section: ".text", Address: symbol.Addr(0x300), Size: 8},
		{ID: "5", Name: "table", Section: ".rodata", Address: symbol.Addr(0x400), Size: 64},
	})
}

func TestNewComputesGlobalTotals(t *testing.T) {
	rep := report.New(sampleSummaries(t))

	if rep.Totals.SymbolCount != 5 {
		t.Fatalf("symbol count: want 5, got %d", rep.Totals.SymbolCount)
	}
	if rep.Totals.GroupCount != 3 {
		t.Fatalf("group count: want 3, got %d", rep.Totals.GroupCount)
	}
	if rep.Totals.TemplateGroupCount != 1 {
		t.Fatalf("template group count: want 1, got %d", rep.Totals.TemplateGroupCount)
	}
	if rep.Totals.SizeBytes != 128 {
		t.Fatalf("plain size: want 128, got %d", rep.Totals.SizeBytes)
	}
	// The two Vec<int> aliases share a location, so unique drops one 16.
	if rep.Totals.UniqueSizeBytes != 112 {
		t.Fatalf("unique size: want 112, got %d", rep.Totals.UniqueSizeBytes)
	}
	if rep.Totals.UniqueSizeBytes > rep.Totals.SizeBytes {
		t.Fatalf("unique exceeds plain")
	}
}

func TestNewWithCategorizer(t *testing.T) {
	rep := report.New(sampleSummaries(t), report.WithCategorizer(category.NewCategorizer(nil)))
	if len(rep.Categories) != 2 {
		t.Fatalf("want 2 categories, got %d", len(rep.Categories))
	}
	if rep.Categories[0].Category != category.CategoryCode {
		t.Fatalf("category order: %+v", rep.Categories)
	}
}

func TestNewEmpty(t *testing.T) {
	rep := report.New(nil)
	if rep.Totals.SymbolCount != 0 || len(rep.Groups) != 0 {
		t.Fatalf("empty report: %+v", rep)
	}
}

func TestSortedGroups(t *testing.T) {
	rep := report.New(sampleSummaries(t))

	bySize := report.SortedGroups(rep, report.RenderOptions{SortBy: report.SortBySize})
	if bySize[0].ID != "Vec" {
		t.Fatalf("sort by size: first group %q", bySize[0].ID)
	}

	byName := report.SortedGroups(rep, report.RenderOptions{SortBy: report.SortByName})
	if byName[0].Name != "Vec" {
		t.Fatalf("sort by name: first group %q", byName[0].Name)
	}

	top := report.SortedGroups(rep, report.RenderOptions{SortBy: report.SortBySize, TopGroups: 1})
	if len(top) != 1 {
		t.Fatalf("top-n: want 1 group, got %d", len(top))
	}

	// Zero options preserve builder order without mutating the report.
	plain := report.SortedGroups(rep, report.RenderOptions{})
	if plain[0].ID != rep.Groups[0].ID {
		t.Fatalf("builder order not preserved")
	}
}

func TestRegistry(t *testing.T) {
	registry := report.NewRegistry()
	if registry.Has("text") {
		t.Fatalf("empty registry should have no renderers")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("nil renderer must be rejected")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("missing renderer must error")
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:       "0 B",
		512:     "512 B",
		1024:    "1.0 KiB",
		1536:    "1.5 KiB",
		1 << 20: "1.0 MiB",
	}
	for in, want := range cases {
		if got := report.FormatBytes(in); got != want {
			t.Fatalf("format %d: want %q, got %q", in, want, got)
		}
	}
}
