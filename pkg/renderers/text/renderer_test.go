package text_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/renderers/text"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

func sampleReport(t *testing.T) report.Report {
	t.Helper()
	summaries := groups.NewBuilder().Build([]symbol.Symbol{
		{ID: "1", Name: "Vec<int>", Section: ".text", Address: symbol.Addr(0x100), Size: 2048},
		{ID: "2", Name: "main", Section: ".text", Address: symbol.Addr(0x300), Size: 64},
	})
	return report.New(summaries, report.WithCategorizer(category.NewCategorizer(nil)))
}

func TestRenderPlainTable(t *testing.T) {
	out, err := text.New().Render(context.Background(), sampleReport(t), report.RenderOptions{Title: "app"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	rendered := string(out)
	if !strings.HasPrefix(rendered, "app\n") {
		t.Fatalf("title missing:\n%s", rendered)
	}
	for _, want := range []string{"GROUP", "Vec", "main", "2.0 KiB", "CATEGORY", "code"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("output missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	rep := sampleReport(t)
	first, err := text.New().Render(context.Background(), rep, report.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := text.New().Render(context.Background(), rep, report.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("renders differ")
	}
}

func TestRenderTopGroups(t *testing.T) {
	out, err := text.New().Render(context.Background(), sampleReport(t), report.RenderOptions{
		SortBy:    report.SortBySize,
		TopGroups: 1,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "main") {
		t.Fatalf("top-n truncation ignored:\n%s", out)
	}
}
