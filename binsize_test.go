package binsize_test

import (
	"context"
	"strings"
	"testing"

	binsize "github.com/goliatone/go-binsize"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

const facadeDump = "Vec<int> T 100 10\nVec<long> T 200 20\nmain T 300 8\n"

func TestGenerateReportFromDocument(t *testing.T) {
	doc := symbol.MustNewDocument(symbol.SourceFromFile("dump.nm"), []byte(facadeDump))

	out, err := binsize.GenerateReportFromDocument(context.Background(), doc, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Vec") {
		t.Fatalf("group rollup missing:\n%s", out)
	}
}

func TestAnalyzeDocument(t *testing.T) {
	doc := symbol.MustNewDocument(symbol.SourceFromFile("dump.nm"), []byte(facadeDump))

	rep, err := binsize.AnalyzeDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.Totals.SymbolCount != 3 || rep.Totals.GroupCount != 2 {
		t.Fatalf("totals: %+v", rep.Totals)
	}
}

func TestNewLoaderAndParser(t *testing.T) {
	loader := binsize.NewLoader()
	if loader == nil {
		t.Fatal("nil loader")
	}
	parser := binsize.NewParser(symbol.WithRadix(10))
	doc := symbol.MustNewDocument(symbol.SourceFromFile("dump.nm"), []byte("main T 1024 64\n"))
	symbols, err := parser.Symbols(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(symbols) != 1 || *symbols[0].Address != 1024 {
		t.Fatalf("decimal radix not applied: %+v", symbols)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := binsize.EmbeddedTemplates()
	if _, err := fsys.Open("templates/report.tmpl"); err != nil {
		t.Fatalf("embedded template missing: %v", err)
	}
}
