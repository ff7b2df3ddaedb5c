package html_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/renderers/html"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

func sampleReport(t *testing.T) report.Report {
	t.Helper()
	summaries := groups.NewBuilder().Build([]symbol.Symbol{
		{ID: "1", Name: "Vec<int>", Section: ".text", Address: symbol.Addr(0x100), Size: 16},
		{ID: "2", Name: "Vec<Bar<Baz>>", Section: ".text", Address: symbol.Addr(0x200), Size: 24},
		{ID: "3", Name: "main", Section: ".text", Address: symbol.Addr(0x300), Size: 8},
	})
	return report.New(summaries)
}

func renderSample(t *testing.T, options report.RenderOptions) string {
	t.Helper()
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), sampleReport(t), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("name: %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("content type: %q", renderer.ContentType())
	}
}

func TestRenderEscapesSymbolNames(t *testing.T) {
	out := renderSample(t, report.RenderOptions{})

	if strings.Contains(out, "<Bar<Baz>>") {
		t.Fatalf("template arguments leaked unescaped markup")
	}
	if !strings.Contains(out, "Bar&lt;Baz&gt;") {
		t.Fatalf("expected escaped specialization key in output:\n%s", out)
	}
	if !strings.Contains(out, "Vec") {
		t.Fatalf("group name missing from output")
	}
}

func TestRenderUsesTitleAndHeader(t *testing.T) {
	out := renderSample(t, report.RenderOptions{
		Title:      "libfoo.so",
		HeaderHTML: `<p class="note">nightly build</p><script>alert(1)</script>`,
	})

	if !strings.Contains(out, "<title>libfoo.so</title>") {
		t.Fatalf("title not rendered")
	}
	if !strings.Contains(out, `<p class="note">nightly build</p>`) {
		t.Fatalf("sanitized header dropped")
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script element survived sanitization")
	}
}

func TestRenderInjectsThemeVariables(t *testing.T) {
	out := renderSample(t, report.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			CSSVars: map[string]string{"--binsize-bg": "#101010"},
		},
	})

	if !strings.Contains(out, "theme-acme") {
		t.Fatalf("theme class missing")
	}
	if !strings.Contains(out, "--binsize-bg: #101010;") {
		t.Fatalf("css vars missing:\n%s", out)
	}
}

func TestRenderHonorsTopGroups(t *testing.T) {
	out := renderSample(t, report.RenderOptions{SortBy: report.SortBySize, TopGroups: 1})

	if strings.Contains(out, "sym:main") || strings.Contains(out, ">main</td>") {
		t.Fatalf("top-n truncation ignored")
	}
}

func TestRenderRequiresContext(t *testing.T) {
	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	//lint:ignore SA1012 exercising the nil guard
	if _, err := renderer.Render(nil, sampleReport(t), report.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}
