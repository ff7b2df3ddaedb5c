package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-binsize/pkg/orchestrator"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

const nmDump = `
Vec<int> T 100 10
Vec<int> T 200 10
Vec<long> T 300 20
main T 400 8
`

func dumpDocument(t *testing.T, payload string) *symbol.Document {
	t.Helper()
	doc, err := symbol.NewDocument(symbol.SourceFromFile("test.nm"), []byte(payload))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return &doc
}

type capturingRenderer struct {
	name    string
	report  report.Report
	options report.RenderOptions
	output  []byte
	err     error
}

func (r *capturingRenderer) Name() string        { return r.name }
func (r *capturingRenderer) ContentType() string { return "text/plain" }

func (r *capturingRenderer) Render(_ context.Context, rep report.Report, options report.RenderOptions) ([]byte, error) {
	r.report = rep
	r.options = options
	if r.err != nil {
		return nil, r.err
	}
	return r.output, nil
}

func TestGenerateWithDefaults(t *testing.T) {
	o := orchestrator.New()

	out, err := o.Generate(context.Background(), orchestrator.Request{
		Document:      dumpDocument(t, nmDump),
		RenderOptions: report.RenderOptions{Title: "firmware"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rendered := string(out)
	if !strings.Contains(rendered, "firmware") {
		t.Fatalf("title missing:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Vec") {
		t.Fatalf("group rollup missing:\n%s", rendered)
	}
}

func TestAnalyzeBuildsReport(t *testing.T) {
	o := orchestrator.New()

	rep, err := o.Analyze(context.Background(), orchestrator.Request{Document: dumpDocument(t, nmDump)})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if rep.Totals.SymbolCount != 4 {
		t.Fatalf("symbol count = %d, want 4", rep.Totals.SymbolCount)
	}
	if rep.Totals.GroupCount != 2 {
		t.Fatalf("group count = %d, want 2", rep.Totals.GroupCount)
	}
	if rep.Totals.TemplateGroupCount != 1 {
		t.Fatalf("template group count = %d, want 1", rep.Totals.TemplateGroupCount)
	}
	// Size in hex: 0x10+0x10+0x20+0x8 = 72 bytes.
	if rep.Totals.SizeBytes != 72 {
		t.Fatalf("size = %d, want 72", rep.Totals.SizeBytes)
	}
	if len(rep.Categories) == 0 {
		t.Fatalf("expected category breakdown with default categorizer")
	}
}

func TestGenerateSelectsNamedRenderer(t *testing.T) {
	renderer := &capturingRenderer{name: "capture", output: []byte("ok")}
	registry := report.NewRegistry()
	registry.MustRegister(renderer)

	o := orchestrator.New(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("capture"))

	out, err := o.Generate(context.Background(), orchestrator.Request{Document: dumpDocument(t, nmDump)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "ok" {
		t.Fatalf("output = %q", out)
	}
	if renderer.report.Totals.SymbolCount != 4 {
		t.Fatalf("renderer saw %d symbols", renderer.report.Totals.SymbolCount)
	}
}

func TestGenerateUnknownRendererFails(t *testing.T) {
	o := orchestrator.New()

	_, err := o.Generate(context.Background(), orchestrator.Request{
		Document: dumpDocument(t, nmDump),
		Renderer: "missing",
	})
	if err == nil || !strings.Contains(err.Error(), `renderer "missing"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateRequiresSourceOrDocument(t *testing.T) {
	o := orchestrator.New()

	_, err := o.Generate(context.Background(), orchestrator.Request{})
	if err == nil || !strings.Contains(err.Error(), "source or document") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestGenerateAppliesConfiguredTheme(t *testing.T) {
	renderer := &capturingRenderer{name: "capture", output: []byte("ok")}
	registry := report.NewRegistry()
	registry.MustRegister(renderer)
	cfg := &theme.RendererConfig{Theme: "acme"}

	o := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithTheme(cfg),
	)

	if _, err := o.Generate(context.Background(), orchestrator.Request{Document: dumpDocument(t, nmDump)}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != cfg {
		t.Fatalf("theme not forwarded to renderer")
	}
}

func TestGenerateRequestThemeWins(t *testing.T) {
	renderer := &capturingRenderer{name: "capture", output: []byte("ok")}
	registry := report.NewRegistry()
	registry.MustRegister(renderer)
	configured := &theme.RendererConfig{Theme: "default"}
	requested := &theme.RendererConfig{Theme: "override"}

	o := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithTheme(configured),
	)

	_, err := o.Generate(context.Background(), orchestrator.Request{
		Document:      dumpDocument(t, nmDump),
		RenderOptions: report.RenderOptions{Theme: requested},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != requested {
		t.Fatalf("request theme should win over configured theme")
	}
}

func TestGenerateRendererErrorIsWrapped(t *testing.T) {
	rendererErr := errors.New("boom")
	renderer := &capturingRenderer{name: "capture", err: rendererErr}
	registry := report.NewRegistry()
	registry.MustRegister(renderer)

	o := orchestrator.New(orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer("capture"))

	_, err := o.Generate(context.Background(), orchestrator.Request{Document: dumpDocument(t, nmDump)})
	if !errors.Is(err, rendererErr) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestGenerateNilContext(t *testing.T) {
	o := orchestrator.New()
	var ctx context.Context
	if _, err := o.Generate(ctx, orchestrator.Request{Document: dumpDocument(t, nmDump)}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}
