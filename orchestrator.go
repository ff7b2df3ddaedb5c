package binsize

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-binsize/pkg/orchestrator"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

// RenderOptions describes per-request presentation overrides such as the
// report title, sort order, and group cap.
type RenderOptions = report.RenderOptions

// Report is the presentation model handed to renderers.
type Report = report.Report

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want full pipeline control.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateReport loads the symbol dump, groups its symbols, and renders the
// report using the named renderer. It is the simplest entry point for callers
// that just want formatted output.
func GenerateReport(ctx context.Context, source symbol.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateReportFromDocument renders a report from a pre-loaded dump,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateReportFromDocument(ctx context.Context, doc symbol.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// AnalyzeDocument runs the pipeline up to report construction, for callers
// that want the structured model rather than rendered bytes.
func AnalyzeDocument(ctx context.Context, doc symbol.Document, options ...orchestrator.Option) (Report, error) {
	gen := orchestrator.New(options...)
	return gen.Analyze(ctx, orchestrator.Request{Document: &doc})
}

// WithTheme passes a resolved go-theme renderer configuration through to the
// orchestrator so HTML output picks up tokens and CSS variables.
func WithTheme(cfg *theme.RendererConfig) orchestrator.Option {
	return orchestrator.WithTheme(cfg)
}
