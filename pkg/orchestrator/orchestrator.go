package orchestrator

import (
	"context"
	"errors"
	"fmt"

	dumploader "github.com/goliatone/go-binsize/internal/dump/loader"
	dumpparser "github.com/goliatone/go-binsize/internal/dump/parser"
	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/renderers/jsonexport"
	"github.com/goliatone/go-binsize/pkg/renderers/text"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
	theme "github.com/goliatone/go-theme"
)

const defaultRendererName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom symbol dump loader.
func WithLoader(loader symbol.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom symbol dump parser.
func WithParser(parser symbol.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithGroupBuilder injects a custom group builder.
func WithGroupBuilder(builder groups.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *report.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithCategorizer sets the section categorizer used for the report's
// per-category totals.
func WithCategorizer(categorizer *category.Categorizer) Option {
	return func(o *Orchestrator) {
		o.categorizer = categorizer
	}
}

// WithTheme supplies a resolved theme configuration that renderers receive
// when a request does not carry its own.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.theme = cfg
	}
}

// Orchestrator coordinates the full pipeline from symbol dump to rendered
// report. It applies sensible defaults (text renderer, nm-style parsing)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          symbol.Loader
	parser          symbol.Parser
	builder         groups.Builder
	registry        *report.Registry
	categorizer     *category.Categorizer
	theme           *theme.RendererConfig
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a report from a symbol
// dump.
type Request struct {
	// Source identifies where the symbol dump comes from. Optional when
	// Document is supplied.
	Source symbol.Source

	// Document allows callers to bypass the loader when they already have a
	// raw dump payload.
	Document *symbol.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as the report
	// title, sort order, or group cap. When omitted, renderers receive the
	// zero-value struct.
	RenderOptions report.RenderOptions
}

// Generate executes the loader, parser, group builder, and renderer sequence
// and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	rep, err := o.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		opts.Theme = o.theme
	}

	output, err := renderer.Render(ctx, rep, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Analyze runs the pipeline up to (and including) report construction,
// leaving rendering to the caller.
func (o *Orchestrator) Analyze(ctx context.Context, req Request) (report.Report, error) {
	if ctx == nil {
		return report.Report{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return report.Report{}, err
	}
	if err := o.initialiseErr; err != nil {
		return report.Report{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return report.Report{}, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return report.Report{}, err
	}

	symbols, err := o.parser.Symbols(ctx, doc)
	if err != nil {
		return report.Report{}, fmt.Errorf("orchestrator: parse symbols: %w", err)
	}

	summaries := o.builder.Build(symbols)

	return report.New(summaries, report.WithCategorizer(o.categorizer)), nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (symbol.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return symbol.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return symbol.Document{}, fmt.Errorf("orchestrator: load dump: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (report.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = dumploader.New(symbol.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = dumpparser.New(symbol.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = groups.NewBuilder()
	}
	if o.categorizer == nil {
		o.categorizer = category.NewCategorizer(nil)
	}
	if o.registry == nil {
		o.registry = report.NewRegistry()
		o.registry.MustRegister(text.New())
		o.registry.MustRegister(jsonexport.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
