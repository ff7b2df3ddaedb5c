package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/report"
	reporttemplate "github.com/goliatone/go-binsize/pkg/report/template"
	"github.com/goliatone/go-binsize/pkg/report/template/gotemplate"
)

const defaultTitle = "Binary size report"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer reporttemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer reporttemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits a self-contained HTML report.
type Renderer struct {
	templates reporttemplate.TemplateRenderer
}

// New constructs the html renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// view is the template payload; it round-trips through JSON inside the
// template adapter, so templates address fields by the wire names below.
type view struct {
	Title  string                `json:"title"`
	Header string                `json:"header,omitempty"`
	Report report.Report         `json:"report"`
	Groups []groups.GroupSummary `json:"groups"`
	Theme  themeView             `json:"theme"`
}

type themeView struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
}

func (r *Renderer) Render(ctx context.Context, rep report.Report, options report.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	payload := view{
		Title:  title,
		Header: sanitizeHeaderMarkup(options.HeaderHTML),
		Report: rep,
		Groups: report.SortedGroups(rep, options),
		Theme:  buildThemeView(options.Theme),
	}

	result, err := r.templates.RenderTemplate("templates/report.tmpl", payload)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	tv := themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
	}
	tv.CSSVarsStyle = cssVarsStyle(cfg.CSSVars)
	return tv
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
