package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	dumploader "github.com/goliatone/go-binsize/internal/dump/loader"
	"github.com/goliatone/go-binsize/pkg/config"
	"github.com/goliatone/go-binsize/pkg/orchestrator"
	"github.com/goliatone/go-binsize/pkg/renderers/html"
	"github.com/goliatone/go-binsize/pkg/renderers/jsonexport"
	"github.com/goliatone/go-binsize/pkg/renderers/text"
	"github.com/goliatone/go-binsize/pkg/renderers/tui"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

func main() {
	source := flag.String("source", "", "symbol dump file (nm -P or YAML)")
	binary := flag.String("binary", "", "binary to dump with the symbol tool")
	tool := flag.String("tool", "nm", "symbol dump tool used with -binary")
	renderer := flag.String("renderer", "", "renderer to use (text, json, html, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "YAML config file")
	top := flag.Int("top", 0, "limit output to the N largest groups")
	sortBy := flag.String("sort", "size", "sort order: size, unique, count, name")
	title := flag.String("title", "", "report title")
	flag.Parse()

	ctx := context.Background()

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	src := resolveSource(*source, *binary, resolveTool(*tool, cfg.Tool, flagPassed("tool")))
	if src == nil {
		log.Fatalf("either -source or -binary is required")
	}

	registry := report.NewRegistry()
	registry.MustRegister(text.New())
	registry.MustRegister(jsonexport.New())
	htmlRenderer, err := html.New()
	if err != nil {
		log.Fatalf("Failed to initialise html renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)
	tuiRenderer, err := tui.New()
	if err != nil {
		log.Fatalf("Failed to initialise tui renderer: %v", err)
	}
	registry.MustRegister(tuiRenderer)

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithLoader(loaderFor(cfg)),
		orchestrator.WithCategorizer(cfg.Categorizer()),
	}
	if cfg.DefaultRenderer != "" {
		options = append(options, orchestrator.WithDefaultRenderer(cfg.DefaultRenderer))
	}

	gen := orchestrator.New(options...)

	req := orchestrator.Request{
		Source:   src,
		Renderer: *renderer,
		RenderOptions: report.RenderOptions{
			Title:     *title,
			TopGroups: *top,
			SortBy:    report.SortKey(*sortBy),
		},
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func resolveSource(source, binary, tool string) symbol.Source {
	if path := strings.TrimSpace(source); path != "" {
		return symbol.SourceFromFile(path)
	}
	if bin := strings.TrimSpace(binary); bin != "" {
		return symbol.SourceFromTool(tool, bin)
	}
	return nil
}

// resolveTool keeps an explicitly passed -tool flag authoritative; the config
// file's tool only fills in when the flag was left at its default.
func resolveTool(flagValue, configValue string, flagSet bool) string {
	if flagSet || configValue == "" {
		return flagValue
	}
	return configValue
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func loaderFor(cfg config.Config) symbol.Loader {
	return dumploader.New(cfg.LoaderOptions())
}
