package binsize

import (
	dumploader "github.com/goliatone/go-binsize/internal/dump/loader"
	dumpparser "github.com/goliatone/go-binsize/internal/dump/parser"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...symbol.LoaderOption) symbol.Loader {
	cfg := symbol.NewLoaderOptions(options...)
	return dumploader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...symbol.ParserOption) symbol.Parser {
	cfg := symbol.NewParserOptions(options...)
	return dumpparser.New(cfg)
}
