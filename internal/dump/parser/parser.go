package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// Parser implements symbol.Parser for nm-style dumps and YAML symbol lists.
type Parser struct {
	options symbol.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ symbol.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options symbol.ParserOptions) symbol.Parser {
	if options.Format == "" {
		options.Format = symbol.FormatAuto
	}
	if options.Radix == 0 {
		options.Radix = 16
	}
	return &Parser{options: options}
}

// Symbols converts a dump Document into the ordered symbol collection.
func (p *Parser) Symbols(ctx context.Context, doc symbol.Document) ([]symbol.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("dump parser: document payload is empty")
	}

	format := p.options.Format
	if format == symbol.FormatAuto {
		format = detectFormat(raw)
	}

	switch format {
	case symbol.FormatNM:
		return parseNM(raw, p.options.Radix)
	case symbol.FormatYAML:
		return parseYAML(raw)
	default:
		return nil, fmt.Errorf("dump parser: unsupported format %q", format)
	}
}

// detectFormat sniffs the payload. YAML symbol lists open with a top-level
// `symbols` key (possibly after comments); everything else parses as nm text.
func detectFormat(raw []byte) symbol.Format {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "symbols:") {
			return symbol.FormatYAML
		}
		return symbol.FormatNM
	}
	return symbol.FormatNM
}
