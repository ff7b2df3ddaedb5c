package symbol

import "context"

// Parser turns a raw dump Document into the ordered symbol collection the
// grouping pipeline consumes.
type Parser interface {
	Symbols(ctx context.Context, doc Document) ([]Symbol, error)
}

// Format names a dump payload syntax.
type Format string

const (
	// FormatAuto sniffs the payload: YAML symbol lists are detected by their
	// top-level `symbols` key, everything else parses as nm output.
	FormatAuto Format = "auto"

	// FormatNM parses POSIX `nm -P` style lines.
	FormatNM Format = "nm"

	// FormatYAML parses a YAML symbol-list document, used for pre-captured
	// dumps and fixtures.
	FormatYAML Format = "yaml"
)

// ParserOptions exposes the dump syntax knobs.
type ParserOptions struct {
	// Format pins the payload syntax. Defaults to FormatAuto.
	Format Format

	// Radix is the number base for nm address/size fields. Defaults to 16,
	// matching `nm -P` output on common toolchains.
	Radix int
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithFormat pins the dump payload format.
func WithFormat(format Format) ParserOption {
	return func(opts *ParserOptions) {
		opts.Format = format
	}
}

// WithRadix overrides the number base used for nm address/size fields, for
// toolchains invoked with an explicit radix flag (`nm -t d`).
func WithRadix(radix int) ParserOption {
	return func(opts *ParserOptions) {
		opts.Radix = radix
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Format: FormatAuto,
		Radix:  16,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level binsize package to avoid import cycles.
