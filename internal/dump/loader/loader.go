package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// defaultToolArgs requests POSIX output from nm-compatible dump tools.
var defaultToolArgs = []string{"-P"}

// Loader implements symbol.Loader by delegating to file, fs.FS, or dump tool
// strategies. Construction helpers live in the top-level binsize package.
type Loader struct {
	fs       fs.FS
	toolDir  string
	suffix   string
	toolArgs []string
	runner   symbol.ToolRunner
}

// Ensure the implementation satisfies the public interface.
var _ symbol.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options symbol.LoaderOptions) symbol.Loader {
	runner := options.Runner
	if runner == nil {
		runner = &execRunner{timeout: options.ToolTimeout}
	}

	args := options.ToolArgs
	if args == nil {
		args = defaultToolArgs
	}

	return &Loader{
		fs:       options.FileSystem,
		toolDir:  options.ToolchainDir,
		suffix:   options.ExecSuffix,
		toolArgs: args,
		runner:   runner,
	}
}

// Load fetches a dump from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src symbol.Source) (symbol.Document, error) {
	if src == nil {
		return symbol.Document{}, errors.New("dump loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case symbol.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case symbol.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case symbol.SourceKindTool:
		tool, ok := src.(symbol.ToolSource)
		if !ok {
			return symbol.Document{}, errors.New("dump loader: tool source missing tool metadata")
		}
		data, err = l.loadFromTool(ctx, tool)
	default:
		err = errors.New("dump loader: unsupported source kind")
	}
	if err != nil {
		return symbol.Document{}, err
	}

	return symbol.NewDocument(src, data)
}

func (l *Loader) loadFromTool(ctx context.Context, src symbol.ToolSource) ([]byte, error) {
	exe, err := l.resolveTool(src.Tool())
	if err != nil {
		return nil, err
	}

	args := append(append([]string(nil), l.toolArgs...), src.Binary())
	result, err := l.runner.Run(ctx, exe, args...)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, &symbol.ToolExitError{
			Tool:     src.Tool(),
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(string(result.Stderr)),
		}
	}
	return result.Stdout, nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dump loader: read file %q: %w", path, err)
	}
	return data, nil
}

func loadFromFS(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, errors.New("dump loader: fs source requires a filesystem")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("dump loader: read fs entry %q: %w", name, err)
	}
	return data, nil
}
