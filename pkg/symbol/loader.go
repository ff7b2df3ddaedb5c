package symbol

import (
	"context"
	"io/fs"
	"time"
)

// Loader fetches symbol dumps from different sources (filesystem, fs.FS, or an
// external dump tool). Implementations live under internal/dump but satisfy
// this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// ToolResult captures one dump tool invocation: the streams and the exit code.
type ToolResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ToolRunner abstracts subprocess execution so loaders can be tested without
// spawning real toolchain binaries.
type ToolRunner interface {
	Run(ctx context.Context, exe string, args ...string) (ToolResult, error)
}

// LoaderOptions configures how a Loader resolves sources and invokes dump
// tools. The zero value disables tool sources' toolchain-directory probing and
// falls back to PATH resolution.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS

	// ToolchainDir is probed for tool executables before falling back to PATH
	// resolution. Empty means PATH-only.
	ToolchainDir string

	// ExecSuffix is appended to the tool name when probing ToolchainDir and
	// the bare name is absent (".exe" on Windows toolchains). Optional.
	ExecSuffix string

	// ToolArgs are passed to the dump tool ahead of the binary path. Defaults
	// to POSIX nm output ({"-P"}).
	ToolArgs []string

	// ToolTimeout caps dump tool execution. Exceeding it surfaces
	// ErrToolTimeout, distinct from a non-zero exit. Zero means no limit.
	ToolTimeout time.Duration

	// Runner replaces the default subprocess runner. Nil selects the built-in
	// os/exec implementation.
	Runner ToolRunner
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithToolchainDir points executable resolution at a toolchain directory.
func WithToolchainDir(dir string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ToolchainDir = dir
	}
}

// WithExecSuffix sets the platform executable suffix used during toolchain
// directory probing.
func WithExecSuffix(suffix string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ExecSuffix = suffix
	}
}

// WithToolArgs overrides the arguments passed to the dump tool before the
// binary path.
func WithToolArgs(args ...string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ToolArgs = append([]string(nil), args...)
	}
}

// WithToolTimeout caps dump tool execution time.
func WithToolTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.ToolTimeout = timeout
	}
}

// WithToolRunner injects a custom subprocess runner, primarily for tests.
func WithToolRunner(runner ToolRunner) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Runner = runner
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level binsize package to prevent import cycles.
