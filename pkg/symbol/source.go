package symbol

import "path/filepath"

// Source identifies where a symbol dump originated so loaders can operate on
// files, fs.FS entries, or external dump tools without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindTool SourceKind = "tool"
)

// fileSource identifies an on-disk dump file.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a dump file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a dump inside an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a dump inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// ToolSource names a dump tool and the binary it should inspect. Loaders
// resolve the tool executable and run it as a subprocess.
type ToolSource interface {
	Source
	Tool() string
	Binary() string
}

type toolSource struct {
	tool   string
	binary string
}

func (s toolSource) Location() string {
	return s.binary
}

func (s toolSource) Kind() SourceKind {
	return SourceKindTool
}

func (s toolSource) Tool() string {
	return s.tool
}

func (s toolSource) Binary() string {
	return s.binary
}

// SourceFromTool returns a Source that produces its dump by running the named
// tool against the binary at path.
func SourceFromTool(tool, binary string) Source {
	return toolSource{tool: tool, binary: filepath.Clean(binary)}
}
