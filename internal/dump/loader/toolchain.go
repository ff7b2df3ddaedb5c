package loader

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// resolveTool locates the dump tool executable. The configured toolchain
// directory is probed first (bare name, then name plus the platform suffix);
// bare command-name resolution via PATH is the fallback.
func (l *Loader) resolveTool(tool string) (string, error) {
	if tool == "" {
		return "", fmt.Errorf("%w: empty tool name", symbol.ErrToolNotFound)
	}

	if l.toolDir != "" {
		candidate := filepath.Join(l.toolDir, tool)
		if isExecutableFile(candidate) {
			return candidate, nil
		}
		if l.suffix != "" {
			withSuffix := candidate + l.suffix
			if isExecutableFile(withSuffix) {
				return withSuffix, nil
			}
		}
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%w: %q", symbol.ErrToolNotFound, tool)
	}
	return path, nil
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
