package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-binsize/pkg/symbol"
)

// yamlDump is the pre-captured dump schema used by fixtures and by pipelines
// that snapshot tool output for offline analysis.
type yamlDump struct {
	Symbols []symbol.Symbol `yaml:"symbols"`
}

func parseYAML(raw []byte) ([]symbol.Symbol, error) {
	var dump yamlDump
	if err := yaml.Unmarshal(raw, &dump); err != nil {
		return nil, fmt.Errorf("dump parser: decode yaml dump: %w", err)
	}
	return dump.Symbols, nil
}
