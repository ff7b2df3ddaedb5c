package groups

import (
	internalgroups "github.com/goliatone/go-binsize/internal/groups"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

// Builder folds an ordered symbol collection into group summaries.
type Builder interface {
	Build(symbols []symbol.Symbol) []GroupSummary
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder() Builder {
	return internalgroups.NewBuilder()
}
