// Package jsonexport renders reports as canonical JSON for machine consumers.
package jsonexport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-binsize/pkg/category"
	"github.com/goliatone/go-binsize/pkg/groups"
	"github.com/goliatone/go-binsize/pkg/report"
)

// Renderer marshals the report, honoring sorting and top-N truncation.
type Renderer struct{}

// New constructs the json renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// payload pins the serialized shape so group ordering from RenderOptions is
// visible to consumers without mutating the report itself.
type payload struct {
	Title      string                `json:"title,omitempty"`
	Totals     report.Totals         `json:"totals"`
	Categories []category.Total      `json:"categories,omitempty"`
	Groups     []groups.GroupSummary `json:"groups"`
}

func (r *Renderer) Render(ctx context.Context, rep report.Report, options report.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("json renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := payload{
		Title:  options.Title,
		Totals: rep.Totals,
		Groups: report.SortedGroups(rep, options),
	}
	if len(rep.Categories) > 0 {
		out.Categories = rep.Categories
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal report: %w", err)
	}
	return append(data, '\n'), nil
}
