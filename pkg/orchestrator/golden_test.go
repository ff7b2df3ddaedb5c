package orchestrator_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-binsize/pkg/orchestrator"
	"github.com/goliatone/go-binsize/pkg/report"
	"github.com/goliatone/go-binsize/pkg/testsupport"
)

// Regenerate the golden with UPDATE_GOLDENS=1, or via
// scripts/generate-report-snapshot after changing the report model.
func TestAnalyzeMatchesGoldenReport(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "small.nm"))

	gen := orchestrator.New()
	rep, err := gen.Analyze(testsupport.Context(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	goldenPath := filepath.Join("testdata", "report.json")
	testsupport.WriteGolden(t, goldenPath, rep)

	var want report.Report
	if err := json.Unmarshal(testsupport.MustReadGolden(t, goldenPath), &want); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}

	if diff := testsupport.CompareGolden(want, rep); diff != "" {
		t.Fatalf("report drifted from golden (-want +got):\n%s", diff)
	}
}
