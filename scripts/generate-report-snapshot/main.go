// Command generate-report-snapshot regenerates the serialized report golden
// consumed by the orchestrator tests. Run it after changing the grouping or
// report model so the golden diff reflects current output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-binsize/pkg/orchestrator"
	"github.com/goliatone/go-binsize/pkg/symbol"
)

func main() {
	var (
		dumpPath   = flag.String("dump", "pkg/orchestrator/testdata/small.nm", "symbol dump path")
		outputPath = flag.String("output", "pkg/orchestrator/testdata/report.json", "output path for the serialized report")
	)
	flag.Parse()

	raw, err := os.ReadFile(*dumpPath)
	if err != nil {
		log.Fatalf("read dump: %v", err)
	}
	doc, err := symbol.NewDocument(symbol.SourceFromFile(*dumpPath), raw)
	if err != nil {
		log.Fatalf("new document: %v", err)
	}

	gen := orchestrator.New()
	rep, err := gen.Analyze(context.Background(), orchestrator.Request{Document: &doc})
	if err != nil {
		log.Fatalf("analyze dump: %v", err)
	}

	payload, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	payload = append(payload, '\n')

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		log.Fatalf("mkdir output dir: %v", err)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	fmt.Printf("Report snapshot written to %s\n", *outputPath)
}
