// Command civitrack runs the accountability engine over locally
// materialized snapshot directories and writes per-official reports.
// It stands in for the production orchestration collaborator.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"civitrack/adapters/excelreport"
	"civitrack/adapters/snapshotdir"
	"civitrack/app"
	"civitrack/domain/core"
	"civitrack/internal/config"
	"civitrack/internal/report"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("civitrack: %v", err)
	}
}

func run() error {
	// .env is optional; environment and flags win over it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	snapshots := flag.String("snapshots", cfg.SnapshotDir, "snapshot root directory")
	official := flag.String("official", "", "analyze a single official ID (default: all)")
	outDir := flag.String("out", cfg.OutDir, "output directory")
	format := flag.String("format", cfg.Format, "output format: json, markdown or xlsx")
	parallel := flag.Int("parallel", cfg.MaxParallel, "max concurrent analyses")
	deterministic := flag.Bool("deterministic", cfg.Deterministic, "use sequential IDs for reproducible output")
	flag.Parse()

	cfg.SnapshotDir = *snapshots
	cfg.OutDir = *outDir
	cfg.Format = *format
	cfg.MaxParallel = *parallel
	cfg.Deterministic = *deterministic
	if err := cfg.Validate(); err != nil {
		return err
	}

	var ids core.IDSource = core.RandomIDSource{}
	if cfg.Deterministic {
		// Sequential IDs are not concurrency-safe; run serially.
		ids = &core.SequentialIDSource{Prefix: "civitrack"}
		cfg.MaxParallel = 1
	}

	pipeline, err := app.NewPipeline(app.DefaultConfig(), ids)
	if err != nil {
		return err
	}
	provider := snapshotdir.New(cfg.SnapshotDir)
	ctx := context.Background()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	if *official != "" {
		bundle, err := provider.Load(ctx, core.OfficialID(*official))
		if err != nil {
			return err
		}
		rep := pipeline.Analyze(bundle)
		return writeReport(cfg, rep)
	}

	runner := app.NewBatchRunner(pipeline, provider, cfg.MaxParallel)
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			log.Printf("official %s failed: %v", res.OfficialID, res.Err)
			continue
		}
		if err := writeReport(cfg, *res.Report); err != nil {
			return err
		}
		log.Printf("official %s analyzed in %s (score %.1f, grade %s)",
			res.OfficialID, res.Duration, res.Report.Scorecard.OverallScore, res.Report.Scorecard.Grade)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d officials failed", failures, len(results))
	}
	return nil
}

func writeReport(cfg *config.Config, rep app.Report) error {
	base := filepath.Join(cfg.OutDir, rep.OfficialID.String())

	switch cfg.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(base+".json", append(data, '\n'), 0o644)
	case config.FormatMarkdown:
		return os.WriteFile(base+".md", []byte(report.Markdown(rep)), 0o644)
	case config.FormatXLSX:
		return excelreport.Write(base+".xlsx", rep)
	}
	return fmt.Errorf("unsupported format %q", cfg.Format)
}
