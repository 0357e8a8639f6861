package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"

	"github.com/futstats/fixture-insights/internal/dataset"
	"github.com/futstats/fixture-insights/internal/domain/summary"
	"github.com/futstats/fixture-insights/internal/exporter"
	"github.com/futstats/fixture-insights/internal/render"
	"github.com/futstats/fixture-insights/internal/usecase"
)

// report turns one results CSV into chart and CSV artifacts without
// running the API server.
func main() {
	var (
		fixturesPath = flag.String("fixtures", "", "path to a results CSV (required)")
		groupBy      = flag.String("group-by", "home_team", "group key: home_team, team or stage")
		chartKind    = flag.String("chart", "bar", "chart kind: bar, line or table")
		outDir       = flag.String("out", ".", "directory to write artifacts into")
		withExports  = flag.Bool("export", true, "also write summary and standings CSV files")
	)
	flag.Parse()

	if err := run(*fixturesPath, *groupBy, *chartKind, *outDir, *withExports); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		switch {
		case errors.Is(err, dataset.ErrSourceNotFound):
			os.Exit(2)
		case errors.Is(err, dataset.ErrDataFormat):
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
}

func run(fixturesPath, groupBy, chartKind, outDir string, withExports bool) error {
	if fixturesPath == "" {
		return fmt.Errorf("-fixtures is required")
	}
	key, ok := summary.ParseGroupKey(groupBy)
	if !ok {
		return fmt.Errorf("unknown group key %q", groupBy)
	}
	kind, ok := render.ParseChartKind(chartKind)
	if !ok {
		return fmt.Errorf("%w: %q", render.ErrUnsupportedChartKind, chartKind)
	}

	var loader dataset.Loader
	ds, err := loader.LoadFixtures(fixturesPath)
	if err != nil {
		return err
	}

	rows := usecase.BuildSummary(ds.Fixtures, key)
	table := usecase.BuildStandings(ds.Fixtures)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	artifact, err := render.Summary(rows, kind, fmt.Sprintf("%s by %s", ds.Competition.Name, key))
	if err != nil {
		return err
	}

	p := pool.New().WithErrors()
	p.Go(func() error {
		name := fmt.Sprintf("%s-summary-%s.%s", ds.Competition.ID, key, artifactExt(kind))
		return writeArtifact(filepath.Join(outDir, name), artifact.Data)
	})
	if withExports {
		p.Go(func() error {
			data, err := exporter.SummaryCSV(rows)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s-summary-%s.csv", ds.Competition.ID, key)
			return writeArtifact(filepath.Join(outDir, name), data)
		})
		p.Go(func() error {
			data, err := exporter.StandingsCSV(table)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s-standings.csv", ds.Competition.ID)
			return writeArtifact(filepath.Join(outDir, name), data)
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	fmt.Printf("wrote artifacts for %s (%d fixtures, %d resolved) to %s\n",
		ds.Competition.ID, len(ds.Fixtures), ds.ResolvedCount(), outDir)
	return nil
}

func artifactExt(kind render.ChartKind) string {
	if kind == render.ChartTable {
		return "txt"
	}
	return "svg"
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
