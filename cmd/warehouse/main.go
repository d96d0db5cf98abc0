// Package main provides the CLI for provisioning the warehouse schema
// and loading the CSV artifacts, one truncate-reload per table. A
// failure on one table does not prevent attempting the others.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/leadloom/freightsim/internal/platform/config"
	"github.com/leadloom/freightsim/internal/warehouse"
	bqloader "github.com/leadloom/freightsim/internal/warehouse/bigquery"
	sqliteloader "github.com/leadloom/freightsim/internal/warehouse/sqlite"
)

// settings holds warehouse configuration from the environment.
type settings struct {
	Driver     string `env:"FREIGHTSIM_WAREHOUSE_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"FREIGHTSIM_SQLITE_PATH" envDefault:"data/warehouse.db"`
	BQProject  string `env:"FREIGHTSIM_BQ_PROJECT"`
	BQDataset  string `env:"FREIGHTSIM_BQ_DATASET" envDefault:"logistics_data"`
	BQLocation string `env:"FREIGHTSIM_BQ_LOCATION" envDefault:"US"`
}

func main() {
	var dataDir string
	var verbose bool
	flag.StringVar(&dataDir, "data", "data", "directory holding the CSV artifacts")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()

	cfg, err := config.Parse[settings]()
	if err != nil {
		config.Exitf("load settings: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	loader, err := openLoader(ctx, cfg)
	if err != nil {
		config.Exitf("open warehouse: %v", err)
	}
	defer loader.Close()

	if err := loader.EnsureSchema(ctx); err != nil {
		config.Exitf("ensure schema: %v", err)
	}
	if verbose {
		fmt.Fprintln(os.Stderr, "Schema ensured")
	}

	failures := 0
	for _, artifact := range warehouse.Tables {
		csvPath := filepath.Join(dataDir, artifact.File)
		if err := loader.LoadTable(ctx, artifact.Name, csvPath); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Failed to load %s from %s: %v\n", artifact.Name, csvPath, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Loaded %s into %s\n", csvPath, artifact.Name)
	}

	if failures > 0 {
		config.Exitf("%d table load(s) failed", failures)
	}
}

// openLoader selects the warehouse backend from the configured driver.
func openLoader(ctx context.Context, cfg settings) (warehouse.Loader, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqliteloader.Open(cfg.SQLitePath)
	case "bigquery":
		return bqloader.New(ctx, bqloader.Config{
			ProjectID: cfg.BQProject,
			DatasetID: cfg.BQDataset,
			Location:  cfg.BQLocation,
		})
	default:
		return nil, fmt.Errorf("unknown warehouse driver %q (valid: sqlite, bigquery)", cfg.Driver)
	}
}
