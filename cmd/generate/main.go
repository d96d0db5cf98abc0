// Package main provides the CLI for generating the synthetic logistics
// dataset: populations, shipments, CSV artifacts, and the confounding
// diagnostics report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leadloom/freightsim/internal/export"
	"github.com/leadloom/freightsim/internal/platform/config"
	"github.com/leadloom/freightsim/internal/random"
	"github.com/leadloom/freightsim/internal/simulate"
)

func main() {
	cfg := simulate.DefaultConfig()

	var preset string
	var outDir string
	var diagnostics bool

	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = draw one from crypto/rand)")
	flag.StringVar(&preset, "preset", string(simulate.PresetSmoke), "population preset (smoke, standard, stress)")
	flag.IntVar(&cfg.Customers, "customers", 0, "number of customers to generate (0 = use preset)")
	flag.IntVar(&cfg.Carriers, "carriers", 0, "number of carriers to generate (0 = use preset)")
	flag.IntVar(&cfg.Shipments, "shipments", 0, "number of shipments to generate (0 = use preset)")
	flag.StringVar(&outDir, "out", "data", "directory for CSV artifacts")
	flag.BoolVar(&diagnostics, "diagnostics", true, "print the confounding report to stdout")
	flag.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	flag.Parse()

	presetVal := simulate.Preset(preset)
	valid := false
	for _, p := range simulate.ValidPresets {
		if presetVal == p {
			valid = true
			break
		}
	}
	if !valid {
		config.Exitf("unknown preset %q (valid: smoke, standard, stress)", preset)
	}

	presetCfg := simulate.GetPresetConfig(presetVal)
	if cfg.Customers == 0 {
		cfg.Customers = presetCfg.Customers
	}
	if cfg.Carriers == 0 {
		cfg.Carriers = presetCfg.Carriers
	}
	if cfg.Shipments == 0 {
		cfg.Shipments = presetCfg.Shipments
	}

	if cfg.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			config.Exitf("draw seed: %v", err)
		}
		cfg.Seed = seed
		fmt.Fprintf(os.Stderr, "Using seed: %d\n", cfg.Seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	sim := simulate.New(cfg)
	ds, err := sim.Run(ctx)
	if err != nil {
		config.Exitf("generate dataset: %v", err)
	}

	if err := export.WriteCSV(outDir, ds); err != nil {
		config.Exitf("write artifacts: %v", err)
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Wrote artifacts to %s\n", outDir)
	}

	if diagnostics {
		simulate.Summarize(ds).Write(os.Stdout)
	}
}
