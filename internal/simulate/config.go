// Package simulate implements the generative model for the synthetic
// logistics dataset: customer and carrier populations with hidden
// confounders, biased treatment assignment and carrier selection,
// confounded outcome metrics, informatively censored survey responses,
// and the per-shipment orchestration loop that ties them together.
//
// The true treatment effect is fixed and known by construction (see
// outcome.go), so a causal pipeline run against the generated data can
// be scored on how well it recovers the effect despite the injected
// confounding.
package simulate

import (
	"time"

	"github.com/leadloom/freightsim/internal/simulate/namegen"
)

// Config holds configuration for one generation run.
type Config struct {
	Seed int64

	Customers int
	Carriers  int
	Shipments int

	// PartnerCount is the number of carriers flagged as 3PL partners.
	// The first PartnerCount carriers in generation order carry the
	// flag; it may be zero.
	PartnerCount int

	// StartDate anchors the shipment horizon; RolloutDate is when
	// algorithmic selection becomes the primary assignment mechanism.
	StartDate   time.Time
	RolloutDate time.Time

	Verbose bool
}

// DefaultConfig returns the smoke-scale configuration: the 120/15/800
// population with the 2024-01-01 start and 2024-04-01 rollout.
func DefaultConfig() Config {
	return Config{
		Customers:    120,
		Carriers:     15,
		Shipments:    800,
		PartnerCount: 8,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RolloutDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Simulator drives dataset generation for a single configuration.
type Simulator struct {
	config Config
	rng    *Rand
	names  *namegen.Namer
}

// New creates a Simulator with its own seeded random streams.
func New(cfg Config) *Simulator {
	rng := NewRand(cfg.Seed)
	return &Simulator{
		config: cfg,
		rng:    rng,
		names:  namegen.New(rng),
	}
}
