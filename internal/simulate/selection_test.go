package simulate

import (
	"fmt"
	"testing"

	"github.com/leadloom/freightsim/internal/dataset"
)

func testCarriers(partners int) []dataset.Carrier {
	capabilities := []float64{0.9, 0.3, 0.7, 0.5, 0.8, 0.2, 0.6, 0.4, 0.95, 0.1}
	carriers := make([]dataset.Carrier, 0, len(capabilities))
	for i, score := range capabilities {
		carriers = append(carriers, dataset.Carrier{
			ID:              fmt.Sprintf("CARR_%03d", i+1),
			Is3PLPartner:    i < partners,
			CapabilityScore: score,
		})
	}
	return carriers
}

func TestSelectCarrierTreatedPrefersPartners(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	carriers := testCarriers(4)
	customer := customerWith(dataset.SegmentNew, 0.3)

	partnerHits := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		if sim.SelectCarrier(customer, true, carriers).Is3PLPartner {
			partnerHits++
		}
	}

	// With a 0.75 partner preference plus fallthrough draws, partners
	// should be picked far more often than their 4/10 population share.
	rate := float64(partnerHits) / draws
	if rate < 0.6 {
		t.Fatalf("partner selection rate %v too low for treated shipments", rate)
	}
}

func TestSelectCarrierEmptyPartnerSetFallsThrough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	carriers := testCarriers(0)
	customer := customerWith(dataset.SegmentNew, 0.3)

	for i := 0; i < 100; i++ {
		c := sim.SelectCarrier(customer, true, carriers)
		if c.Is3PLPartner {
			t.Fatal("selected a 3PL partner from an empty partner set")
		}
	}
}

func TestSelectCarrierManualQualityBias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	carriers := testCarriers(0)

	meanCapability := func(quality float64) float64 {
		customer := customerWith(dataset.SegmentNew, quality)
		var sum float64
		const draws = 5000
		for i := 0; i < draws; i++ {
			sum += sim.SelectCarrier(customer, false, carriers).CapabilityScore
		}
		return sum / draws
	}

	good := meanCapability(0.9)
	regular := meanCapability(0.3)

	if good <= regular {
		t.Fatalf("high-quality customers should draw better carriers: %v <= %v", good, regular)
	}
}

func TestSelectCarrierZeroCapabilityFallsBackToUniform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	carriers := make([]dataset.Carrier, 5)
	for i := range carriers {
		carriers[i] = dataset.Carrier{ID: fmt.Sprintf("CARR_%03d", i+1), Is3PLPartner: i < 2}
	}
	// Quality above the manual bar forces the capability-squared weights,
	// which all sum to zero here; the draw must fall back to uniform
	// rather than divide by zero.
	customer := customerWith(dataset.SegmentEnterprise, 0.9)

	for i := 0; i < 500; i++ {
		c := sim.SelectCarrier(customer, true, carriers)
		if c.ID == "" {
			t.Fatal("selected carrier outside the population")
		}
	}
}
