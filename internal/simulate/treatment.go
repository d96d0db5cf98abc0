package simulate

import (
	"time"

	"github.com/leadloom/freightsim/internal/dataset"
)

// Treatment assignment constants. The pre-rollout leak is the single
// most important confounding lever: any treated shipment before the
// rollout date exists only because of hidden customer quality.
const (
	leakProbVIP     = 0.15
	leakProbDefault = 0.02
	leakQualityBar  = 0.7

	baseProbEnterprise = 0.8
	baseProbRepeat     = 0.6
	baseProbNew        = 0.4

	rampDays = 90
)

// TreatmentProbability returns the probability that algorithmic carrier
// selection is used for a shipment on the given date.
//
// Before the rollout date the probability is the VIP early-access leak:
// high for customers whose hidden quality exceeds the leak bar, near
// zero otherwise. On or after the rollout date the probability is the
// segment base rate scaled by a linear ramp reaching full strength
// rampDays after rollout.
func TreatmentProbability(shipmentDate, rolloutDate time.Time, customer dataset.Customer) float64 {
	daysSinceRollout := daysBetween(rolloutDate, shipmentDate)

	if daysSinceRollout < 0 {
		if customer.QualityScore > leakQualityBar {
			return leakProbVIP
		}
		return leakProbDefault
	}

	var base float64
	switch customer.Segment {
	case dataset.SegmentEnterprise:
		base = baseProbEnterprise
	case dataset.SegmentRepeat:
		base = baseProbRepeat
	default:
		base = baseProbNew
	}

	ramp := float64(daysSinceRollout) / rampDays
	if ramp > 1 {
		ramp = 1
	}
	return base * ramp
}

// assignTreatment draws the treatment coin for a shipment. The result
// is recorded verbatim as the shipment's treatment indicator,
// independent of how the shipment is later labeled.
func (s *Simulator) assignTreatment(shipmentDate time.Time, customer dataset.Customer) bool {
	return s.rng.Bernoulli(TreatmentProbability(shipmentDate, s.config.RolloutDate, customer))
}

// daysBetween returns whole days from a to b, negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
