package simulate

import "github.com/leadloom/freightsim/internal/dataset"

// Carrier selection constants.
const (
	partnerPreferenceProb = 0.75
	manualQualityBar      = 0.6
)

// SelectCarrier samples one carrier for the shipment.
//
// Treated shipments prefer the 3PL-partner subset with probability
// partnerPreferenceProb, weighted by capability within the subset. When
// the subset is empty or the preference draw fails, selection falls
// through to the manual rule: customers with hidden quality above
// manualQualityBar weight carriers by capability squared (good
// customers get good carriers regardless of treatment), everyone else
// draws uniformly. Zero-sum weight vectors fall back to a uniform draw.
func (s *Simulator) SelectCarrier(customer dataset.Customer, treated bool, carriers []dataset.Carrier) dataset.Carrier {
	if treated {
		partners := partnerIndexes(carriers)
		if len(partners) > 0 && s.rng.Bernoulli(partnerPreferenceProb) {
			weights := make([]float64, len(partners))
			for i, idx := range partners {
				weights[i] = carriers[idx].CapabilityScore
			}
			return carriers[partners[s.rng.Weighted(weights)]]
		}
	}

	weights := make([]float64, len(carriers))
	if customer.QualityScore > manualQualityBar {
		for i, c := range carriers {
			weights[i] = c.CapabilityScore * c.CapabilityScore
		}
	} else {
		for i := range carriers {
			weights[i] = 1
		}
	}
	return carriers[s.rng.Weighted(weights)]
}

func partnerIndexes(carriers []dataset.Carrier) []int {
	var indexes []int
	for i, c := range carriers {
		if c.Is3PLPartner {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
