package simulate

import (
	"fmt"

	"github.com/leadloom/freightsim/internal/dataset"
)

// Segment thresholds on the hidden quality score.
const (
	enterpriseThreshold = 0.8
	repeatThreshold     = 0.5
)

// Days of signup history before the simulation start date.
const signupWindowDays = 730

// Region weights conditioned on segment, over dataset.Regions order
// (East, West, North, South). High-value customers concentrate in
// East/West.
var segmentRegionWeights = map[string][]float64{
	dataset.SegmentEnterprise: {0.4, 0.3, 0.2, 0.1},
	dataset.SegmentRepeat:     {0.3, 0.3, 0.2, 0.2},
	dataset.SegmentNew:        {0.25, 0.25, 0.25, 0.25},
}

// GenerateCustomers produces the customer population. The quality score
// is drawn from Beta(2,5) (right-skewed: most customers mediocre, a
// minority high quality) and fully determines the segment; the region
// is drawn from the segment-conditioned weights.
func (s *Simulator) GenerateCustomers(count int) []dataset.Customer {
	customers := make([]dataset.Customer, 0, count)
	for i := 1; i <= count; i++ {
		quality := s.rng.Beta(2, 5)
		segment := segmentForQuality(quality)

		region := dataset.Regions[s.rng.Weighted(segmentRegionWeights[segment])]
		signupOffset := s.rng.IntBetween(1, signupWindowDays)

		customers = append(customers, dataset.Customer{
			ID:           fmt.Sprintf("CUST_%04d", i),
			Name:         s.names.Company(),
			Region:       region,
			Segment:      segment,
			QualityScore: quality,
			SignupDate:   s.config.StartDate.AddDate(0, 0, -signupOffset),
		})
	}
	return customers
}

// segmentForQuality maps a quality score to its segment.
func segmentForQuality(quality float64) string {
	switch {
	case quality > enterpriseThreshold:
		return dataset.SegmentEnterprise
	case quality > repeatThreshold:
		return dataset.SegmentRepeat
	default:
		return dataset.SegmentNew
	}
}
