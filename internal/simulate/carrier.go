package simulate

import (
	"fmt"

	"github.com/leadloom/freightsim/internal/dataset"
)

var serviceLevels = []string{
	dataset.ServiceStandard,
	dataset.ServiceExpress,
	dataset.ServiceOvernight,
}

// GenerateCarriers produces the carrier population. The capability
// score is drawn from Beta(3,2) (left-skewed: most carriers decent to
// good). The first PartnerCount carriers in generation order are 3PL
// partners; the flag is therefore independent of capability and
// service level.
func (s *Simulator) GenerateCarriers(count int) []dataset.Carrier {
	carriers := make([]dataset.Carrier, 0, count)
	for i := 1; i <= count; i++ {
		capability := s.rng.Beta(3, 2)

		carriers = append(carriers, dataset.Carrier{
			ID:              fmt.Sprintf("CARR_%03d", i),
			Name:            s.names.Carrier(),
			Region:          dataset.Regions[s.rng.Intn(len(dataset.Regions))],
			Is3PLPartner:    i <= s.config.PartnerCount,
			ServiceLevel:    serviceLevels[s.rng.Intn(len(serviceLevels))],
			CapabilityScore: capability,
		})
	}
	return carriers
}
