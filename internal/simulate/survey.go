package simulate

import (
	"time"

	"github.com/leadloom/freightsim/internal/dataset"
)

// Survey response constants. Missingness is informative: late
// deliveries drive feedback, and enterprise customers respond more.
const (
	surveyBaseProb       = 0.25
	surveyLateProb       = 0.45
	surveyEnterpriseMult = 1.3

	surveyMinOffsetDays = 1
	surveyMaxOffsetDays = 4
)

// SurveyResponseProbability returns the probability that a satisfaction
// survey response is observed for a shipment.
func SurveyResponseProbability(onTime bool, segment string) float64 {
	prob := surveyBaseProb
	if !onTime {
		prob = surveyLateProb
	}
	if segment == dataset.SegmentEnterprise {
		prob *= surveyEnterpriseMult
	}
	return prob
}

// drawSurvey decides whether a survey response occurred and, if so,
// returns the survey date 1-4 days after the shipment date.
func (s *Simulator) drawSurvey(shipmentDate time.Time, onTime bool, segment string) (bool, time.Time) {
	if !s.rng.Bernoulli(SurveyResponseProbability(onTime, segment)) {
		return false, time.Time{}
	}
	offset := s.rng.IntBetween(surveyMinOffsetDays, surveyMaxOffsetDays)
	return true, shipmentDate.AddDate(0, 0, offset)
}
