package simulate

import (
	"math"
	"testing"

	"github.com/leadloom/freightsim/internal/dataset"
)

func TestSurveyResponseProbability(t *testing.T) {
	cases := []struct {
		onTime  bool
		segment string
		want    float64
	}{
		{true, dataset.SegmentNew, 0.25},
		{false, dataset.SegmentNew, 0.45},
		{true, dataset.SegmentEnterprise, 0.25 * 1.3},
		{false, dataset.SegmentEnterprise, 0.45 * 1.3},
		{true, dataset.SegmentRepeat, 0.25},
	}
	for _, tc := range cases {
		got := SurveyResponseProbability(tc.onTime, tc.segment)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("onTime=%v segment=%s: got %v, want %v", tc.onTime, tc.segment, got, tc.want)
		}
	}
}

func TestDrawSurveyOffsetRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	shipDate := cfg.StartDate.AddDate(0, 0, 50)
	responses := 0
	for i := 0; i < 2000; i++ {
		responded, surveyDate := sim.drawSurvey(shipDate, false, dataset.SegmentEnterprise)
		if !responded {
			continue
		}
		responses++
		offset := daysBetween(shipDate, surveyDate)
		if offset < surveyMinOffsetDays || offset > surveyMaxOffsetDays {
			t.Fatalf("survey offset %d outside [%d,%d]", offset, surveyMinOffsetDays, surveyMaxOffsetDays)
		}
	}

	// Late enterprise shipments respond at 0.45*1.3 = 0.585.
	rate := float64(responses) / 2000
	if rate < 0.52 || rate > 0.66 {
		t.Fatalf("response rate %v far from expected 0.585", rate)
	}
}

func TestDrawSurveyLateDeliveriesRespondMore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	sim := New(cfg)

	shipDate := cfg.StartDate.AddDate(0, 0, 50)
	rate := func(onTime bool) float64 {
		responses := 0
		const draws = 4000
		for i := 0; i < draws; i++ {
			if responded, _ := sim.drawSurvey(shipDate, onTime, dataset.SegmentNew); responded {
				responses++
			}
		}
		return float64(responses) / draws
	}

	if late, punctual := rate(false), rate(true); late <= punctual {
		t.Fatalf("late deliveries should drive responses: %v <= %v", late, punctual)
	}
}
