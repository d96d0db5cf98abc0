package simulate

import (
	"context"
	"strings"
	"testing"

	"github.com/leadloom/freightsim/internal/dataset"
)

func largeDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Shipments = 8000
	ds, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return ds
}

func TestSummarizeBiasDirections(t *testing.T) {
	ds := largeDataset(t)
	report := Summarize(ds)

	// Hidden customer quality must be higher among treated shipments:
	// the early-access leak and the segment-dependent base rates both
	// pull in that direction.
	if report.QualityByTreatment[true] <= report.QualityByTreatment[false] {
		t.Fatalf("treated quality %v not above untreated %v",
			report.QualityByTreatment[true], report.QualityByTreatment[false])
	}

	// Algorithmic-labeled shipments ride better carriers.
	if report.CapabilityByMethod[dataset.SelectionAlgorithmic] <= report.CapabilityByMethod[dataset.SelectionManual] {
		t.Fatalf("algorithmic capability %v not above manual %v",
			report.CapabilityByMethod[dataset.SelectionAlgorithmic],
			report.CapabilityByMethod[dataset.SelectionManual])
	}

	// The naive delivery comparison must overstate the true effect: the
	// observed treated/untreated ratio sits below the true time factor
	// because confounding stacks on top of it.
	naiveRatio := report.NaiveOutcomes[true].DeliveryHours / report.NaiveOutcomes[false].DeliveryHours
	if naiveRatio >= TreatmentTimeFactor {
		t.Fatalf("naive delivery ratio %v not biased below true factor %v",
			naiveRatio, TreatmentTimeFactor)
	}

	// Naive satisfaction gap should exceed the true boost for the same
	// reason.
	satGap := report.NaiveOutcomes[true].Satisfaction - report.NaiveOutcomes[false].Satisfaction
	if satGap <= 0 {
		t.Fatalf("naive satisfaction gap %v not positive", satGap)
	}
}

func TestSummarizeTreatmentRates(t *testing.T) {
	ds := largeDataset(t)
	report := Summarize(ds)

	rates := map[string]map[bool]float64{}
	for _, row := range report.TreatmentRates {
		if rates[row.Segment] == nil {
			rates[row.Segment] = map[bool]float64{}
		}
		rates[row.Segment][row.PostRollout] = row.Rate
	}

	// Post-rollout treatment favors the higher-value segments.
	if rates[dataset.SegmentEnterprise][true] <= rates[dataset.SegmentNew][true] {
		t.Fatalf("post-rollout rates not ordered by segment: %v", rates)
	}
	if rates[dataset.SegmentRepeat][true] <= rates[dataset.SegmentNew][true] {
		t.Fatalf("post-rollout rates not ordered by segment: %v", rates)
	}

	// Every pre-rollout rate stays below its post-rollout counterpart.
	for segment, bySegment := range rates {
		if bySegment[false] >= bySegment[true] {
			t.Fatalf("segment %s pre-rollout rate %v not below post-rollout %v",
				segment, bySegment[false], bySegment[true])
		}
	}
}

func TestSummarizeCounts(t *testing.T) {
	ds := largeDataset(t)
	report := Summarize(ds)

	if report.TotalShipments != len(ds.Shipments) {
		t.Fatalf("total %d != %d", report.TotalShipments, len(ds.Shipments))
	}
	if report.SurveyCounts[true]+report.SurveyCounts[false] != report.SurveyCount {
		t.Fatalf("survey counts %v do not sum to %d", report.SurveyCounts, report.SurveyCount)
	}

	var total int
	for _, row := range report.TreatmentRates {
		total += row.Count
	}
	if total != report.TotalShipments {
		t.Fatalf("treatment rate rows cover %d shipments, want %d", total, report.TotalShipments)
	}
}

func TestReportWriteDeterministic(t *testing.T) {
	ds := generateReference(t, 42)
	report := Summarize(ds)

	var first, second strings.Builder
	report.Write(&first)
	report.Write(&second)

	if first.String() != second.String() {
		t.Fatal("report rendering is not deterministic")
	}
	if !strings.Contains(first.String(), "CONFOUNDING ASSESSMENT") {
		t.Fatal("report missing header")
	}
	if !strings.Contains(first.String(), "0.85") {
		t.Fatal("report missing true treatment parameters")
	}
}
