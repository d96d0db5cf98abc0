package simulate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/leadloom/freightsim/internal/dataset"
)

// Shipment date horizon constants. The horizon covers the first half
// of the year from the start date; the first 90 days jitter earlier
// (Q1 volume clustering) and the second half jitters later.
const (
	horizonDays = 180

	q1JitterMin = -10
	q1JitterMax = 5
	q2JitterMin = -5
	q2JitterMax = 10

	weekendShiftProb = 0.7
)

// Run generates the full dataset: both populations once, then the
// per-shipment loop. Each shipment draws, in order: customer, date,
// treatment, carrier, outcome, survey. Each stage consumes only the
// outputs of prior stages plus fixed entity attributes.
func (s *Simulator) Run(ctx context.Context) (*dataset.Dataset, error) {
	if s.config.Customers < 1 || s.config.Carriers < 1 || s.config.Shipments < 0 {
		return nil, fmt.Errorf("invalid population sizes (customers=%d carriers=%d shipments=%d)",
			s.config.Customers, s.config.Carriers, s.config.Shipments)
	}

	customers := s.GenerateCustomers(s.config.Customers)
	carriers := s.GenerateCarriers(s.config.Carriers)

	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "Generated %d customer(s) and %d carrier(s)\n",
			len(customers), len(carriers))
	}

	shipments := make([]dataset.Shipment, 0, s.config.Shipments)
	for i := 1; i <= s.config.Shipments; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		shipments = append(shipments, s.generateShipment(i, customers, carriers))
	}

	if s.config.Verbose {
		fmt.Fprintf(os.Stderr, "Generated %d shipment(s)\n", len(shipments))
	}

	return &dataset.Dataset{
		Customers: customers,
		Carriers:  carriers,
		Shipments: shipments,
	}, nil
}

// generateShipment produces one shipment record. The customer draw is
// uniform on purpose: the confounding is injected downstream by the
// treatment and carrier-selection stages, not by customer selection.
func (s *Simulator) generateShipment(seq int, customers []dataset.Customer, carriers []dataset.Carrier) dataset.Shipment {
	customer := customers[s.rng.Intn(len(customers))]
	shipmentDate := s.drawShipmentDate(customer)

	treated := s.assignTreatment(shipmentDate, customer)
	carrier := s.SelectCarrier(customer, treated, carriers)

	// The business-facing label lags the true coin flip: a pre-rollout
	// leaked treatment is labeled manual even though its indicator is
	// true. Downstream causal fixtures depend on this divergence.
	method := dataset.SelectionManual
	postRollout := !shipmentDate.Before(s.config.RolloutDate)
	if postRollout && treated {
		method = dataset.SelectionAlgorithmic
	}

	outcome := s.ComputeOutcome(carrier, customer, shipmentDate, treated)

	shipment := dataset.Shipment{
		ID:              fmt.Sprintf("SHIP_%05d", seq),
		CustomerID:      customer.ID,
		CarrierID:       carrier.ID,
		Date:            shipmentDate,
		DeliveryHours:   outcome.DeliveryHours,
		CostUSD:         outcome.CostUSD,
		OnTime:          outcome.OnTime,
		SelectionMethod: method,
		IsPostRollout:   postRollout,
		IsAlgorithmic:   treated,
	}

	if responded, surveyDate := s.drawSurvey(shipmentDate, outcome.OnTime, customer.Segment); responded {
		satisfaction := outcome.Satisfaction
		shipment.Satisfaction = &satisfaction
		date := surveyDate
		shipment.SurveyDate = &date
	}

	return shipment
}

// drawShipmentDate samples a date within the horizon with seasonal
// jitter, then applies the business-customer weekend preference:
// repeat and enterprise customers usually reschedule weekend shipments
// to the following Monday.
func (s *Simulator) drawShipmentDate(customer dataset.Customer) time.Time {
	baseDay := s.rng.IntBetween(0, horizonDays)

	var jitter int
	if baseDay < horizonDays/2 {
		jitter = s.rng.IntBetween(q1JitterMin, q1JitterMax)
	} else {
		jitter = s.rng.IntBetween(q2JitterMin, q2JitterMax)
	}

	day := baseDay + jitter
	if day < 0 {
		day = 0
	}
	if day > horizonDays-1 {
		day = horizonDays - 1
	}
	date := s.config.StartDate.AddDate(0, 0, day)

	business := customer.Segment == dataset.SegmentRepeat || customer.Segment == dataset.SegmentEnterprise
	if business && isWeekend(date) && s.rng.Bernoulli(weekendShiftProb) {
		date = nextMonday(date)
	}
	return date
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func nextMonday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}
