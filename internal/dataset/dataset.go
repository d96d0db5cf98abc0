// Package dataset defines the entity types produced by the synthetic
// logistics generator: customers, carriers, and shipments, plus the
// Dataset value that holds one complete generated population.
//
// Entities are immutable after generation. The quality and capability
// scores are hidden confounders: they exist to bias treatment
// assignment, carrier selection, and outcomes, and are never meant to
// be visible to a downstream causal analysis.
package dataset

import "time"

// Customer segments, derived from the hidden quality score.
const (
	SegmentNew        = "new"
	SegmentRepeat     = "repeat"
	SegmentEnterprise = "enterprise"
)

// Carrier service levels.
const (
	ServiceStandard  = "standard"
	ServiceExpress   = "express"
	ServiceOvernight = "overnight"
)

// Carrier selection method labels recorded on shipments.
const (
	SelectionAlgorithmic = "algorithmic"
	SelectionManual      = "manual"
)

// Regions used for both customers and carriers.
var Regions = []string{"East", "West", "North", "South"}

// Customer is a shipping customer with a hidden quality score.
//
// Segment is a pure function of QualityScore (>0.8 enterprise,
// >0.5 repeat, else new) and Region is drawn from a segment-conditioned
// distribution; both are fixed at generation time.
type Customer struct {
	ID           string
	Name         string
	Region       string
	Segment      string
	QualityScore float64
	SignupDate   time.Time
}

// Carrier is a freight carrier with a hidden capability score.
//
// Is3PLPartner is assigned by generation order alone and is independent
// of CapabilityScore and ServiceLevel.
type Carrier struct {
	ID              string
	Name            string
	Region          string
	Is3PLPartner    bool
	ServiceLevel    string
	CapabilityScore float64
}

// Shipment is one delivered shipment. Satisfaction and SurveyDate are
// set together or not at all: both are present exactly when a survey
// response occurred.
//
// IsAlgorithmic records the actual treatment coin flip; SelectionMethod
// is the business-facing label, which is "algorithmic" only for treated
// shipments on or after the rollout date. A pre-rollout leaked
// treatment therefore has IsAlgorithmic=true with a "manual" label.
type Shipment struct {
	ID              string
	CustomerID      string
	CarrierID       string
	Date            time.Time
	DeliveryHours   float64
	CostUSD         float64
	OnTime          bool
	SelectionMethod string
	Satisfaction    *float64
	SurveyDate      *time.Time
	IsPostRollout   bool
	IsAlgorithmic   bool
}

// Dataset holds one complete generated population. Shipments appear in
// generation order; the order carries no semantic meaning.
type Dataset struct {
	Customers []Customer
	Carriers  []Carrier
	Shipments []Shipment
}

// CustomerByID returns an index from customer ID to customer.
func (d *Dataset) CustomerByID() map[string]Customer {
	index := make(map[string]Customer, len(d.Customers))
	for _, c := range d.Customers {
		index[c.ID] = c
	}
	return index
}

// CarrierByID returns an index from carrier ID to carrier.
func (d *Dataset) CarrierByID() map[string]Carrier {
	index := make(map[string]Carrier, len(d.Carriers))
	for _, c := range d.Carriers {
		index[c.ID] = c
	}
	return index
}
