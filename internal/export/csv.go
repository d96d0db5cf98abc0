// Package export writes the generated dataset as CSV artifacts, one
// self-contained file per warehouse table.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/leadloom/freightsim/internal/dataset"
)

// Artifact file names, one per warehouse table.
const (
	CustomersFile = "customers.csv"
	CarriersFile  = "carriers.csv"
	ShipmentsFile = "shipments.csv"
)

const dateFormat = "2006-01-02"

// WriteCSV writes the three CSV artifacts into dir, creating it if
// needed. Output is deterministic: identical datasets produce
// byte-identical files.
func WriteCSV(dir string, ds *dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeTable(filepath.Join(dir, CustomersFile), customerHeader, customerRows(ds)); err != nil {
		return fmt.Errorf("write customers: %w", err)
	}
	if err := writeTable(filepath.Join(dir, CarriersFile), carrierHeader, carrierRows(ds)); err != nil {
		return fmt.Errorf("write carriers: %w", err)
	}
	if err := writeTable(filepath.Join(dir, ShipmentsFile), shipmentHeader, shipmentRows(ds)); err != nil {
		return fmt.Errorf("write shipments: %w", err)
	}
	return nil
}

var customerHeader = []string{
	"customer_id", "customer_name", "customer_region", "customer_segment",
	"customer_quality_score", "signup_date",
}

var carrierHeader = []string{
	"carrier_id", "carrier_name", "carrier_region", "is_3pl_partner",
	"service_level", "carrier_capability_score",
}

var shipmentHeader = []string{
	"shipment_id", "customer_id", "carrier_id", "shipment_date",
	"delivery_time_hours", "cost_usd", "delivered_on_time",
	"carrier_selection_method", "customer_satisfaction", "survey_date",
	"is_post_rollout", "is_algorithmic_selection",
}

func customerRows(ds *dataset.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.Region,
			c.Segment,
			formatFloat(c.QualityScore),
			c.SignupDate.Format(dateFormat),
		})
	}
	return rows
}

func carrierRows(ds *dataset.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Carriers))
	for _, c := range ds.Carriers {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.Region,
			strconv.FormatBool(c.Is3PLPartner),
			c.ServiceLevel,
			formatFloat(c.CapabilityScore),
		})
	}
	return rows
}

func shipmentRows(ds *dataset.Dataset) [][]string {
	rows := make([][]string, 0, len(ds.Shipments))
	for _, sh := range ds.Shipments {
		rows = append(rows, []string{
			sh.ID,
			sh.CustomerID,
			sh.CarrierID,
			sh.Date.Format(dateFormat),
			formatFloat(sh.DeliveryHours),
			formatFloat(sh.CostUSD),
			strconv.FormatBool(sh.OnTime),
			sh.SelectionMethod,
			formatOptionalFloat(sh.Satisfaction),
			formatOptionalDate(sh.SurveyDate),
			strconv.FormatBool(sh.IsPostRollout),
			strconv.FormatBool(sh.IsAlgorithmic),
		})
	}
	return rows
}

func writeTable(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = file.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(dateFormat)
}
