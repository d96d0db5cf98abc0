// Package warehouse defines the loader contract for publishing the CSV
// artifacts to an analytical warehouse, plus the shared table schemas.
//
// A load is an idempotent overwrite per table: the loader truncates and
// reloads each table from its artifact, and a failure on one table must
// not prevent attempting the others.
package warehouse

import "context"

// Table names, in load order.
const (
	TableCustomers = "customers"
	TableCarriers  = "carriers"
	TableShipments = "shipments"
)

// Tables maps each table to its CSV artifact file name.
var Tables = []TableArtifact{
	{Name: TableCustomers, File: "customers.csv"},
	{Name: TableCarriers, File: "carriers.csv"},
	{Name: TableShipments, File: "shipments.csv"},
}

// TableArtifact pairs a warehouse table with its artifact file.
type TableArtifact struct {
	Name string
	File string
}

// ColumnType is a warehouse-neutral column type.
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeFloat  ColumnType = "float"
	TypeBool   ColumnType = "bool"
	TypeDate   ColumnType = "date"
)

// Column describes one column of a warehouse table.
type Column struct {
	Name     string
	Type     ColumnType
	Required bool
}

// Schemas holds the column contract for every table.
var Schemas = map[string][]Column{
	TableCustomers: {
		{Name: "customer_id", Type: TypeString, Required: true},
		{Name: "customer_name", Type: TypeString},
		{Name: "customer_region", Type: TypeString},
		{Name: "customer_segment", Type: TypeString},
		{Name: "customer_quality_score", Type: TypeFloat},
		{Name: "signup_date", Type: TypeDate},
	},
	TableCarriers: {
		{Name: "carrier_id", Type: TypeString, Required: true},
		{Name: "carrier_name", Type: TypeString},
		{Name: "carrier_region", Type: TypeString},
		{Name: "is_3pl_partner", Type: TypeBool},
		{Name: "service_level", Type: TypeString},
		{Name: "carrier_capability_score", Type: TypeFloat},
	},
	TableShipments: {
		{Name: "shipment_id", Type: TypeString, Required: true},
		{Name: "customer_id", Type: TypeString},
		{Name: "carrier_id", Type: TypeString},
		{Name: "shipment_date", Type: TypeDate},
		{Name: "delivery_time_hours", Type: TypeFloat},
		{Name: "cost_usd", Type: TypeFloat},
		{Name: "delivered_on_time", Type: TypeBool},
		{Name: "carrier_selection_method", Type: TypeString},
		{Name: "customer_satisfaction", Type: TypeFloat},
		{Name: "survey_date", Type: TypeDate},
		{Name: "is_post_rollout", Type: TypeBool},
		{Name: "is_algorithmic_selection", Type: TypeBool},
	},
}

// Loader publishes CSV artifacts to a warehouse backend.
type Loader interface {
	// EnsureSchema provisions the dataset and tables, tolerating
	// already-existing objects.
	EnsureSchema(ctx context.Context) error

	// LoadTable truncates the named table and reloads it from the CSV
	// artifact at csvPath.
	LoadTable(ctx context.Context, table, csvPath string) error

	Close() error
}
