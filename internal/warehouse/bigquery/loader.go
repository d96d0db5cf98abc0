// Package bigquery provides the production warehouse backend: dataset
// and table provisioning plus truncate-reload CSV load jobs.
package bigquery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/leadloom/freightsim/internal/warehouse"
)

// Config identifies the target dataset.
type Config struct {
	ProjectID string
	DatasetID string
	Location  string
}

// Loader publishes CSV artifacts to BigQuery.
type Loader struct {
	client *bigquery.Client
	config Config
}

// New creates a Loader for the given project and dataset.
func New(ctx context.Context, cfg Config) (*Loader, error) {
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, fmt.Errorf("project id is required")
	}
	if strings.TrimSpace(cfg.DatasetID) == "" {
		return nil, fmt.Errorf("dataset id is required")
	}
	if cfg.Location == "" {
		cfg.Location = "US"
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &Loader{client: client, config: cfg}, nil
}

// Close releases the underlying client.
func (l *Loader) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

// EnsureSchema creates the dataset and every table with its explicit
// schema, tolerating objects that already exist.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	ds := l.client.Dataset(l.config.DatasetID)
	err := ds.Create(ctx, &bigquery.DatasetMetadata{Location: l.config.Location})
	if err != nil && !isAlreadyExists(err) {
		return fmt.Errorf("create dataset %s: %w", l.config.DatasetID, err)
	}

	for _, artifact := range warehouse.Tables {
		table := ds.Table(artifact.Name)
		meta := &bigquery.TableMetadata{Schema: tableSchema(artifact.Name)}
		if err := table.Create(ctx, meta); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("create table %s: %w", artifact.Name, err)
		}
	}
	return nil
}

// LoadTable runs a CSV load job with truncate-write disposition, so a
// reload fully replaces the table contents.
func (l *Loader) LoadTable(ctx context.Context, table, csvPath string) error {
	if _, ok := warehouse.Schemas[table]; !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer file.Close()

	source := bigquery.NewReaderSource(file)
	source.SourceFormat = bigquery.CSV
	source.SkipLeadingRows = 1
	source.Schema = tableSchema(table)

	loader := l.client.Dataset(l.config.DatasetID).Table(table).LoaderFrom(source)
	loader.WriteDisposition = bigquery.WriteTruncate

	job, err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("start load job: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait for load job: %w", err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("load job failed: %w", err)
	}
	return nil
}

// tableSchema maps the warehouse-neutral column contract to a BigQuery
// schema.
func tableSchema(table string) bigquery.Schema {
	columns := warehouse.Schemas[table]
	schema := make(bigquery.Schema, 0, len(columns))
	for _, col := range columns {
		schema = append(schema, &bigquery.FieldSchema{
			Name:     col.Name,
			Type:     fieldType(col.Type),
			Required: col.Required,
		})
	}
	return schema
}

func fieldType(t warehouse.ColumnType) bigquery.FieldType {
	switch t {
	case warehouse.TypeFloat:
		return bigquery.FloatFieldType
	case warehouse.TypeBool:
		return bigquery.BooleanFieldType
	case warehouse.TypeDate:
		return bigquery.DateFieldType
	default:
		return bigquery.StringFieldType
	}
}

func isAlreadyExists(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 409
	}
	return false
}

var _ warehouse.Loader = (*Loader)(nil)
