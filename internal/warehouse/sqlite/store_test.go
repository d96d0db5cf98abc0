package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leadloom/freightsim/internal/export"
	"github.com/leadloom/freightsim/internal/simulate"
	"github.com/leadloom/freightsim/internal/warehouse"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "warehouse.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func writeArtifacts(t *testing.T) string {
	t.Helper()
	cfg := simulate.DefaultConfig()
	cfg.Seed = 42
	ds, err := simulate.New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	dir := t.TempDir()
	if err := export.WriteCSV(dir, ds); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return dir
}

func (s *Store) countRows(t *testing.T, table string) int {
	t.Helper()
	var count int
	if err := s.sqlDB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store := openTempStore(t)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("re-ensure schema: %v", err)
	}
}

func TestLoadTables(t *testing.T) {
	store := openTempStore(t)
	dir := writeArtifacts(t)

	for _, artifact := range warehouse.Tables {
		path := filepath.Join(dir, artifact.File)
		if err := store.LoadTable(context.Background(), artifact.Name, path); err != nil {
			t.Fatalf("load %s: %v", artifact.Name, err)
		}
	}

	if got := store.countRows(t, warehouse.TableCustomers); got != 120 {
		t.Fatalf("customers: got %d rows, want 120", got)
	}
	if got := store.countRows(t, warehouse.TableCarriers); got != 15 {
		t.Fatalf("carriers: got %d rows, want 15", got)
	}
	if got := store.countRows(t, warehouse.TableShipments); got != 800 {
		t.Fatalf("shipments: got %d rows, want 800", got)
	}
}

func TestLoadTableTruncatesBeforeReload(t *testing.T) {
	store := openTempStore(t)
	dir := writeArtifacts(t)
	path := filepath.Join(dir, export.CustomersFile)

	for i := 0; i < 2; i++ {
		if err := store.LoadTable(context.Background(), warehouse.TableCustomers, path); err != nil {
			t.Fatalf("load %d: %v", i+1, err)
		}
	}
	if got := store.countRows(t, warehouse.TableCustomers); got != 120 {
		t.Fatalf("reload duplicated rows: got %d, want 120", got)
	}
}

func TestLoadTableNullableColumns(t *testing.T) {
	store := openTempStore(t)
	dir := writeArtifacts(t)
	path := filepath.Join(dir, export.ShipmentsFile)

	if err := store.LoadTable(context.Background(), warehouse.TableShipments, path); err != nil {
		t.Fatalf("load shipments: %v", err)
	}

	var nulls int
	err := store.sqlDB.QueryRow(
		"SELECT COUNT(*) FROM shipments WHERE customer_satisfaction IS NULL").Scan(&nulls)
	if err != nil {
		t.Fatalf("count nulls: %v", err)
	}
	if nulls == 0 || nulls == 800 {
		t.Fatalf("expected a mix of surveyed and unsurveyed rows, got %d nulls", nulls)
	}

	var mismatched int
	err = store.sqlDB.QueryRow(
		"SELECT COUNT(*) FROM shipments WHERE (customer_satisfaction IS NULL) != (survey_date IS NULL)").Scan(&mismatched)
	if err != nil {
		t.Fatalf("count mismatches: %v", err)
	}
	if mismatched != 0 {
		t.Fatalf("%d rows with unpaired satisfaction/survey date", mismatched)
	}
}

func TestLoadTableUnknownTable(t *testing.T) {
	store := openTempStore(t)
	if err := store.LoadTable(context.Background(), "orders", "orders.csv"); err == nil {
		t.Fatal("expected error for unknown table")
	}
}

func TestLoadTableMissingArtifact(t *testing.T) {
	store := openTempStore(t)
	err := store.LoadTable(context.Background(), warehouse.TableCustomers,
		filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
