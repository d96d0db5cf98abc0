// Package sqlite provides a local SQLite warehouse backend, used to
// exercise the loader contract without a cloud project.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leadloom/freightsim/internal/platform/storage/sqlitemigrate"
	"github.com/leadloom/freightsim/internal/warehouse"
	"github.com/leadloom/freightsim/internal/warehouse/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed warehouse loader.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the SQLite warehouse at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("warehouse path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create warehouse dir: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// EnsureSchema applies the embedded schema migrations.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("warehouse is not open")
	}
	if err := sqlitemigrate.Apply(ctx, s.sqlDB, migrations.FS); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// LoadTable truncates the named table and reloads it from the CSV
// artifact at csvPath, in one transaction.
func (s *Store) LoadTable(ctx context.Context, table, csvPath string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("warehouse is not open")
	}
	columns, ok := warehouse.Schemas[table]
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	rows, err := readArtifact(csvPath, columns)
	if err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("truncate %s: %w", table, err)
	}

	insertSQL := insertStatement(table, columns)
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}

	for i, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("insert %s row %d: %w", table, i+1, err)
		}
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("close insert statement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// readArtifact parses a CSV artifact into typed value rows matching the
// table columns. Empty fields become NULLs.
func readArtifact(csvPath string, columns []warehouse.Column) ([][]any, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(columns)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("artifact %s is empty", csvPath)
	}

	header := records[0]
	for i, col := range columns {
		if header[i] != col.Name {
			return nil, fmt.Errorf("artifact column %d is %q, want %q", i, header[i], col.Name)
		}
	}

	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]any, len(columns))
		for i, col := range columns {
			value, err := convertField(col, record[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func convertField(col warehouse.Column, raw string) (any, error) {
	if raw == "" {
		if col.Required {
			return nil, fmt.Errorf("required field is empty")
		}
		return nil, nil
	}

	switch col.Type {
	case warehouse.TypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse float %q: %w", raw, err)
		}
		return v, nil
	case warehouse.TypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", raw, err)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func insertStatement(table string, columns []warehouse.Column) string {
	names := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(marks, ", "))
}

var _ warehouse.Loader = (*Store)(nil)
