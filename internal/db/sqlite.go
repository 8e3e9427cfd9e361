package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Register the pure Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// DateLayout is the text form dates are stored in by the SQLite store.
const DateLayout = "2006-01-02"

// sqliteMaxVariables is the default bound parameter limit of SQLite.
const sqliteMaxVariables = 32766

// SQLiteStore stores tables in a single SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database file at path. Its parent
// directory is created as needed.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers onto one SQLite handle.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Msg("Opened SQLite database")

	return &SQLiteStore{db: db, path: path}, nil
}

// Backend implements Store.
func (s *SQLiteStore) Backend() string {
	return "sqlite"
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// CreateTable implements Store.
func (s *SQLiteStore) CreateTable(ctx context.Context, name string, columnDefs []string) error {
	query, err := createTableSQL(name, columnDefs)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return nil
}

// DropTable implements Store.
func (s *SQLiteStore) DropTable(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}
	return nil
}

// ListTables implements Store. The metadata table is not listed.
func (s *SQLiteStore) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT name FROM sqlite_master
        WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name <> ?
        ORDER BY name
    `, metadataTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableInfo implements Store.
func (s *SQLiteStore) TableInfo(ctx context.Context, name string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var c Column
		var pk int
		if err := rows.Scan(&c.Name, &c.Type, &c.NotNull, &pk); err != nil {
			return nil, err
		}
		c.PrimaryKey = pk > 0
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist", name)
	}
	return columns, nil
}

// CountRows implements Store.
func (s *SQLiteStore) CountRows(ctx context.Context, name string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(name)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", name, err)
	}
	return n, nil
}

// Append implements Store. Rows go in as multi-row INSERT statements of
// at most cfg.BatchSize rows; the statement size is also bounded by the
// SQLite parameter limit.
func (s *SQLiteStore) Append(ctx context.Context, table *datagen.Table, cfg datagen.BatchInsertConfig) error {
	if len(table.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", table.Name)
	}

	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = datagen.DefaultBatchConfig().BatchSize
	}
	batchSize = max(1, min(batchSize, sqliteMaxVariables/len(table.Columns)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	progress := datagen.NewProgressReporter(table.Name, int64(table.Len()), cfg.ProgressInterval)
	for _, batch := range table.Batches(batchSize) {
		args := make([]any, 0, len(batch)*len(table.Columns))
		for _, row := range batch {
			for _, v := range row {
				args = append(args, sqliteValue(v))
			}
		}
		query := insertSQL(table.Name, table.Columns, len(batch))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table.Name, err)
		}
		progress.Update(int64(len(batch)))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table.Name, err)
	}
	progress.Done()
	return nil
}

// SaveMetadata implements Store.
func (s *SQLiteStore) SaveMetadata(ctx context.Context, values map[string]string) error {
	if _, err := s.db.ExecContext(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range sortedKeys(values) {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO retailgen_metadata (key, value) VALUES (?, ?)
            ON CONFLICT (key) DO UPDATE SET value = excluded.value
        `, key, values[key])
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit metadata: %w", err)
	}

	logging.Debug().
		Int("keys", len(values)).
		Msg("Saved metadata")
	return nil
}

// GetMetadataValue implements Store.
func (s *SQLiteStore) GetMetadataValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
        SELECT value FROM retailgen_metadata WHERE key = ?
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// Backup implements Store using VACUUM INTO. The target must not exist.
func (s *SQLiteStore) Backup(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("backup path is empty")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("backup file %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}

	query := fmt.Sprintf("VACUUM INTO '%s'", strings.ReplaceAll(path, "'", "''"))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to back up database to %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Msg("Database backed up")
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func insertSQL(table string, columns []string, rows int) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", quoteIdent(table), strings.Join(quoted, ", "))
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(placeholders)
	}
	return b.String()
}

func sqliteValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(DateLayout)
	}
	return v
}
