package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// PostgresStore stores tables in the current schema of a PostgreSQL
// database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database at connString.
func OpenPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := Connect(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

// Backend implements Store.
func (s *PostgresStore) Backend() string {
	return "postgres"
}

// CreateTable implements Store.
func (s *PostgresStore) CreateTable(ctx context.Context, name string, columnDefs []string) error {
	query, err := createTableSQL(name, columnDefs)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return nil
}

// DropTable implements Store.
func (s *PostgresStore) DropTable(ctx context.Context, name string) error {
	if _, err := s.pool.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{name}.Sanitize()); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}
	return nil
}

// ListTables implements Store. The metadata table is not listed.
func (s *PostgresStore) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT table_name FROM information_schema.tables
        WHERE table_schema = current_schema()
          AND table_type = 'BASE TABLE'
          AND table_name <> $1
        ORDER BY table_name
    `, metadataTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// TableInfo implements Store.
func (s *PostgresStore) TableInfo(ctx context.Context, name string) ([]Column, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT c.column_name, c.data_type, c.is_nullable = 'NO',
               EXISTS (
                   SELECT 1
                   FROM information_schema.table_constraints tc
                   JOIN information_schema.key_column_usage k
                     ON k.constraint_name = tc.constraint_name
                    AND k.table_schema = tc.table_schema
                   WHERE tc.constraint_type = 'PRIMARY KEY'
                     AND k.table_schema = c.table_schema
                     AND k.table_name = c.table_name
                     AND k.column_name = c.column_name
               )
        FROM information_schema.columns c
        WHERE c.table_schema = current_schema() AND c.table_name = $1
        ORDER BY c.ordinal_position
    `, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}
	columns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Column, error) {
		var c Column
		err := row.Scan(&c.Name, &c.Type, &c.NotNull, &c.PrimaryKey)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist", name)
	}
	return columns, nil
}

// CountRows implements Store.
func (s *PostgresStore) CountRows(ctx context.Context, name string) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, "SELECT count(*) FROM "+pgx.Identifier{name}.Sanitize()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", name, err)
	}
	return n, nil
}

// Append implements Store using COPY, one CopyFrom per batch inside a
// single transaction. Column names are folded to lower case to match
// tables created from unquoted column definitions.
func (s *PostgresStore) Append(ctx context.Context, table *datagen.Table, cfg datagen.BatchInsertConfig) error {
	if len(table.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", table.Name)
	}

	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = datagen.DefaultBatchConfig().BatchSize
	}

	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = strings.ToLower(c)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table.Name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	progress := datagen.NewProgressReporter(table.Name, int64(table.Len()), cfg.ProgressInterval)
	for _, batch := range table.Batches(batchSize) {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{table.Name}, columns, pgx.CopyFromRows(batch))
		if err != nil {
			return fmt.Errorf("failed to copy into %s: %w", table.Name, err)
		}
		progress.Update(n)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table.Name, err)
	}
	progress.Done()
	return nil
}

// SaveMetadata implements Store.
func (s *PostgresStore) SaveMetadata(ctx context.Context, values map[string]string) error {
	if _, err := s.pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for _, key := range sortedKeys(values) {
		_, err := s.pool.Exec(ctx, `
            INSERT INTO retailgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, values[key])
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Int("keys", len(values)).
		Msg("Saved metadata")
	return nil
}

// GetMetadataValue implements Store.
func (s *PostgresStore) GetMetadataValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, `
        SELECT value FROM retailgen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// Backup is not provided for PostgreSQL; use pg_dump.
func (s *PostgresStore) Backup(ctx context.Context, path string) error {
	return fmt.Errorf("backup of a PostgreSQL store: %w", ErrUnsupported)
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
