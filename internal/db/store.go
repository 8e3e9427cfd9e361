package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// ErrUnsupported is returned by operations a backend does not provide.
var ErrUnsupported = errors.New("operation not supported by this store")

// Column describes one column of a stored table.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// Store is a relational store the retail tables are appended to.
type Store interface {
	// Backend returns "sqlite" or "postgres".
	Backend() string

	// CreateTable creates the table from column definitions if it does
	// not exist.
	CreateTable(ctx context.Context, name string, columnDefs []string) error

	// DropTable drops the table if it exists.
	DropTable(ctx context.Context, name string) error

	// ListTables returns the user tables in sorted order.
	ListTables(ctx context.Context) ([]string, error)

	// TableInfo returns the columns of a table in declaration order.
	TableInfo(ctx context.Context, name string) ([]Column, error)

	// CountRows returns the number of rows in a table.
	CountRows(ctx context.Context, name string) (int64, error)

	// Append inserts every row of the table inside one transaction.
	Append(ctx context.Context, table *datagen.Table, cfg datagen.BatchInsertConfig) error

	// SaveMetadata upserts run metadata.
	SaveMetadata(ctx context.Context, values map[string]string) error

	// GetMetadataValue retrieves a single metadata value by key.
	GetMetadataValue(ctx context.Context, key string) (string, error)

	// Backup writes a consistent copy of the store to path.
	Backup(ctx context.Context, path string) error

	Close() error
}

// Open opens the PostgreSQL store when a connection string is configured
// and the SQLite store at Path otherwise.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	if cfg.Connection != "" {
		return OpenPostgres(ctx, cfg.Connection)
	}
	return OpenSQLite(ctx, cfg.Path)
}

// quoteIdent quotes an identifier for both SQLite and PostgreSQL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createTableSQL(name string, columnDefs []string) (string, error) {
	if name == "" {
		return "", errors.New("table name is empty")
	}
	if len(columnDefs) == 0 {
		return "", fmt.Errorf("table %s has no column definitions", name)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(name), strings.Join(columnDefs, ", ")), nil
}
