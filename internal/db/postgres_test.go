//go:build integration
// +build integration

package db

import (
	"context"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/testutil"
)

func TestPostgresStore(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr := testutil.CreateTestDB(t, baseConnStr, "store")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, err := OpenPostgres(ctx, connStr)
	if err != nil {
		t.Fatalf("OpenPostgres failed: %v", err)
	}
	defer store.Close()

	if err := store.CreateTable(ctx, "sales", salesDefs); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}

	cfg := datagen.BatchInsertConfig{BatchSize: 3, ProgressInterval: 5}
	if err := store.Append(ctx, salesTable(10), cfg); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	n, err := store.CountRows(ctx, "sales")
	if err != nil {
		t.Fatalf("CountRows failed: %v", err)
	}
	if n != 10 {
		t.Errorf("Expected 10 rows, got %d", n)
	}

	columns, err := store.TableInfo(ctx, "sales")
	if err != nil {
		t.Fatalf("TableInfo failed: %v", err)
	}
	if len(columns) != 4 || columns[0].Name != "transaction_id" || !columns[0].NotNull {
		t.Errorf("Unexpected columns %+v", columns)
	}
	if columns[1].Type != "date" {
		t.Errorf("Date column type = %s, want date", columns[1].Type)
	}

	if err := store.SaveMetadata(ctx, RunMetadata{Seed: 42, Profile: "flat"}.Values()); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}
	seed, err := store.GetMetadataValue(ctx, MetaSeed)
	if err != nil || seed != "42" {
		t.Errorf("GetMetadataValue(seed) = %q, %v", seed, err)
	}

	tables, err := store.ListTables(ctx)
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if len(tables) != 1 || tables[0] != "sales" {
		t.Errorf("ListTables = %v, want [sales]", tables)
	}

	if err := store.DropTable(ctx, "sales"); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}
	tables, _ = store.ListTables(ctx)
	if len(tables) != 0 {
		t.Errorf("ListTables after drop = %v", tables)
	}
}
