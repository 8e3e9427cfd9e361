//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for loading into PostgreSQL.
// Run with: go test -tags=integration ./internal/pipeline/...
// Requires PostgreSQL to be available.
// Set PGEDGE_TEST_CONN environment variable to override connection string.

package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/pipeline"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/testutil"
)

// TestPostgresLoadIntegration loads the retail dataset end-to-end.
func TestPostgresLoadIntegration(t *testing.T) {
	// Check if PostgreSQL is available
	baseConnStr := testutil.SkipIfNoPostgres(t)

	connStr := testutil.CreateTestDB(t, baseConnStr, "load")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := config.DefaultConfig()
	cfg.DataGeneration.NumProducts = 10
	cfg.DataGeneration.NumStores = 5
	cfg.DataGeneration.NumCustomers = 100
	cfg.Database.Connection = connStr

	store, err := db.Open(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	t.Log("Loading data...")
	if err := pipeline.Run(ctx, cfg, store); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	tables, err := pipeline.GenerateTables(cfg)
	if err != nil {
		t.Fatalf("GenerateTables failed: %v", err)
	}
	for _, name := range retail.TableOrder {
		n, err := store.CountRows(ctx, name)
		if err != nil {
			t.Fatalf("CountRows(%s) failed: %v", name, err)
		}
		if n != int64(tables[name].Len()) {
			t.Errorf("%s: %d rows stored, %d generated", name, n, tables[name].Len())
		}
		t.Logf("%s: %d rows", name, n)
	}

	profile, err := store.GetMetadataValue(ctx, db.MetaProfile)
	if err != nil || profile != "holiday-retail" {
		t.Errorf("profile metadata = %q, %v", profile, err)
	}
}
