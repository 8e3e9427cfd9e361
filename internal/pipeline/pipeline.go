//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline ties configuration, generation and the store together:
// schema setup, generation of the table mapping and the ordered load.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/seasonality"
)

// GeneratorOptions translates the configuration into generator options.
func GeneratorOptions(cfg *config.Config) (retail.Options, error) {
	profile, err := seasonality.Get(cfg.DataGeneration.Profile)
	if err != nil {
		return retail.Options{}, err
	}
	dg := cfg.DataGeneration
	return retail.Options{
		NumProducts:    dg.NumProducts,
		NumStores:      dg.NumStores,
		NumCustomers:   dg.NumCustomers,
		NumYears:       dg.NumYears,
		StartYear:      dg.StartYear,
		FeedbackChance: cfg.Feedback.Chance,
		FeedbackTexts:  cfg.Feedback.Texts,
		Profile:        profile,
	}, nil
}

// Generate validates the configuration and generates the full dataset
// from a random source seeded with data_generation.seed.
func Generate(cfg *config.Config) (*retail.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := GeneratorOptions(cfg)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("products", opts.NumProducts).
		Int("stores", opts.NumStores).
		Int("customers", opts.NumCustomers).
		Int("start_year", opts.StartYear).
		Int("years", opts.NumYears).
		Uint64("seed", cfg.DataGeneration.Seed).
		Str("profile", opts.Profile.Name()).
		Msg("Starting data generation")

	faker := datagen.NewFakerWithSeed(cfg.DataGeneration.Seed)
	return retail.NewGenerator(faker, opts).Generate()
}

// GenerateTables generates the dataset and returns it as a mapping of
// table name to table.
func GenerateTables(cfg *config.Config) (map[string]*datagen.Table, error) {
	ds, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return ds.TableMap(), nil
}

// Schemas returns the configured table schemas, or the built-in defaults
// when none are configured.
func Schemas(cfg *config.Config) map[string][]string {
	if len(cfg.TableSchemas) > 0 {
		return cfg.TableSchemas
	}
	return retail.DefaultSchemas()
}

// Setup creates every table in schemas that does not exist yet, in
// sorted table name order.
func Setup(ctx context.Context, store db.Store, schemas map[string][]string) error {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := store.CreateTable(ctx, name, schemas[name]); err != nil {
			return err
		}
		logging.Debug().
			Str("table", name).
			Msg("Table ready")
	}

	logging.Info().
		Int("tables", len(names)).
		Str("backend", store.Backend()).
		Msg("Schema setup complete")
	return nil
}

// Load appends every table to the store in the fixed table order. Each
// table is committed on its own; the first failure stops the load and
// leaves the tables appended so far in place. It returns the number of
// rows appended.
func Load(ctx context.Context, store db.Store, tables map[string]*datagen.Table, batch datagen.BatchInsertConfig) (int64, error) {
	var total int64
	for _, name := range retail.TableOrder {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		table, ok := tables[name]
		if !ok {
			return total, fmt.Errorf("table %s missing from generated data", name)
		}

		logging.Info().
			Str("table", name).
			Int("rows", table.Len()).
			Msg("Appending table")

		if err := store.Append(ctx, table, batch); err != nil {
			return total, fmt.Errorf("failed to load table %s: %w", name, err)
		}
		total += int64(table.Len())
	}
	return total, nil
}

// Run performs a complete load: generate, ensure the tables exist,
// append every table and record run metadata.
func Run(ctx context.Context, cfg *config.Config, store db.Store) error {
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	if loadedAt, err := store.GetMetadataValue(ctx, db.MetaLoadedAt); err == nil && loadedAt != "" {
		logging.Warn().
			Str("loaded_at", loadedAt).
			Msg("Store already holds a previous load; rows will be appended again")
	}

	tables, err := GenerateTables(cfg)
	if err != nil {
		return err
	}

	if err := Setup(ctx, store, Schemas(cfg)); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	batch := datagen.DefaultBatchConfig()
	batch.BatchSize = cfg.Database.BatchSize

	rows, err := Load(ctx, store, tables, batch)
	if err != nil {
		return err
	}

	meta := db.RunMetadata{
		Seed:      cfg.DataGeneration.Seed,
		StartYear: cfg.DataGeneration.StartYear,
		NumYears:  cfg.DataGeneration.NumYears,
		Profile:   cfg.DataGeneration.Profile,
		RowCount:  rows,
	}
	if err := store.SaveMetadata(ctx, meta.Values()); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().
		Int64("rows", rows).
		Int("tables", len(tables)).
		Msg("Data load complete")
	return nil
}
