//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"sort"
	"strconv"
	"time"

	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

const metadataTable = "retailgen_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS retailgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// Metadata keys.
const (
	MetaVersion   = "version"
	MetaSeed      = "seed"
	MetaStartYear = "start_year"
	MetaNumYears  = "num_years"
	MetaProfile   = "profile"
	MetaLoadedAt  = "loaded_at"
	MetaRowCount  = "row_count"
)

// RunMetadata describes one completed load.
type RunMetadata struct {
	Seed      uint64
	StartYear int
	NumYears  int
	Profile   string
	RowCount  int64
	LoadedAt  time.Time
}

// Values renders the metadata as key/value pairs.
func (m RunMetadata) Values() map[string]string {
	loadedAt := m.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now()
	}
	return map[string]string{
		MetaVersion:   version.Short(),
		MetaSeed:      strconv.FormatUint(m.Seed, 10),
		MetaStartYear: strconv.Itoa(m.StartYear),
		MetaNumYears:  strconv.Itoa(m.NumYears),
		MetaProfile:   m.Profile,
		MetaLoadedAt:  loadedAt.UTC().Format(time.RFC3339),
		MetaRowCount:  strconv.FormatInt(m.RowCount, 10),
	}
}

// sortedKeys returns the keys of values in sorted order so upserts run in
// a stable sequence.
func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
