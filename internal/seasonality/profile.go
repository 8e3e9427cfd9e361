//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seasonality implements the calendar profiles that shape
// simulated sales volume and basket size.
package seasonality

import (
	"fmt"
	"sort"
	"time"
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Profile defines the interface for seasonality profiles.
type Profile interface {
	// Name returns the profile name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// DailyTransactions returns the range the number of transactions on
	// the given day is drawn from.
	DailyTransactions(day time.Time) Range

	// Quantity returns the range the quantity of one transaction on the
	// given day is drawn from.
	Quantity(day time.Time) Range
}

var registry = make(map[string]func() Profile)

// Register adds a profile constructor to the registry.
func Register(name string, constructor func() Profile) {
	registry[name] = constructor
}

// Get retrieves a profile by name.
func Get(name string) (Profile, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return constructor(), nil
}

// List returns all registered profile names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("holiday-retail", NewHolidayRetail)
	Register("flat", NewFlat)
}
