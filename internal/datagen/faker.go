//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities.
package datagen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Faker is the random source shared by the generators of one run.
// It is not safe for concurrent use.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Chance reports whether a uniform draw in [0, 1) falls below p.
func (f *Faker) Chance(p float64) bool {
	return f.faker.Float64() < p
}

// Price generates a uniform amount between min and max rounded to cents.
func (f *Faker) Price(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(f.Float64(min, max)).Round(2)
}

// Phone generates a North American number formatted as +1-XXX-XXX-XXXX.
func (f *Faker) Phone() string {
	return fmt.Sprintf("+1-%d-%d-%d", f.Int(100, 999), f.Int(100, 999), f.Int(1000, 9999))
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// Sample returns n distinct elements of items chosen without replacement,
// in selection order. n is clamped to len(items). items is not modified.
func Sample[T any](f *Faker, items []T, n int) []T {
	n = min(max(n, 0), len(items))
	pool := make([]T, len(items))
	copy(pool, items)

	// Partial Fisher-Yates: the first n slots hold the sample.
	for i := 0; i < n; i++ {
		j := f.Int(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
