//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retail generates the fictitious retail dataset: products, stores,
// customers, a day calendar, sales transactions, suppliers, feedback and
// loyalty points.
package retail

import (
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/seasonality"
)

// Table names, in load order.
const (
	TableProduct  = "product"
	TableStore    = "store"
	TableCustomer = "customer"
	TableTime     = "time"
	TableSales    = "sales"
	TableSupplier = "supplier"
	TableFeedback = "feedback"
	TableLoyalty  = "loyalty"
)

// TableOrder is the fixed order tables are generated and loaded in.
var TableOrder = []string{
	TableProduct, TableStore, TableCustomer, TableTime,
	TableSales, TableSupplier, TableFeedback, TableLoyalty,
}

// Options controls the size and shape of the dataset.
type Options struct {
	NumProducts  int
	NumStores    int
	NumCustomers int
	NumYears     int
	StartYear    int

	// FeedbackChance is the probability a transaction gets feedback.
	FeedbackChance float64

	// FeedbackTexts maps feedback text to rating.
	FeedbackTexts map[string]int

	// Profile shapes daily volume and basket size. Defaults to
	// holiday-retail when nil.
	Profile seasonality.Profile
}

// Generator produces the retail dataset from a single random source.
type Generator struct {
	faker *datagen.Faker
	opts  Options
}

// NewGenerator creates a generator. All randomness is drawn from faker,
// so a seeded faker makes the whole dataset reproducible.
func NewGenerator(faker *datagen.Faker, opts Options) *Generator {
	if opts.Profile == nil {
		opts.Profile = seasonality.NewHolidayRetail()
	}
	return &Generator{faker: faker, opts: opts}
}

// EndYear returns the last calendar year covered.
func (o Options) EndYear() int {
	return o.StartYear + o.NumYears - 1
}

// Dates returns every calendar day from January 1 of the start year to
// December 31 of the end year.
func (o Options) Dates() []time.Time {
	start := time.Date(o.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(o.EndYear(), time.December, 31, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Dataset holds every generated entity collection.
type Dataset struct {
	Products  []Product
	Stores    []Store
	Customers []Customer
	Time      []Day
	Sales     []Sale
	Suppliers []Supplier
	Feedback  []Feedback
	Loyalty   []Loyalty
}

// Generate runs every generator in order: products, stores, customers,
// time, sales, suppliers, feedback, loyalty.
func (g *Generator) Generate() (*Dataset, error) {
	ds := &Dataset{}

	logging.Info().Msg("Generating product data")
	ds.Products = g.GenerateProducts()

	logging.Info().Msg("Generating store data")
	ds.Stores = g.GenerateStores()

	logging.Info().Msg("Generating customer data")
	ds.Customers = g.GenerateCustomers()

	logging.Info().Msg("Generating time data")
	ds.Time = g.GenerateTime()

	logging.Info().Msg("Generating sales data")
	sales, err := g.GenerateSales(ds.Products, CustomerIDs(ds.Customers))
	if err != nil {
		return nil, fmt.Errorf("failed to generate sales: %w", err)
	}
	ds.Sales = sales

	logging.Info().Msg("Generating supplier data")
	ds.Suppliers = g.GenerateSuppliers()

	logging.Info().Msg("Generating feedback data")
	feedback, err := g.GenerateFeedback(ds.Sales)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}
	ds.Feedback = feedback

	logging.Info().Msg("Calculating loyalty points from purchase history")
	ds.Loyalty = g.CalculateLoyalty(ds.Sales)

	logging.Info().
		Int("products", len(ds.Products)).
		Int("customers", len(ds.Customers)).
		Int("sales", len(ds.Sales)).
		Int("feedback", len(ds.Feedback)).
		Msg("Data generation complete")

	return ds, nil
}

// Tables renders the dataset as tables in load order.
func (ds *Dataset) Tables() []*datagen.Table {
	tables := []*datagen.Table{
		rowsTable(TableProduct, productColumns, ds.Products),
		rowsTable(TableStore, storeColumns, ds.Stores),
		rowsTable(TableCustomer, customerColumns, ds.Customers),
		rowsTable(TableTime, timeColumns, ds.Time),
		rowsTable(TableSales, salesColumns, ds.Sales),
		rowsTable(TableSupplier, supplierColumns, ds.Suppliers),
		rowsTable(TableFeedback, feedbackColumns, ds.Feedback),
		rowsTable(TableLoyalty, loyaltyColumns, ds.Loyalty),
	}
	return tables
}

// TableMap renders the dataset as a mapping of table name to table.
func (ds *Dataset) TableMap() map[string]*datagen.Table {
	m := make(map[string]*datagen.Table, len(TableOrder))
	for _, t := range ds.Tables() {
		m[t.Name] = t
	}
	return m
}

type rower interface {
	Row() []any
}

func rowsTable[T rower](name string, columns []string, records []T) *datagen.Table {
	t := datagen.NewTable(name, columns, len(records))
	for _, r := range records {
		t.Rows = append(t.Rows, r.Row())
	}
	return t
}
