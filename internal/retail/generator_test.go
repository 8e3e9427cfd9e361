package retail

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

func testOptions() Options {
	return Options{
		NumProducts:    10,
		NumStores:      5,
		NumCustomers:   100,
		NumYears:       1,
		StartYear:      2023,
		FeedbackChance: 0.1,
		FeedbackTexts: map[string]int{
			"Great product, loved it!": 5,
			"Not worth the money.":     1,
		},
	}
}

func newTestGenerator(opts Options) *Generator {
	return NewGenerator(datagen.NewFakerWithSeed(42), opts)
}

func TestGenerateEndToEnd(t *testing.T) {
	ds, err := newTestGenerator(testOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.Time) != 365 {
		t.Errorf("Expected 365 time rows, got %d", len(ds.Time))
	}
	if len(ds.Products) != 10 {
		t.Fatalf("Expected 10 products, got %d", len(ds.Products))
	}
	if ds.Products[0].ID != "P00000" || ds.Products[9].ID != "P00009" {
		t.Errorf("Unexpected product ids %s..%s", ds.Products[0].ID, ds.Products[9].ID)
	}
	if len(ds.Stores) != 5 {
		t.Errorf("Expected 5 stores, got %d", len(ds.Stores))
	}
	if n := len(ds.Sales); n < 365*50 || n > 365*300 {
		t.Errorf("Sales row count %d outside [%d, %d]", n, 365*50, 365*300)
	}

	tables := ds.Tables()
	if len(tables) != len(TableOrder) {
		t.Fatalf("Expected %d tables, got %d", len(TableOrder), len(tables))
	}
	for i, tbl := range tables {
		if tbl.Name != TableOrder[i] {
			t.Errorf("Table %d: expected %s, got %s", i, TableOrder[i], tbl.Name)
		}
		for _, row := range tbl.Rows {
			if len(row) != len(tbl.Columns) {
				t.Fatalf("Table %s: row has %d values for %d columns", tbl.Name, len(row), len(tbl.Columns))
			}
		}
	}

	m := ds.TableMap()
	if m[TableSales].Len() != len(ds.Sales) {
		t.Errorf("TableMap sales has %d rows, want %d", m[TableSales].Len(), len(ds.Sales))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := newTestGenerator(testOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := newTestGenerator(testOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	ta, tb := a.Tables(), b.Tables()
	for i := range ta {
		if !reflect.DeepEqual(ta[i].Rows, tb[i].Rows) {
			t.Errorf("Table %s differs between runs with the same seed", ta[i].Name)
		}
	}

	c, err := NewGenerator(datagen.NewFakerWithSeed(7), testOptions()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reflect.DeepEqual(a.Tables()[0].Rows, c.Tables()[0].Rows) {
		t.Error("Different seeds produced identical products")
	}
}

func TestGenerateProducts(t *testing.T) {
	opts := testOptions()
	opts.NumProducts = 500
	products := newTestGenerator(opts).GenerateProducts()

	minPrice := decimal.NewFromFloat(5.0)
	maxPrice := decimal.NewFromFloat(500.0)
	for i, p := range products {
		if p.ID != ProductID(i) {
			t.Errorf("Product %d has id %s", i, p.ID)
		}
		if !p.Cost.IsPositive() || !p.Cost.LessThan(p.Price) {
			t.Errorf("%s: cost %s not in (0, %s)", p.ID, p.Cost, p.Price)
		}
		if p.Price.LessThan(minPrice) || p.Price.GreaterThan(maxPrice) {
			t.Errorf("%s: price %s out of range", p.ID, p.Price)
		}
		if !p.Price.Equal(p.Price.Round(2)) || !p.Cost.Equal(p.Cost.Round(2)) {
			t.Errorf("%s: price or cost has more than 2 decimals", p.ID)
		}
		if !strings.HasPrefix(p.SupplierID, "SUP") {
			t.Errorf("%s: bad supplier id %s", p.ID, p.SupplierID)
		}
		found := false
		for _, name := range productNames[p.Category] {
			if name == p.Name {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: name %q not in category %s", p.ID, p.Name, p.Category)
		}
	}
}

func TestGenerateStores(t *testing.T) {
	tests := []struct {
		name      string
		numStores int
		want      int
	}{
		{"few", 5, 5},
		{"all locations", 50, 50},
		{"capped", 80, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.NumStores = tt.numStores
			stores := newTestGenerator(opts).GenerateStores()
			if len(stores) != tt.want {
				t.Fatalf("Expected %d stores, got %d", tt.want, len(stores))
			}
			for i, s := range stores {
				if s.Location != StoreLocations[i] {
					t.Errorf("Store %s paired with %s, want %s", s.ID, s.Location, StoreLocations[i])
				}
				if s.Size < 5000 || s.Size > 20000 {
					t.Errorf("Store %s size %f out of range", s.ID, s.Size)
				}
				if s.Type != "Warehouse" && s.Type != "Retail Outlet" {
					t.Errorf("Store %s has type %s", s.ID, s.Type)
				}
			}
			if stores[0].ID != "S000" {
				t.Errorf("First store id = %s, want S000", stores[0].ID)
			}
		})
	}
}

func TestGenerateSuppliers(t *testing.T) {
	suppliers := newTestGenerator(testOptions()).GenerateSuppliers()
	if len(suppliers) == 0 || len(suppliers) > 50 {
		t.Fatalf("Unexpected supplier count %d", len(suppliers))
	}

	seen := make(map[string]bool)
	for _, s := range suppliers {
		if seen[s.ID] {
			t.Errorf("Duplicate supplier %s", s.ID)
		}
		seen[s.ID] = true
		if s.Name != "Supplier_"+s.ID {
			t.Errorf("Supplier %s has name %s", s.ID, s.Name)
		}
		if s.Email != "contact@"+strings.ToLower(s.Name)+".com" {
			t.Errorf("Supplier %s has email %s", s.ID, s.Email)
		}
		if s.LeadTimeDays < 7 || s.LeadTimeDays > 30 {
			t.Errorf("Supplier %s lead time %d out of range", s.ID, s.LeadTimeDays)
		}
	}
}

func TestNewDay(t *testing.T) {
	tests := []struct {
		date    time.Time
		weekday string
		week    int
		month   string
		quarter string
	}{
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "Sunday", 52, "January", "Q1"},
		{time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Monday", 1, "January", "Q1"},
		{time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), "Saturday", 13, "April", "Q2"},
		{time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC), "Saturday", 39, "September", "Q3"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "Sunday", 52, "December", "Q4"},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			d := NewDay(tt.date)
			if d.DayOfWeek != tt.weekday {
				t.Errorf("DayOfWeek = %s, want %s", d.DayOfWeek, tt.weekday)
			}
			if d.WeekOfYear != tt.week {
				t.Errorf("WeekOfYear = %d, want %d", d.WeekOfYear, tt.week)
			}
			if d.Month != tt.month {
				t.Errorf("Month = %s, want %s", d.Month, tt.month)
			}
			if d.Quarter != tt.quarter {
				t.Errorf("Quarter = %s, want %s", d.Quarter, tt.quarter)
			}
			if d.Year != 2023 {
				t.Errorf("Year = %d, want 2023", d.Year)
			}
		})
	}
}

func TestGenerateTime(t *testing.T) {
	opts := testOptions()
	opts.StartYear = 2023
	opts.NumYears = 2
	days := newTestGenerator(opts).GenerateTime()

	// 2024 is a leap year
	if len(days) != 365+366 {
		t.Fatalf("Expected %d days, got %d", 365+366, len(days))
	}
	first, last := days[0].Date, days[len(days)-1].Date
	if !first.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("First day = %v", first)
	}
	if !last.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Last day = %v", last)
	}
}
