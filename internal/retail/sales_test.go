package retail

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/seasonality"
)

func TestGenerateSales(t *testing.T) {
	tests := []struct {
		name    string
		profile seasonality.Profile
	}{
		{"holiday-retail", seasonality.NewHolidayRetail()},
		{"flat", seasonality.NewFlat()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Profile = tt.profile
			g := newTestGenerator(opts)
			products := g.GenerateProducts()
			customerIDs := CustomerIDs(g.GenerateCustomers())

			sales, err := g.GenerateSales(products, customerIDs)
			if err != nil {
				t.Fatalf("GenerateSales failed: %v", err)
			}

			prices := make(map[string]decimal.Decimal)
			for _, p := range products {
				prices[p.ID] = p.Price
			}

			perDay := make(map[time.Time]int)
			for i, s := range sales {
				if s.TransactionID != TransactionID(i+1) {
					t.Fatalf("Transaction %d has id %s", i, s.TransactionID)
				}
				perDay[s.Date]++

				if !tt.profile.Quantity(s.Date).Contains(s.Quantity) {
					t.Errorf("%s: quantity %d outside %v", s.TransactionID, s.Quantity, tt.profile.Quantity(s.Date))
				}
				want := prices[s.ProductID].Mul(decimal.NewFromInt(int64(s.Quantity))).Round(2)
				if !s.Amount.Equal(want) {
					t.Errorf("%s: amount %s, want %s", s.TransactionID, s.Amount, want)
				}
			}

			for _, day := range opts.Dates() {
				if !tt.profile.DailyTransactions(day).Contains(perDay[day]) {
					t.Errorf("%s: %d transactions outside %v", day.Format("2006-01-02"), perDay[day],
						tt.profile.DailyTransactions(day))
				}
			}
		})
	}
}

func TestGenerateSalesStoreLocation(t *testing.T) {
	g := newTestGenerator(testOptions())
	sales, err := g.GenerateSales(g.GenerateProducts(), []string{"C0001"})
	if err != nil {
		t.Fatalf("GenerateSales failed: %v", err)
	}

	locations := make(map[string]bool)
	for _, loc := range StoreLocations {
		locations[loc] = true
	}
	for _, s := range sales[:100] {
		if !locations[s.StoreID] {
			t.Errorf("%s: store %q is not a known location", s.TransactionID, s.StoreID)
		}
		if s.CustomerID != "C0001" {
			t.Errorf("%s: customer %s", s.TransactionID, s.CustomerID)
		}
	}
}

func TestGenerateSalesErrors(t *testing.T) {
	g := newTestGenerator(testOptions())
	products := g.GenerateProducts()

	if _, err := g.GenerateSales(nil, []string{"C0001"}); err == nil {
		t.Error("Expected error for empty product table")
	}
	if _, err := g.GenerateSales(products, nil); err == nil {
		t.Error("Expected error for empty customer list")
	}
}
