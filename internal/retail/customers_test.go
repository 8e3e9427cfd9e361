package retail

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateCustomersCohorts(t *testing.T) {
	opts := testOptions()
	opts.NumCustomers = 10
	opts.NumYears = 3
	customers := newTestGenerator(opts).GenerateCustomers()

	byYear := make(map[int][]Customer)
	for _, c := range customers {
		byYear[c.JoinDate.Year()] = append(byYear[c.JoinDate.Year()], c)
	}

	// First year has no pool to retain from.
	if got := len(byYear[2023]); got != 6 {
		t.Errorf("2023: expected 6 customers, got %d", got)
	}
	for _, year := range []int{2024, 2025} {
		if got := len(byYear[year]); got != 10 {
			t.Errorf("%d: expected 10 customers, got %d", year, got)
		}
	}

	seen := make(map[string]bool)
	for _, year := range []int{2023, 2024, 2025} {
		cohort := byYear[year]
		inYear := make(map[string]bool)
		for i, c := range cohort {
			if inYear[c.ID] {
				t.Errorf("%d: id %s selected twice", year, c.ID)
			}
			inYear[c.ID] = true

			if i < 6 {
				if want := fmt.Sprintf("C%04d", i+year*10); c.ID != want {
					t.Errorf("%d: new customer %d has id %s, want %s", year, i, c.ID, want)
				}
			} else if !seen[c.ID] {
				t.Errorf("%d: retained id %s was not seen in earlier years", year, c.ID)
			}
		}
		for id := range inYear {
			seen[id] = true
		}
	}
}

func TestGenerateCustomersDetails(t *testing.T) {
	opts := testOptions()
	opts.NumCustomers = 200
	opts.NumYears = 2
	customers := newTestGenerator(opts).GenerateCustomers()

	for _, c := range customers {
		if c.DOB.After(c.JoinDate.AddDate(-18, 0, 0)) {
			t.Errorf("%s: DOB %v less than 18 years before join %v", c.ID, c.DOB, c.JoinDate)
		}
		if c.JoinDate.Day() > 28 {
			t.Errorf("%s: join day %d > 28", c.ID, c.JoinDate.Day())
		}
		if c.Email != strings.ToLower(c.Email) || !strings.HasPrefix(c.Email,
			strings.ToLower(c.FirstName)+"."+strings.ToLower(c.LastName)+"@") {
			t.Errorf("%s: bad email %s", c.ID, c.Email)
		}
		if !strings.HasPrefix(c.Phone, "+1-") || len(c.Phone) != len("+1-XXX-XXX-XXXX") {
			t.Errorf("%s: bad phone %s", c.ID, c.Phone)
		}
		if len(c.ZipCode) != 5 {
			t.Errorf("%s: bad zip %s", c.ID, c.ZipCode)
		}
		if c.City == "" || c.State == "" || strings.Contains(c.City, ",") {
			t.Errorf("%s: bad city/state %q/%q", c.ID, c.City, c.State)
		}
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		loc, city, state string
	}{
		{"New York, NY", "New York", "NY"},
		{"Boise, ID", "Boise", "ID"},
		{"Nowhere", "Nowhere", ""},
	}
	for _, tt := range tests {
		city, state := splitLocation(tt.loc)
		if city != tt.city || state != tt.state {
			t.Errorf("splitLocation(%q) = %q, %q; want %q, %q", tt.loc, city, state, tt.city, tt.state)
		}
	}
}

func TestCustomerIDs(t *testing.T) {
	ids := CustomerIDs([]Customer{{ID: "C1"}, {ID: "C2"}, {ID: "C1"}})
	if len(ids) != 3 || ids[0] != "C1" || ids[2] != "C1" {
		t.Errorf("CustomerIDs = %v", ids)
	}
}
