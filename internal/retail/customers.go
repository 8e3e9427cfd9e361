package retail

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

var customerColumns = []string{
	"Customer_ID", "First_Name", "Last_Name", "Email", "Phone", "Address", "City",
	"State", "Zip_Code", "Customer_Join_Date", "DOB", "Gender",
}

// Cohort shares of NumCustomers per year.
const (
	newCustomerShare      = 0.6
	retainedCustomerShare = 0.4
)

// Customer is one demographic record. A retained customer id appears
// once for every year it is selected.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	JoinDate  time.Time
	DOB       time.Time
	Gender    string
}

// Row renders the customer in customerColumns order.
func (c Customer) Row() []any {
	return []any{
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City,
		c.State, c.ZipCode, c.JoinDate, c.DOB, c.Gender,
	}
}

// CustomerIDs returns the id of every customer row, duplicates included.
func CustomerIDs(customers []Customer) []string {
	ids := make([]string, len(customers))
	for i, c := range customers {
		ids[i] = c.ID
	}
	return ids
}

// GenerateCustomers builds a yearly cohort for every year in range.
// Each year adds floor(0.6*NumCustomers) new ids, numbered from
// year*NumCustomers, and retains up to floor(0.4*NumCustomers) ids sampled
// without replacement from all ids seen in earlier years. Every selected
// id gets a freshly generated record for that year.
func (g *Generator) GenerateCustomers() []Customer {
	n := g.opts.NumCustomers
	numNew := int(float64(n) * newCustomerShare)
	numRetained := int(float64(n) * retainedCustomerShare)

	var customers []Customer
	existing := make(map[string]bool)

	for year := g.opts.StartYear; year <= g.opts.EndYear(); year++ {
		yearIDs := make([]string, 0, numNew+numRetained)
		for i := 0; i < numNew; i++ {
			yearIDs = append(yearIDs, fmt.Sprintf("C%04d", i+year*n))
		}

		if len(existing) > 0 {
			pool := make([]string, 0, len(existing))
			for id := range existing {
				pool = append(pool, id)
			}
			sort.Strings(pool)
			yearIDs = append(yearIDs, datagen.Sample(g.faker, pool, min(numRetained, len(pool)))...)
		}

		for _, id := range yearIDs {
			existing[id] = true
		}
		for _, id := range yearIDs {
			customers = append(customers, g.newCustomer(id, year))
		}
	}
	return customers
}

func (g *Generator) newCustomer(id string, year int) Customer {
	first := datagen.Choose(g.faker, firstNames)
	last := datagen.Choose(g.faker, lastNames)
	email := fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last),
		datagen.Choose(g.faker, emailDomains))
	phone := g.faker.Phone()
	address := fmt.Sprintf("%d %s", g.faker.Int(100, 9999), datagen.Choose(g.faker, streetNames))
	city, _ := splitLocation(datagen.Choose(g.faker, StoreLocations))
	_, state := splitLocation(datagen.Choose(g.faker, StoreLocations))
	zip := fmt.Sprintf("%d", g.faker.Int(10000, 99999))
	joinDate := time.Date(year, time.Month(g.faker.Int(1, 12)), g.faker.Int(1, 28), 0, 0, 0, 0, time.UTC)

	// Customers join between 18 and 70, plus up to a year of jitter.
	ageAtJoin := g.faker.Int(18, 70)
	dob := joinDate.AddDate(-ageAtJoin, 0, -g.faker.Int(0, 365))

	return Customer{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		Address:   address,
		City:      city,
		State:     state,
		ZipCode:   zip,
		JoinDate:  joinDate,
		DOB:       dob,
		Gender:    datagen.Choose(g.faker, genders),
	}
}

// splitLocation splits "City, ST" into its parts.
func splitLocation(loc string) (city, state string) {
	city, state, _ = strings.Cut(loc, ",")
	return city, strings.TrimSpace(state)
}
