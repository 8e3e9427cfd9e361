package retail

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

var salesColumns = []string{
	"Transaction_ID", "Product_ID", "Store_ID", "Customer_ID", "Date",
	"Quantity_Sold", "Sales_Amount",
}

// Sale is one transaction. StoreID holds a location from StoreLocations,
// not an id from the store table.
type Sale struct {
	TransactionID string
	ProductID     string
	StoreID       string
	CustomerID    string
	Date          time.Time
	Quantity      int
	Amount        decimal.Decimal
}

// Row renders the sale in salesColumns order.
func (s Sale) Row() []any {
	return []any{
		s.TransactionID, s.ProductID, s.StoreID, s.CustomerID, s.Date,
		s.Quantity, s.Amount.InexactFloat64(),
	}
}

// TransactionID formats the id of the n-th transaction (1-based).
func TransactionID(n int) string {
	return fmt.Sprintf("T%07d", n)
}

// GenerateSales simulates every day in range. The number of transactions
// per day and the quantity per transaction come from the seasonality
// profile; product, location and customer are drawn uniformly. Amount is
// quantity times the product price, rounded to cents.
func (g *Generator) GenerateSales(products []Product, customerIDs []string) ([]Sale, error) {
	if len(products) == 0 {
		return nil, errors.New("product table is empty")
	}
	if len(customerIDs) == 0 {
		return nil, errors.New("customer id list is empty")
	}

	profile := g.opts.Profile
	var sales []Sale
	for _, day := range g.opts.Dates() {
		volume := profile.DailyTransactions(day)
		quantity := profile.Quantity(day)

		count := g.faker.Int(volume.Min, volume.Max)
		for i := 0; i < count; i++ {
			product := datagen.Choose(g.faker, products)
			location := datagen.Choose(g.faker, StoreLocations)
			customerID := datagen.Choose(g.faker, customerIDs)
			qty := g.faker.Int(quantity.Min, quantity.Max)

			sales = append(sales, Sale{
				TransactionID: TransactionID(len(sales) + 1),
				ProductID:     product.ID,
				StoreID:       location,
				CustomerID:    customerID,
				Date:          day,
				Quantity:      qty,
				Amount:        product.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
			})
		}
	}
	return sales, nil
}
