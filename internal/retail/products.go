package retail

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

var productColumns = []string{
	"Product_ID", "Product_Name", "Brand_Name", "Category", "Subcategory",
	"Price", "Cost", "Supplier_ID",
}

// Product is one catalog item.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Category    string
	Subcategory string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	SupplierID  string
}

// Row renders the product in productColumns order.
func (p Product) Row() []any {
	return []any{
		p.ID, p.Name, p.Brand, p.Category, p.Subcategory,
		p.Price.InexactFloat64(), p.Cost.InexactFloat64(), p.SupplierID,
	}
}

// ProductID formats the id of the i-th product.
func ProductID(i int) string {
	return fmt.Sprintf("P%05d", i)
}

// SupplierID formats a supplier id from its number.
func SupplierID(n int) string {
	return fmt.Sprintf("SUP%d", n)
}

// GenerateProducts creates NumProducts products. Prices are uniform in
// [5.00, 500.00] and cost is 50-80% of price, both rounded to cents.
func (g *Generator) GenerateProducts() []Product {
	products := make([]Product, 0, g.opts.NumProducts)
	for i := 0; i < g.opts.NumProducts; i++ {
		category := datagen.Choose(g.faker, categories)
		name := datagen.Choose(g.faker, productNames[category])
		brand := datagen.Choose(g.faker, brands[category])
		subcategory := datagen.Choose(g.faker, productNames[category])
		price := g.faker.Price(5.0, 500.0)
		cost := price.Mul(decimal.NewFromFloat(g.faker.Float64(0.5, 0.8))).Round(2)

		products = append(products, Product{
			ID:          ProductID(i),
			Name:        name,
			Brand:       brand,
			Category:    category,
			Subcategory: subcategory,
			Price:       price,
			Cost:        cost,
			SupplierID:  SupplierID(g.faker.Int(1, 50)),
		})
	}
	return products
}
