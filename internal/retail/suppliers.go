package retail

import "strings"

var supplierColumns = []string{
	"Supplier_ID", "Supplier_Name", "Contact_Number", "Email", "Lead_Time_Days",
}

// supplierDraws is the number of supplier numbers drawn before
// deduplication.
const supplierDraws = 50

// Supplier is one vendor.
type Supplier struct {
	ID           string
	Name         string
	Contact      string
	Email        string
	LeadTimeDays int
}

// Row renders the supplier in supplierColumns order.
func (s Supplier) Row() []any {
	return []any{s.ID, s.Name, s.Contact, s.Email, s.LeadTimeDays}
}

// GenerateSuppliers draws 50 supplier numbers in [1, 50], drops repeats
// keeping first appearance, and creates one supplier per distinct id.
func (g *Generator) GenerateSuppliers() []Supplier {
	seen := make(map[string]bool, supplierDraws)
	var ids []string
	for i := 0; i < supplierDraws; i++ {
		id := SupplierID(g.faker.Int(1, 50))
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	suppliers := make([]Supplier, 0, len(ids))
	for _, id := range ids {
		name := "Supplier_" + id
		suppliers = append(suppliers, Supplier{
			ID:           id,
			Name:         name,
			Contact:      g.faker.Phone(),
			Email:        "contact@" + strings.ToLower(name) + ".com",
			LeadTimeDays: g.faker.Int(7, 30),
		})
	}
	return suppliers
}
