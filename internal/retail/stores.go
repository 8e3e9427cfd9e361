package retail

import (
	"fmt"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

var storeColumns = []string{"Store_ID", "Store_Location", "Store_Size", "Store_Type"}

// Store is one physical location.
type Store struct {
	ID       string
	Location string
	Size     float64
	Type     string
}

// Row renders the store in storeColumns order.
func (s Store) Row() []any {
	return []any{s.ID, s.Location, s.Size, s.Type}
}

// GenerateStores creates one store per location, paired in list order.
// At most len(StoreLocations) stores are produced.
func (g *Generator) GenerateStores() []Store {
	n := min(g.opts.NumStores, len(StoreLocations))
	stores := make([]Store, 0, n)
	for i := 0; i < n; i++ {
		stores = append(stores, Store{
			ID:       fmt.Sprintf("S%03d", i),
			Location: StoreLocations[i],
			Size:     g.faker.Float64(5000, 20000),
			Type:     datagen.Choose(g.faker, storeTypes),
		})
	}
	return stores
}
