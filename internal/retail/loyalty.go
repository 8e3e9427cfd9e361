package retail

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var loyaltyColumns = []string{
	"Loyalty_ID", "Customer_ID", "Points_Earned", "Points_Redeemed", "Membership_Tier",
}

// Membership tiers.
const (
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

var (
	goldThreshold     = decimal.NewFromInt(75000)
	platinumThreshold = decimal.NewFromInt(80000)
	redeemableShare   = decimal.NewFromFloat(0.5)
)

// Loyalty is the loyalty account of one customer. PointsEarned is the
// customer's lifetime revenue, so it carries currency precision.
type Loyalty struct {
	ID             string
	CustomerID     string
	PointsEarned   decimal.Decimal
	PointsRedeemed int64
	Tier           string
}

// Row renders the loyalty account in loyaltyColumns order.
func (l Loyalty) Row() []any {
	return []any{l.ID, l.CustomerID, l.PointsEarned.InexactFloat64(), l.PointsRedeemed, l.Tier}
}

// Tier maps lifetime revenue to a membership tier:
// below 75000 Silver, below 80000 Gold, otherwise Platinum.
func Tier(earned decimal.Decimal) string {
	switch {
	case earned.LessThan(goldThreshold):
		return TierSilver
	case earned.LessThan(platinumThreshold):
		return TierGold
	default:
		return TierPlatinum
	}
}

// CalculateLoyalty creates one account per customer appearing in sales,
// in ascending customer id order. Redeemed points are drawn uniformly from
// [0, floor(0.5 * earned)].
func (g *Generator) CalculateLoyalty(sales []Sale) []Loyalty {
	totals := make(map[string]decimal.Decimal)
	for _, s := range sales {
		totals[s.CustomerID] = totals[s.CustomerID].Add(s.Amount)
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts := make([]Loyalty, 0, len(ids))
	for _, id := range ids {
		earned := totals[id]
		maxRedeem := earned.Mul(redeemableShare).Floor().IntPart()
		accounts = append(accounts, Loyalty{
			ID:             fmt.Sprintf("LOY%07d", len(accounts)+1),
			CustomerID:     id,
			PointsEarned:   earned,
			PointsRedeemed: int64(g.faker.Int(0, int(maxRedeem))),
			Tier:           Tier(earned),
		})
	}
	return accounts
}
