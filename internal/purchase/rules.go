package purchase

import (
	"time"

	"vise-api-go/internal/domain"
)

// DiscountRule is one entry in the benefit stack. Rules are evaluated in
// declaration order and their percentages accumulate additively — the sum
// is deliberately not clamped.
type DiscountRule struct {
	Label   string
	Percent float64
	Applies func(client domain.Client, req domain.PurchaseRequest) bool
}

// goldBonusDays is the weekday window for the Gold tier bonus
var goldBonusDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
}

// discountRules is the static, ordered benefit table: the club-membership
// base discount first, then the tier bonus (mutually exclusive by tier).
var discountRules = []DiscountRule{
	{
		Label:   "VISE CLUB 5% discount",
		Percent: 5,
		Applies: func(client domain.Client, _ domain.PurchaseRequest) bool {
			return client.ViseClubMember
		},
	},
	{
		Label:   "Gold Mon-Wed 10% discount",
		Percent: 10,
		Applies: func(client domain.Client, req domain.PurchaseRequest) bool {
			return client.CardType == domain.CardGold &&
				req.Amount > 100 &&
				goldBonusDays[req.Weekday()]
		},
	},
	{
		Label:   "Platinum 8% discount",
		Percent: 8,
		Applies: func(client domain.Client, _ domain.PurchaseRequest) bool {
			return client.CardType == domain.CardPlatinum
		},
	},
	{
		Label:   "Black 12% discount",
		Percent: 12,
		Applies: func(client domain.Client, _ domain.PurchaseRequest) bool {
			return client.CardType == domain.CardBlack
		},
	},
}
