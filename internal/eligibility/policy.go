package eligibility

import "vise-api-go/internal/domain"

// CardPolicy holds the static issuing constraints for one card tier
type CardPolicy struct {
	MinMonthlyIncome       float64
	RequiresClubMembership bool
	ForbiddenCountries     map[string]bool

	// CombineChecks collapses the income and membership checks into a
	// single condition with a single generic rejection reason (White).
	CombineChecks bool
}

// policies is the static per-tier eligibility table
var policies = map[domain.CardType]CardPolicy{
	domain.CardClassic: {},
	domain.CardGold: {
		MinMonthlyIncome: 500,
	},
	domain.CardPlatinum: {
		MinMonthlyIncome:       1000,
		RequiresClubMembership: true,
	},
	domain.CardBlack: {
		MinMonthlyIncome:       2000,
		RequiresClubMembership: true,
		ForbiddenCountries: map[string]bool{
			"China":   true,
			"Vietnam": true,
			"India":   true,
			"Iran":    true,
		},
	},
	domain.CardWhite: {
		MinMonthlyIncome:       2000,
		RequiresClubMembership: true,
		CombineChecks:          true,
	},
}

// PolicyFor returns the issuing policy for a card tier. The returned
// policy is read-only shared state; callers must not mutate it.
func PolicyFor(cardType domain.CardType) (CardPolicy, bool) {
	p, ok := policies[cardType]
	return p, ok
}
