// Package eligibility decides whether a card tier may be issued to an applicant.
package eligibility

import (
	"fmt"

	"vise-api-go/internal/domain"
)

// Decision is the outcome of an eligibility evaluation. Rejection is a
// normal business outcome, not an error.
type Decision struct {
	Accepted bool
	Reason   string
}

// Validator evaluates card applications against the static policy table.
// Evaluate is a pure function: it has no side effects and never touches
// the registry — registering accepted applicants is the caller's job.
type Validator struct{}

// NewValidator creates an eligibility validator
func NewValidator() *Validator {
	return &Validator{}
}

// Evaluate applies the policy for the requested tier in fixed order,
// short-circuiting on the first failing check: income floor, then club
// membership, then geographic restriction.
func (v *Validator) Evaluate(app domain.ClientApplication) Decision {
	policy, ok := policies[app.CardType]
	if !ok {
		// No policy entry — invalid input, not a business rejection
		return rejected("unknown card type: %s", app.CardType)
	}

	if policy.CombineChecks {
		if app.MonthlyIncome < policy.MinMonthlyIncome ||
			(policy.RequiresClubMembership && !app.ViseClubMember) {
			return rejected("does not meet the requirements for %s", app.CardType)
		}
		return accepted()
	}

	if app.MonthlyIncome < policy.MinMonthlyIncome {
		return rejected("insufficient monthly income for %s", app.CardType)
	}

	if policy.RequiresClubMembership && !app.ViseClubMember {
		return rejected("VISE CLUB membership is required for %s", app.CardType)
	}

	if policy.ForbiddenCountries[app.Country] {
		return rejected("clients in %s cannot hold a %s card", app.Country, app.CardType)
	}

	return accepted()
}

func accepted() Decision {
	return Decision{Accepted: true}
}

func rejected(format string, args ...interface{}) Decision {
	return Decision{Accepted: false, Reason: fmt.Sprintf(format, args...)}
}
