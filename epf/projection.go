/*
projection.go - Monthly balance recurrence

PURPOSE:
  Turns an opening balance and twelve (contribution, withdrawal) pairs into
  the twelve month-end running balances, their average, and the year totals.
  This is the arithmetic heart of the statement: interest is charged on the
  AVERAGE of the twelve running balances, so every month's balance matters.

THE RECURRENCE:
  balance[0] = opening + contribution[0] - withdrawal[0]
  balance[i] = balance[i-1] + contribution[i] - withdrawal[i]   (i = 1..11)

  A strict left-to-right fold in chronological order, each month applied
  exactly once. There is no alternative ordering: every balance depends on
  the one before it.

PRECISION:
  The average balance is kept unrounded. Rounding happens only at the
  interest credit and at report emission, so no rounding error compounds
  across months.

NEGATIVE BALANCES:
  A withdrawal larger than the accrued balance drives the running balance
  negative. The projection passes that through unchanged; whether the input
  was sensible is the upstream validator's problem, not the fold's.

SEE ALSO:
  - interest.go: consumes Average
  - statement.go: consumes Final() and the totals
*/
package epf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var decimalMonths = decimal.NewFromInt(MonthsInYear)

// =============================================================================
// PROJECTION - One sub-account's computed year
// =============================================================================

// Projection is the result of folding one sub-account's year.
type Projection struct {
	Opening  Money
	Balances []Money // month-end running balances, April..March

	// Average is the unrounded mean of the twelve running balances.
	// It is the base for the interest credit.
	Average Money

	TotalContribution Money
	TotalWithdrawal   Money
}

// Final returns the March running balance.
func (p Projection) Final() Money {
	return p.Balances[len(p.Balances)-1]
}

// Closing returns the closing balance: final running balance plus the
// interest credit. Pass a zero interest for sub-accounts that earn none.
func (p Projection) Closing(interest Money) Money {
	return p.Final().Add(interest)
}

// Project folds a year of contributions and withdrawals over an opening
// balance. Both series must have exactly twelve entries; anything else is
// a precondition breach reported without computing a partial result.
func Project(opening Money, contributions, withdrawals []Money) (Projection, error) {
	if len(contributions) != MonthsInYear {
		return Projection{}, fmt.Errorf("contributions: %w, got %d", ErrSeriesLength, len(contributions))
	}
	if len(withdrawals) != MonthsInYear {
		return Projection{}, fmt.Errorf("withdrawals: %w, got %d", ErrSeriesLength, len(withdrawals))
	}

	p := Projection{
		Opening:  opening,
		Balances: make([]Money, MonthsInYear),
	}

	// 1. Fold the months in chronological order
	balance := opening
	sum := NewMoneyFromInt(0)
	for i := 0; i < MonthsInYear; i++ {
		balance = balance.Add(contributions[i]).Sub(withdrawals[i])
		p.Balances[i] = balance
		sum = sum.Add(balance)
	}

	// 2. Average of the twelve running balances, unrounded
	p.Average = sum.Div(decimalMonths)

	// 3. Year totals
	total := NewMoneyFromInt(0)
	for _, c := range contributions {
		total = total.Add(c)
	}
	p.TotalContribution = total

	total = NewMoneyFromInt(0)
	for _, w := range withdrawals {
		total = total.Add(w)
	}
	p.TotalWithdrawal = total

	return p, nil
}
