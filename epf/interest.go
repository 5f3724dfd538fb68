package epf

import "github.com/shopspring/decimal"

// =============================================================================
// INTEREST CREDIT
// =============================================================================

// interestDivisor encodes percent (/100) composed with the twelve-month
// average (/12). The formula is the same for every sub-account that earns
// interest; it is never special-cased.
var interestDivisor = decimal.NewFromInt(1200)

// InterestCredit computes the annual interest on an average balance:
//
//	interest = round(average * rate / 1200)
//
// rounded half away from zero to the whole rupee. The employee and
// employer sub-accounts earn interest; the pension sub-account never does,
// so its closing balance is simply opening + contributions.
func InterestCredit(average Money, rate Rate) Money {
	return average.Mul(rate.Percent).Div(interestDivisor).RoundRupee()
}
