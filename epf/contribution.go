/*
contribution.go - Statutory wage split

PURPOSE:
  Splits one monthly wage into the three scheme contributions:
    - Employee share (EE):  12%    of wage
    - Pension share (EPS):  8.33%  of wage
    - Employer share (ER):  3.67%  of wage

ROUNDING:
  Each share is rounded to the whole rupee INDEPENDENTLY, half away from
  zero. Because 8.33% + 3.67% = 12%, the unrounded pension and employer
  shares always sum to the unrounded employee share, but the three rounded
  figures may disagree by one rupee (e.g. wage 15000: EE 1800, EPS 1250,
  ER 551, and 1250+551 = 1801). That discrepancy is part of the scheme's
  observed behavior: it is carried through to the report, never
  reconciled, and the employer share is never derived by subtraction.

INPUTS:
  Wages are non-negative; negative wages are rejected by workbook
  validation before the split ever runs.

SEE ALSO:
  - engine.go: runs the split for all twelve months
  - workbook/loader.go: rejects negative wages upstream
*/
package epf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SCHEME RATES - Fixed statutory percentages
// =============================================================================

var (
	RateEmployee = decimal.NewFromFloat(0.12)   // EE share of wage
	RatePension  = decimal.NewFromFloat(0.0833) // EPS share of wage
	RateEmployer = decimal.NewFromFloat(0.0367) // ER share of wage
)

// =============================================================================
// CONTRIBUTION - One month's split
// =============================================================================

// Contribution holds the three whole-rupee shares derived from one wage.
type Contribution struct {
	Employee Money
	Pension  Money
	Employer Money
}

// SplitWage derives the three monthly contributions from a wage.
// Each share is rounded independently; see the file header for why the
// rounded employee share may differ from pension + employer by one rupee.
func SplitWage(wage Money) Contribution {
	return Contribution{
		Employee: wage.Mul(RateEmployee).RoundRupee(),
		Pension:  wage.Mul(RatePension).RoundRupee(),
		Employer: wage.Mul(RateEmployer).RoundRupee(),
	}
}

// Discrepancy returns employee - (pension + employer) for this month.
// Never larger than one rupee in magnitude.
func (c Contribution) Discrepancy() Money {
	return c.Employee.Sub(c.Pension.Add(c.Employer))
}

// =============================================================================
// CONTRIBUTION SCHEDULE - Twelve months of splits, per share
// =============================================================================

// ContributionSchedule carries a full year of monthly contributions with
// one series per share, aligned with the wage series month by month.
type ContributionSchedule struct {
	Employee []Money
	Pension  []Money
	Employer []Money
}

// SplitWages splits a twelve-month wage series into the three contribution
// series. A wage series of any other length is a precondition breach.
func SplitWages(wages []Money) (ContributionSchedule, error) {
	if len(wages) != MonthsInYear {
		return ContributionSchedule{}, fmt.Errorf("wages: %w, got %d", ErrSeriesLength, len(wages))
	}
	sched := ContributionSchedule{
		Employee: make([]Money, MonthsInYear),
		Pension:  make([]Money, MonthsInYear),
		Employer: make([]Money, MonthsInYear),
	}
	for i, wage := range wages {
		c := SplitWage(wage)
		sched.Employee[i] = c.Employee
		sched.Pension[i] = c.Pension
		sched.Employer[i] = c.Employer
	}
	return sched, nil
}
