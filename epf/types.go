/*
Package epf computes annual Employees' Provident Fund account statements.

PURPOSE:
  This package contains the complete statement engine: the contribution
  split, the monthly balance projection, the interest credit, and the
  per-member report assembly. It works on validated in-memory tables and
  performs no I/O; workbook parsing and report serialization live in the
  workbook package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: a rupee amount backed by decimal.Decimal
  - Rate: an annual interest rate in percent (e.g. 8.5)
  - MemberLedger: one member's full year of input figures

DESIGN PRINCIPLES:
  1. Precision: decimal arithmetic end to end; products like 15000 x 0.0833
     are exact, so rounding decisions are made on true values
  2. One rounding rule: half away from zero to the whole rupee, applied at
     the contribution split, the interest credit, and report emission only
  3. Determinism: the same inputs and rate always produce the same report

USAGE:
  engine := epf.NewStatementEngine(epf.NewRate(8.5))
  statements, err := engine.Run(ledgers)

SEE ALSO:
  - contribution.go: wage split into EE/EPS/ER shares
  - projection.go: monthly balance recurrence and average
  - interest.go: interest credit formula
  - statement.go: report row assembly
  - engine.go: batch orchestration
*/
package epf

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Rupee amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int64) Money {
	return Money{Value: decimal.NewFromInt(value)}
}

func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Value: d}
}

func (m Money) Add(o Money) Money           { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money           { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                  { return Money{Value: m.Value.Neg()} }
func (m Money) Abs() Money                  { return Money{Value: m.Value.Abs()} }
func (m Money) IsZero() bool                { return m.Value.IsZero() }
func (m Money) IsNegative() bool            { return m.Value.IsNegative() }
func (m Money) IsPositive() bool            { return m.Value.IsPositive() }
func (m Money) Equal(o Money) bool          { return m.Value.Equal(o.Value) }
func (m Money) GreaterThan(o Money) bool    { return m.Value.GreaterThan(o.Value) }
func (m Money) LessThan(o Money) bool       { return m.Value.LessThan(o.Value) }
func (m Money) String() string              { return m.Value.String() }

// RoundRupee rounds to the nearest whole rupee, half away from zero.
// This is the single rounding rule of the scheme: round(550.5) = 551,
// round(1249.5) = 1250. decimal's Round implements exactly that mode.
func (m Money) RoundRupee() Money {
	return Money{Value: m.Value.Round(0)}
}

// Rupees returns the amount as whole rupees, rounded half away from zero.
func (m Money) Rupees() int64 {
	return m.Value.Round(0).IntPart()
}

// =============================================================================
// RATE - Annual interest rate in percent
// =============================================================================

type Rate struct {
	Percent decimal.Decimal
}

func NewRate(percent float64) Rate {
	return Rate{Percent: decimal.NewFromFloat(percent)}
}

// ParseRate parses a user-supplied rate string such as "8.5".
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rate{}, fmt.Errorf("rate %q: %w", s, ErrNotNumeric)
	}
	return Rate{Percent: d}, nil
}

// Validate rejects rates that cannot drive a statement run.
// The rate is always a positive percentage (e.g. 8.5 for 8.5%).
func (r Rate) Validate() error {
	if !r.Percent.IsPositive() {
		return ErrRateNotPositive
	}
	return nil
}

func (r Rate) String() string { return r.Percent.String() + "%" }

// Float64 returns the percent value for display surfaces (DTOs, logs).
func (r Rate) Float64() float64 {
	f, _ := r.Percent.Float64()
	return f
}

// =============================================================================
// MEMBER LEDGER - One member's input figures for the year
// =============================================================================

// MemberLedger is one employee's row across all six input tables, joined
// positionally by the loader: twelve monthly wages, twelve withdrawals per
// withdrawable share, and one opening balance per sub-account. The pension
// sub-account has no withdrawal column in the scheme's schema.
type MemberLedger struct {
	AccountNumber string
	Name          string

	Wages []Money // April..March, exactly MonthsInYear entries

	WithdrawalsEE []Money
	WithdrawalsER []Money

	OpeningEE      Money
	OpeningER      Money
	OpeningPension Money
}
