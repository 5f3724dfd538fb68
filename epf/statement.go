/*
statement.go - Annual account slip row

PURPOSE:
  The Statement is the per-member output row: fifteen fields in the fixed
  order of the printed slip. Assembly is pure composition over the three
  sub-account projections; the only arithmetic left at this stage is the
  final "last balance + interest" addition and the rounding to whole
  rupees at the report boundary.

FIELD ORDER (fixed, matches StatementCaptions):
  A/C No., NAME,
  OB(EE), OB(ER), INT(EE), INT(ER), CONT(EE), CONT(ER),
  WDL(EE), WDL(ER), CB(EE), CB(ER),
  OB(EPS), CONT(EPS), CB(EPS)

  Note the pension block at the tail has no interest and no withdrawal
  columns: the scheme's pension sub-account supports neither.

SEE ALSO:
  - engine.go: produces statements for a whole batch
  - workbook/csv.go, workbook/excel.go: serialize statements
*/
package epf

// StatementCaptions are the report column headings in emission order.
var StatementCaptions = [...]string{
	"A/C No.",
	"NAME",
	"OB(EE)",
	"OB(ER)",
	"INT(EE)",
	"INT(ER)",
	"CONT(EE)",
	"CONT(ER)",
	"WDL(EE)",
	"WDL(ER)",
	"CB(EE)",
	"CB(ER)",
	"OB(EPS)",
	"CONT(EPS)",
	"CB(EPS)",
}

// Statement is one member's annual account slip row. Monetary fields are
// whole rupees; rounding half away from zero is applied here, at the
// report emission boundary, and nowhere earlier except the contribution
// split and the interest credit.
type Statement struct {
	AccountNumber string
	Name          string

	OpeningEE      int64
	OpeningER      int64
	InterestEE     int64
	InterestER     int64
	ContributionEE int64
	ContributionER int64
	WithdrawalEE   int64
	WithdrawalER   int64
	ClosingEE      int64
	ClosingER      int64

	OpeningPension      int64
	ContributionPension int64
	ClosingPension      int64
}

// Amounts returns the thirteen monetary fields in caption order (the two
// identity fields excluded). Writers iterate this instead of repeating the
// field order.
func (s Statement) Amounts() [13]int64 {
	return [13]int64{
		s.OpeningEE,
		s.OpeningER,
		s.InterestEE,
		s.InterestER,
		s.ContributionEE,
		s.ContributionER,
		s.WithdrawalEE,
		s.WithdrawalER,
		s.ClosingEE,
		s.ClosingER,
		s.OpeningPension,
		s.ContributionPension,
		s.ClosingPension,
	}
}

// AssembleStatement composes one member's slip from the three projections.
// ee and er earn the supplied interest credits; the pension sub-account
// closes at its final running balance with a zero interest term, so
// CB(EPS) always equals OB(EPS) + CONT(EPS) regardless of the rate.
func AssembleStatement(account, name string, ee, er, eps Projection, interestEE, interestER Money) Statement {
	return Statement{
		AccountNumber: account,
		Name:          name,

		OpeningEE:      ee.Opening.Rupees(),
		OpeningER:      er.Opening.Rupees(),
		InterestEE:     interestEE.Rupees(),
		InterestER:     interestER.Rupees(),
		ContributionEE: ee.TotalContribution.Rupees(),
		ContributionER: er.TotalContribution.Rupees(),
		WithdrawalEE:   ee.TotalWithdrawal.Rupees(),
		WithdrawalER:   er.TotalWithdrawal.Rupees(),
		ClosingEE:      ee.Closing(interestEE).Rupees(),
		ClosingER:      er.Closing(interestER).Rupees(),

		OpeningPension:      eps.Opening.Rupees(),
		ContributionPension: eps.TotalContribution.Rupees(),
		ClosingPension:      eps.Final().Rupees(),
	}
}
