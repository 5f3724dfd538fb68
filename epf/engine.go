/*
engine.go - Batch statement runner

PURPOSE:
  Runs the full pipeline for every member of a batch: split the twelve
  wages, project the three sub-accounts, credit interest to EE and ER,
  assemble the slip. One annual rate applies uniformly to every member
  and every interest-earning sub-account in the run.

ORDERING AND FAILURE:
  Output order is input order; statements are never sorted. A structurally
  invalid row aborts the whole batch with a MemberError naming the row:
  a run produces either a complete report or none. Partial reports are
  worse than no report, because a slip that silently skipped members looks
  exactly like a complete one.

CONCURRENCY:
  None, deliberately. Member rows are independent, but batches are small
  (tens to low thousands) and a single deterministic pass is trivial to
  reason about and to reproduce.

USAGE:
  engine := epf.NewStatementEngine(epf.NewRate(8.5))
  statements, err := engine.Run(ledgers)

SEE ALSO:
  - workbook/loader.go: builds []MemberLedger from the input workbook
*/
package epf

import "fmt"

// =============================================================================
// STATEMENT ENGINE
// =============================================================================

// StatementEngine computes annual account statements for member batches.
// The rate is fixed for the lifetime of the engine: one engine, one run
// configuration.
type StatementEngine struct {
	Rate Rate
}

func NewStatementEngine(rate Rate) *StatementEngine {
	return &StatementEngine{Rate: rate}
}

// Run computes statements for all members, preserving input order.
// Fails fast on the first invalid row; no partial report is returned.
func (e *StatementEngine) Run(ledgers []MemberLedger) ([]Statement, error) {
	if err := e.Rate.Validate(); err != nil {
		return nil, err
	}

	statements := make([]Statement, 0, len(ledgers))
	for i, ledger := range ledgers {
		st, err := e.Compute(ledger)
		if err != nil {
			return nil, &MemberError{Row: i + 1, Account: ledger.AccountNumber, Cause: err}
		}
		statements = append(statements, st)
	}
	return statements, nil
}

// Compute runs the pipeline for a single member.
func (e *StatementEngine) Compute(ledger MemberLedger) (Statement, error) {
	// 1. Split the twelve wages into the three contribution series
	sched, err := SplitWages(ledger.Wages)
	if err != nil {
		return Statement{}, err
	}

	// 2. Project each sub-account independently. The pension sub-account
	// has no withdrawal sheet in the schema, so it folds over zeros.
	ee, err := Project(ledger.OpeningEE, sched.Employee, ledger.WithdrawalsEE)
	if err != nil {
		return Statement{}, fmt.Errorf("employee share: %w", err)
	}

	er, err := Project(ledger.OpeningER, sched.Employer, ledger.WithdrawalsER)
	if err != nil {
		return Statement{}, fmt.Errorf("employer share: %w", err)
	}

	eps, err := Project(ledger.OpeningPension, sched.Pension, zeroSeries())
	if err != nil {
		return Statement{}, fmt.Errorf("pension share: %w", err)
	}

	// 3. Interest on the average balances. EE and ER only: the pension
	// sub-account never earns interest, whatever the rate.
	interestEE := InterestCredit(ee.Average, e.Rate)
	interestER := InterestCredit(er.Average, e.Rate)

	// 4. Assemble the slip
	return AssembleStatement(ledger.AccountNumber, ledger.Name, ee, er, eps, interestEE, interestER), nil
}

func zeroSeries() []Money {
	zeros := make([]Money, MonthsInYear)
	for i := range zeros {
		zeros[i] = NewMoneyFromInt(0)
	}
	return zeros
}
