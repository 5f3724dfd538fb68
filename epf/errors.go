/*
errors.go - Error vocabulary for the statement pipeline

PURPOSE:
  All error types in one place. Three structural kinds can fail a run, and
  all of them fail it before any statement is computed:
    1. Shape errors    - a sheet has the wrong column count, or a month
                         series is not exactly twelve entries
    2. Type errors     - a cell cannot be coerced to a number
    3. Cardinality errors - row counts differ across sheets

  The engine itself assumes validated input; if it still finds a short
  series it reports a precondition breach (ErrSeriesLength) wrapped in a
  MemberError naming the row, so the batch aborts with no partial report.

USAGE:
  Callers classify with the helpers:

    if epf.IsValidation(err) { ... 400 ... }
    if epf.IsNotFound(err)   { ... 404 ... }

SEE ALSO:
  - workbook/loader.go: raises shape/type/cardinality errors
  - engine.go: wraps engine failures in MemberError
*/
package epf

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrSeriesLength is returned when a monthly series does not have
	// exactly twelve entries. Inside the engine this is a precondition
	// breach, not a business failure: validation should have caught it.
	ErrSeriesLength = errors.New("month series must have exactly 12 entries")

	// ErrNotNumeric is returned when a cell or a rate cannot be coerced
	// to a number.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrNegativeAmount is returned for negative wages, withdrawals, or
	// opening balances. Negative amounts are rejected upstream, never
	// clamped.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrRateNotPositive is returned when the annual interest rate is zero
	// or negative.
	ErrRateNotPositive = errors.New("interest rate must be positive")

	// ErrAccountMissing is returned when a wage row has an empty account
	// number.
	ErrAccountMissing = errors.New("account number is empty")

	// ErrSheetShape is the class behind ShapeError.
	ErrSheetShape = errors.New("unexpected sheet shape")

	// ErrRowCountMismatch is the class behind CardinalityError.
	ErrRowCountMismatch = errors.New("row counts differ across sheets")

	// ErrSheetMissing is returned when a required sheet is absent from the
	// input workbook.
	ErrSheetMissing = errors.New("sheet not found in workbook")

	// ErrWorkbookFormat is returned when the uploaded bytes are not a
	// spreadsheet workbook at all.
	ErrWorkbookFormat = errors.New("file is not a spreadsheet workbook")

	// ErrNoMembers is returned when the workbook validates structurally
	// but contains no data rows.
	ErrNoMembers = errors.New("workbook has no member rows")

	// ErrRunNotFound is returned when a stored run ID is unknown or has
	// expired.
	ErrRunNotFound = errors.New("run not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry sheet/row/column context
// =============================================================================

// ShapeError reports a sheet whose column count does not match the schema.
type ShapeError struct {
	Sheet    string
	Expected int
	Found    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sheet '%s': expected %d columns, found %d",
		e.Sheet, e.Expected, e.Found)
}

func (e *ShapeError) Unwrap() error { return ErrSheetShape }

// CardinalityError reports two sheets with differing data row counts.
// The positional row join depends on every sheet having the same count.
type CardinalityError struct {
	Sheet      string
	Rows       int
	OtherSheet string
	OtherRows  int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("row count mismatch: sheet '%s' has %d rows, sheet '%s' has %d",
		e.Sheet, e.Rows, e.OtherSheet, e.OtherRows)
}

func (e *CardinalityError) Unwrap() error { return ErrRowCountMismatch }

// CellError reports a single bad cell. Row and Column are spreadsheet
// coordinates (1-based, data starts at row 2).
type CellError struct {
	Sheet  string
	Row    int
	Column int
	Value  string
	Cause  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet '%s': row %d, column %d: %q: %v",
		e.Sheet, e.Row, e.Column, e.Value, e.Cause)
}

func (e *CellError) Unwrap() error { return e.Cause }

// MemberError wraps an engine failure with the member row it occurred on.
// Row is 1-based over the data rows, matching the order of the input.
type MemberError struct {
	Row     int
	Account string
	Cause   error
}

func (e *MemberError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("member row %d: %v", e.Row, e.Cause)
	}
	return fmt.Sprintf("member row %d (%s): %v", e.Row, e.Account, e.Cause)
}

func (e *MemberError) Unwrap() error { return e.Cause }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error is due to invalid input data:
// the caller sent a bad workbook or a bad rate, not a server fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrSeriesLength) ||
		errors.Is(err, ErrNotNumeric) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrRateNotPositive) ||
		errors.Is(err, ErrAccountMissing) ||
		errors.Is(err, ErrSheetShape) ||
		errors.Is(err, ErrRowCountMismatch) ||
		errors.Is(err, ErrSheetMissing) ||
		errors.Is(err, ErrWorkbookFormat) ||
		errors.Is(err, ErrNoMembers)
}

// IsNotFound returns true if the error indicates a missing run.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRunNotFound)
}
