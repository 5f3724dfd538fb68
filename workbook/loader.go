/*
Package workbook reads member input workbooks and writes statement reports.

PURPOSE:
  The input is a six-sheet spreadsheet joined positionally by row: data
  row N of every sheet belongs to member N. This file loads and validates
  that workbook into []epf.MemberLedger; csv.go and excel.go serialize
  the computed statements back out; sample.go generates a ready-to-run
  example input.

INPUT SCHEMA (header row 1, data from row 2):
  Wages    14 columns   A/C No., NAME, Apr..Mar
  OB_EE     1 column    opening balance, employee share
  OB_ER     1 column    opening balance, employer share
  OB_EPS    1 column    opening balance, pension share
  WDL_EE   12 columns   Apr..Mar withdrawals, employee share
  WDL_ER   12 columns   Apr..Mar withdrawals, employer share

VALIDATION ORDER (fail fast, first breach wins):
  1. every sheet present
  2. column counts, sheet by sheet in schema order
  3. row counts, every sheet against Wages
  4. at least one member row
  5. cell values, member by member: account number present, every
     amount numeric and non-negative; blank cells read as zero

SEE ALSO:
  - epf/errors.go: ShapeError, CardinalityError, CellError
  - epf/engine.go: consumes the loaded ledgers
*/
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/warp/epf-engine/epf"
)

// =============================================================================
// SCHEMA
// =============================================================================

// Sheet names of the input workbook.
const (
	SheetWages          = "Wages"
	SheetOpeningEE      = "OB_EE"
	SheetOpeningER      = "OB_ER"
	SheetOpeningPension = "OB_EPS"
	SheetWithdrawalsEE  = "WDL_EE"
	SheetWithdrawalsER  = "WDL_ER"
)

const (
	wagesColumns      = 14 // A/C No., NAME, 12 months
	openingColumns    = 1
	withdrawalColumns = 12
)

type sheetSpec struct {
	name    string
	columns int
}

// schema lists the required sheets in validation order.
var schema = []sheetSpec{
	{SheetWages, wagesColumns},
	{SheetOpeningEE, openingColumns},
	{SheetOpeningER, openingColumns},
	{SheetOpeningPension, openingColumns},
	{SheetWithdrawalsEE, withdrawalColumns},
	{SheetWithdrawalsER, withdrawalColumns},
}

// SheetNames returns the required sheet names in schema order.
func SheetNames() []string {
	names := make([]string, len(schema))
	for i, s := range schema {
		names[i] = s.name
	}
	return names
}

// =============================================================================
// INPUT
// =============================================================================

// Input is a fully validated workbook: one ledger per member, in sheet
// row order.
type Input struct {
	Members []epf.MemberLedger
}

func (in *Input) MemberCount() int { return len(in.Members) }

// Load reads and validates an input workbook from r.
func Load(r io.Reader) (*Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", epf.ErrWorkbookFormat, err)
	}
	defer f.Close()
	return parse(f)
}

// LoadFile reads and validates the input workbook at path.
func LoadFile(path string) (*Input, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return parse(f)
}

// =============================================================================
// VALIDATION AND PARSING
// =============================================================================

func parse(f *excelize.File) (*Input, error) {
	// 1. Every required sheet must exist
	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}
	for _, s := range schema {
		if !present[s.name] {
			return nil, fmt.Errorf("sheet '%s': %w", s.name, epf.ErrSheetMissing)
		}
	}

	// 2. Column counts, sheet by sheet. The widest row governs, so a
	// stray value beyond the schema fails the sheet just like a missing
	// header column does.
	tables := make(map[string][][]string, len(schema))
	for _, s := range schema {
		rows, err := f.GetRows(s.name)
		if err != nil {
			return nil, fmt.Errorf("read sheet '%s': %w", s.name, err)
		}
		if width := maxWidth(rows); width != s.columns {
			return nil, &epf.ShapeError{Sheet: s.name, Expected: s.columns, Found: width}
		}
		tables[s.name] = rows
	}

	// 3. Row counts against Wages
	members := dataRows(tables[SheetWages])
	for _, s := range schema[1:] {
		if n := dataRows(tables[s.name]); n != members {
			return nil, &epf.CardinalityError{
				Sheet:      SheetWages,
				Rows:       members,
				OtherSheet: s.name,
				OtherRows:  n,
			}
		}
	}

	// 4. An empty workbook validates structurally but has nothing to
	// report on
	if members == 0 {
		return nil, epf.ErrNoMembers
	}

	// 5. Cell values, member by member
	ledgers := make([]epf.MemberLedger, 0, members)
	for i := 0; i < members; i++ {
		ledger, err := parseMember(tables, i)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, ledger)
	}

	return &Input{Members: ledgers}, nil
}

// parseMember assembles the ledger for data row i (0-based) by joining
// the same row position across all six sheets.
func parseMember(tables map[string][][]string, i int) (epf.MemberLedger, error) {
	account := strings.TrimSpace(cellValue(tables[SheetWages], i, 0))
	if account == "" {
		return epf.MemberLedger{}, &epf.CellError{
			Sheet: SheetWages, Row: i + 2, Column: 1, Value: account,
			Cause: epf.ErrAccountMissing,
		}
	}
	name := strings.TrimSpace(cellValue(tables[SheetWages], i, 1))

	wages, err := parseSeries(SheetWages, tables[SheetWages], i, 2)
	if err != nil {
		return epf.MemberLedger{}, err
	}
	openingEE, err := parseAmount(SheetOpeningEE, tables[SheetOpeningEE], i, 0)
	if err != nil {
		return epf.MemberLedger{}, err
	}
	openingER, err := parseAmount(SheetOpeningER, tables[SheetOpeningER], i, 0)
	if err != nil {
		return epf.MemberLedger{}, err
	}
	openingEPS, err := parseAmount(SheetOpeningPension, tables[SheetOpeningPension], i, 0)
	if err != nil {
		return epf.MemberLedger{}, err
	}
	withdrawalsEE, err := parseSeries(SheetWithdrawalsEE, tables[SheetWithdrawalsEE], i, 0)
	if err != nil {
		return epf.MemberLedger{}, err
	}
	withdrawalsER, err := parseSeries(SheetWithdrawalsER, tables[SheetWithdrawalsER], i, 0)
	if err != nil {
		return epf.MemberLedger{}, err
	}

	return epf.MemberLedger{
		AccountNumber:  account,
		Name:           name,
		Wages:          wages,
		WithdrawalsEE:  withdrawalsEE,
		WithdrawalsER:  withdrawalsER,
		OpeningEE:      openingEE,
		OpeningER:      openingER,
		OpeningPension: openingEPS,
	}, nil
}

// parseSeries reads the twelve month cells of data row i starting at
// 0-based column firstCol.
func parseSeries(sheet string, rows [][]string, i, firstCol int) ([]epf.Money, error) {
	series := make([]epf.Money, epf.MonthsInYear)
	for m := 0; m < epf.MonthsInYear; m++ {
		v, err := parseAmount(sheet, rows, i, firstCol+m)
		if err != nil {
			return nil, err
		}
		series[m] = v
	}
	return series, nil
}

// parseAmount coerces one cell to a non-negative amount. A blank cell is
// zero; the row in CellError is the spreadsheet row (data starts at 2).
func parseAmount(sheet string, rows [][]string, i, col int) (epf.Money, error) {
	raw := strings.TrimSpace(cellValue(rows, i, col))
	if raw == "" {
		return epf.NewMoneyFromInt(0), nil
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return epf.Money{}, &epf.CellError{
			Sheet: sheet, Row: i + 2, Column: col + 1, Value: raw,
			Cause: epf.ErrNotNumeric,
		}
	}
	if d.IsNegative() {
		return epf.Money{}, &epf.CellError{
			Sheet: sheet, Row: i + 2, Column: col + 1, Value: raw,
			Cause: epf.ErrNegativeAmount,
		}
	}
	return epf.NewMoneyFromDecimal(d), nil
}

// cellValue returns the cell at data row i (0-based, header excluded) and
// 0-based column col, or "" when the stored row is shorter. Spreadsheet
// libraries trim trailing blanks, so a short row is blank cells, not
// missing ones.
func cellValue(rows [][]string, i, col int) string {
	r := i + 1 // skip header
	if r >= len(rows) || col >= len(rows[r]) {
		return ""
	}
	return rows[r][col]
}

// maxWidth is the widest row of the sheet, header included.
func maxWidth(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// dataRows counts rows below the header.
func dataRows(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows) - 1
}
