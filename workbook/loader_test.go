package workbook

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/warp/epf-engine/epf"
)

// =============================================================================
// FIXTURES
// =============================================================================

// setRows creates sheet and writes rows starting at A1.
func setRows(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
}

func monthCaptions() []interface{} {
	captions := make([]interface{}, 0, epf.MonthsInYear)
	for _, label := range epf.MonthLabels() {
		captions = append(captions, label)
	}
	return captions
}

func zeroMonths() []interface{} {
	row := make([]interface{}, epf.MonthsInYear)
	for i := range row {
		row[i] = 0
	}
	return row
}

// validWorkbook builds a two-member input that passes every check.
func validWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	wagesHeader := append([]interface{}{"A/C No.", "NAME"}, monthCaptions()...)
	setRows(t, f, SheetWages, [][]interface{}{
		wagesHeader,
		{"EPF101", "Asha Verma", 15000, 15000, 15500, 15000, 15000, 15000, 15000, 15000, 15000, 15000, 15000, 15000},
		{"EPF102", "Ravi Iyer", 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000},
	})
	setRows(t, f, SheetOpeningEE, [][]interface{}{{"OB(EE)"}, {50000}, {60000}})
	setRows(t, f, SheetOpeningER, [][]interface{}{{"OB(ER)"}, {15000}, {18000}})
	setRows(t, f, SheetOpeningPension, [][]interface{}{{"OB(EPS)"}, {35000}, {42000}})

	wdlEE := zeroMonths()
	wdlEE[3] = 5000
	setRows(t, f, SheetWithdrawalsEE, [][]interface{}{monthCaptions(), wdlEE, zeroMonths()})
	setRows(t, f, SheetWithdrawalsER, [][]interface{}{monthCaptions(), zeroMonths(), zeroMonths()})

	require.NoError(t, f.DeleteSheet("Sheet1"))
	return f
}

// encode serializes the workbook and returns a reader over its bytes.
func encode(t *testing.T, f *excelize.File) *bytes.Reader {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

// =============================================================================
// HAPPY PATH
// =============================================================================

func TestLoad_ValidWorkbook(t *testing.T) {
	in, err := Load(encode(t, validWorkbook(t)))
	require.NoError(t, err)
	require.Equal(t, 2, in.MemberCount())

	m := in.Members[0]
	assert.Equal(t, "EPF101", m.AccountNumber)
	assert.Equal(t, "Asha Verma", m.Name)
	require.Len(t, m.Wages, epf.MonthsInYear)
	assert.Equal(t, int64(15000), m.Wages[0].Rupees())
	assert.Equal(t, int64(15500), m.Wages[2].Rupees())
	assert.Equal(t, int64(50000), m.OpeningEE.Rupees())
	assert.Equal(t, int64(15000), m.OpeningER.Rupees())
	assert.Equal(t, int64(35000), m.OpeningPension.Rupees())
	assert.Equal(t, int64(5000), m.WithdrawalsEE[3].Rupees())
	assert.True(t, m.WithdrawalsER[3].IsZero())

	assert.Equal(t, "EPF102", in.Members[1].AccountNumber)
}

func TestLoad_BlankCellReadsAsZero(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWages, "F2", ""))

	in, err := Load(encode(t, f))
	require.NoError(t, err)
	assert.True(t, in.Members[0].Wages[3].IsZero(), "blank July wage should read as zero")
}

// =============================================================================
// STRUCTURAL FAILURES
// =============================================================================

func TestLoad_NotAWorkbook(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("definitely not a spreadsheet")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrWorkbookFormat))
	assert.True(t, epf.IsValidation(err))
}

func TestLoad_MissingSheet(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.DeleteSheet(SheetOpeningPension))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrSheetMissing))
	assert.Contains(t, err.Error(), SheetOpeningPension)
}

func TestLoad_WrongColumnCount(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWages, "O1", "Extra"))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrSheetShape))

	var shape *epf.ShapeError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, SheetWages, shape.Sheet)
	assert.Equal(t, 14, shape.Expected)
	assert.Equal(t, 15, shape.Found)
	assert.Equal(t, "sheet 'Wages': expected 14 columns, found 15", err.Error())
}

func TestLoad_StrayValueWidensSheet(t *testing.T) {
	// A value outside the schema columns counts toward the sheet width
	// even when the header row itself is correct.
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWithdrawalsEE, "M3", 100))

	_, err := Load(encode(t, f))
	require.Error(t, err)

	var shape *epf.ShapeError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, SheetWithdrawalsEE, shape.Sheet)
	assert.Equal(t, 12, shape.Expected)
	assert.Equal(t, 13, shape.Found)
}

func TestLoad_RowCountMismatch(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetOpeningEE, "A4", 70000))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrRowCountMismatch))

	var card *epf.CardinalityError
	require.True(t, errors.As(err, &card))
	assert.Equal(t, SheetWages, card.Sheet)
	assert.Equal(t, 2, card.Rows)
	assert.Equal(t, SheetOpeningEE, card.OtherSheet)
	assert.Equal(t, 3, card.OtherRows)
	assert.Equal(t, "row count mismatch: sheet 'Wages' has 2 rows, sheet 'OB_EE' has 3", err.Error())
}

func TestLoad_NoMembers(t *testing.T) {
	f := excelize.NewFile()
	setRows(t, f, SheetWages, [][]interface{}{append([]interface{}{"A/C No.", "NAME"}, monthCaptions()...)})
	setRows(t, f, SheetOpeningEE, [][]interface{}{{"OB(EE)"}})
	setRows(t, f, SheetOpeningER, [][]interface{}{{"OB(ER)"}})
	setRows(t, f, SheetOpeningPension, [][]interface{}{{"OB(EPS)"}})
	setRows(t, f, SheetWithdrawalsEE, [][]interface{}{monthCaptions()})
	setRows(t, f, SheetWithdrawalsER, [][]interface{}{monthCaptions()})
	require.NoError(t, f.DeleteSheet("Sheet1"))

	_, err := Load(encode(t, f))
	assert.True(t, errors.Is(err, epf.ErrNoMembers))
}

// =============================================================================
// CELL FAILURES
// =============================================================================

func TestLoad_NonNumericCell(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWages, "C2", "abc"))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrNotNumeric))

	var cell *epf.CellError
	require.True(t, errors.As(err, &cell))
	assert.Equal(t, SheetWages, cell.Sheet)
	assert.Equal(t, 2, cell.Row)
	assert.Equal(t, 3, cell.Column)
	assert.Equal(t, "abc", cell.Value)
}

func TestLoad_NegativeAmount(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWithdrawalsEE, "D3", -50))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrNegativeAmount))

	var cell *epf.CellError
	require.True(t, errors.As(err, &cell))
	assert.Equal(t, SheetWithdrawalsEE, cell.Sheet)
	assert.Equal(t, 3, cell.Row)
	assert.Equal(t, 4, cell.Column)
}

func TestLoad_MissingAccountNumber(t *testing.T) {
	f := validWorkbook(t)
	require.NoError(t, f.SetCellValue(SheetWages, "A2", ""))

	_, err := Load(encode(t, f))
	require.Error(t, err)
	assert.True(t, errors.Is(err, epf.ErrAccountMissing))

	var cell *epf.CellError
	require.True(t, errors.As(err, &cell))
	assert.Equal(t, SheetWages, cell.Sheet)
	assert.Equal(t, 2, cell.Row)
	assert.Equal(t, 1, cell.Column)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.xlsx")
}
