package workbook

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuri/excelize/v2"
)

func TestStatementWorkbook_SheetAndRows(t *testing.T) {
	f, err := StatementWorkbook(testStatements())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{StatementSheet}, f.GetSheetList())

	rows, err := f.GetRows(StatementSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "A/C No.", rows[0][0])
	assert.Equal(t, "CB(EPS)", rows[0][14])
	assert.Equal(t, []string{
		"EPF101", "Asha Verma",
		"50000", "15000", "437", "132", "21600", "6612",
		"0", "0", "72037", "21744",
		"35000", "15000", "50000",
	}, rows[1])
}

func TestStatementWorkbook_OnlyCaptionRowStyled(t *testing.T) {
	f, err := StatementWorkbook(testStatements())
	require.NoError(t, err)
	defer f.Close()

	captionStyle, err := f.GetCellStyle(StatementSheet, "A1")
	require.NoError(t, err)
	dataStyle, err := f.GetCellStyle(StatementSheet, "A2")
	require.NoError(t, err)

	assert.NotZero(t, captionStyle, "caption cells carry the header style")
	assert.Zero(t, dataStyle, "data cells are unstyled")
}

func TestWriteExcel_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, testStatements()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(StatementSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "EPF102", rows[2][0])
}

func TestWriteExcelFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExcelReportName)
	require.NoError(t, WriteExcelFile(path, testStatements()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(StatementSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
