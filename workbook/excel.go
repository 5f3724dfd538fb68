/*
excel.go - Styled spreadsheet statement report

PURPOSE:
  Renders the statements as a single-sheet workbook, "EPF Annual Account
  Slip". Only the caption row carries formatting: red bold italic text on
  an aquamarine fill, thin borders with a double rule underneath, centered
  both ways. Data rows are left unstyled.

SEE ALSO:
  - csv.go: the plain-text rendition of the same rows
*/
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warp/epf-engine/epf"
)

// Statement report sheet and default file name.
const (
	StatementSheet  = "EPF Annual Account Slip"
	ExcelReportName = "Output.xlsx"
)

const (
	borderThin   = 1
	borderDouble = 6
)

// StatementWorkbook builds the styled report workbook in memory. The
// caller owns the returned file and must Close it.
func StatementWorkbook(statements []epf.Statement) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", StatementSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	captions := make([]interface{}, len(epf.StatementCaptions))
	for i, c := range epf.StatementCaptions {
		captions[i] = c
	}
	if err := f.SetSheetRow(StatementSheet, "A1", &captions); err != nil {
		return nil, fmt.Errorf("write captions: %w", err)
	}

	style, err := captionStyle(f)
	if err != nil {
		return nil, err
	}
	lastCaption, err := excelize.CoordinatesToCellName(len(epf.StatementCaptions), 1)
	if err != nil {
		return nil, fmt.Errorf("caption range: %w", err)
	}
	if err := f.SetCellStyle(StatementSheet, "A1", lastCaption, style); err != nil {
		return nil, fmt.Errorf("style captions: %w", err)
	}

	for i, s := range statements {
		row := make([]interface{}, 0, len(epf.StatementCaptions))
		row = append(row, s.AccountNumber, s.Name)
		for _, v := range s.Amounts() {
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("statement row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(StatementSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write statement %s: %w", s.AccountNumber, err)
		}
	}

	return f, nil
}

// WriteExcel writes the styled report workbook to w.
func WriteExcel(w io.Writer, statements []epf.Statement) error {
	f, err := StatementWorkbook(statements)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteExcelFile writes the styled report workbook to path.
func WriteExcelFile(path string, statements []epf.Statement) error {
	f, err := StatementWorkbook(statements)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func captionStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true, Size: 12, Color: "FF0000"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"7FFFD4"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: borderThin},
			{Type: "right", Color: "000000", Style: borderThin},
			{Type: "top", Color: "000000", Style: borderThin},
			{Type: "bottom", Color: "000000", Style: borderDouble},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("caption style: %w", err)
	}
	return style, nil
}
