/*
sample.go - Ready-to-run example input workbook

PURPOSE:
  Generates a five-member input workbook with realistic figures: flat
  wages with small mid-year bumps, opening balances for all three
  sub-accounts, and a few scattered withdrawals. New installations use it
  to see the expected input layout and to smoke-test a full run.

SEE ALSO:
  - loader.go: the schema this file must satisfy
*/
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warp/epf-engine/epf"
)

// SampleName is the default file name of the generated sample input.
const SampleName = "Sample_Input.xlsx"

type sampleMember struct {
	account string
	name    string
	wages   [epf.MonthsInYear]int
}

// Wage rows carry a small raise in June and January and a festival bump
// in October, so contributions are not perfectly flat.
var sampleMembers = []sampleMember{
	{"EPF001", "John Doe", [epf.MonthsInYear]int{15000, 15000, 15500, 15000, 15000, 15000, 16000, 15000, 15000, 15500, 15000, 15000}},
	{"EPF002", "Jane Smith", [epf.MonthsInYear]int{18000, 18000, 18500, 18000, 18000, 18000, 19000, 18000, 18000, 18500, 18000, 18000}},
	{"EPF003", "Raj Kumar", [epf.MonthsInYear]int{12000, 12000, 12500, 12000, 12000, 12000, 13000, 12000, 12000, 12500, 12000, 12000}},
	{"EPF004", "Sunita Sharma", [epf.MonthsInYear]int{20000, 20000, 20500, 20000, 20000, 20000, 21000, 20000, 20000, 20500, 20000, 20000}},
	{"EPF005", "Amit Patel", [epf.MonthsInYear]int{25000, 25000, 25500, 25000, 25000, 25000, 26000, 25000, 25000, 25500, 25000, 25000}},
}

var (
	sampleOpeningEE  = []int{50000, 60000, 40000, 65000, 75000}
	sampleOpeningER  = []int{15000, 18000, 12000, 19500, 22500}
	sampleOpeningEPS = []int{35000, 42000, 28000, 45500, 52500}

	sampleWithdrawalsEE = [][epf.MonthsInYear]int{
		{0, 0, 0, 5000, 0, 0, 0, 0, 0, 0, 0, 0},
		{},
		{0, 0, 0, 0, 0, 10000, 0, 0, 0, 0, 0, 0},
		{0, 8000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{},
	}
	sampleWithdrawalsER = [][epf.MonthsInYear]int{
		{0, 0, 0, 1500, 0, 0, 0, 0, 0, 0, 0, 0},
		{},
		{0, 0, 0, 0, 0, 3300, 0, 0, 0, 0, 0, 0},
		{0, 2670, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{},
	}
)

// SampleWorkbook builds the example input workbook in memory. The caller
// owns the returned file and must Close it.
func SampleWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := sampleHeaderStyle(f)
	if err != nil {
		return nil, err
	}
	centered, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}

	if err := writeWagesSheet(f, header, centered); err != nil {
		return nil, err
	}
	if err := writeOpeningSheet(f, SheetOpeningEE, "OB(EE)", sampleOpeningEE, header, centered); err != nil {
		return nil, err
	}
	if err := writeOpeningSheet(f, SheetOpeningER, "OB(ER)", sampleOpeningER, header, centered); err != nil {
		return nil, err
	}
	if err := writeOpeningSheet(f, SheetOpeningPension, "OB(EPS)", sampleOpeningEPS, header, centered); err != nil {
		return nil, err
	}
	if err := writeWithdrawalSheet(f, SheetWithdrawalsEE, sampleWithdrawalsEE, header, centered); err != nil {
		return nil, err
	}
	if err := writeWithdrawalSheet(f, SheetWithdrawalsER, sampleWithdrawalsER, header, centered); err != nil {
		return nil, err
	}

	// The default sheet is replaced by the schema sheets
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	return f, nil
}

// WriteSample writes the example input workbook to w.
func WriteSample(w io.Writer) error {
	f, err := SampleWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteSampleFile writes the example input workbook to path.
func WriteSampleFile(path string) error {
	f, err := SampleWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeWagesSheet(f *excelize.File, header, centered int) error {
	if _, err := f.NewSheet(SheetWages); err != nil {
		return fmt.Errorf("create sheet '%s': %w", SheetWages, err)
	}

	captions := make([]interface{}, 0, wagesColumns)
	captions = append(captions, "A/C No.", "NAME")
	for _, label := range epf.MonthLabels() {
		captions = append(captions, label)
	}
	if err := writeStyledRow(f, SheetWages, 1, captions, header); err != nil {
		return err
	}

	for i, m := range sampleMembers {
		row := make([]interface{}, 0, wagesColumns)
		row = append(row, m.account, m.name)
		for _, w := range m.wages {
			row = append(row, w)
		}
		if err := writeStyledRow(f, SheetWages, i+2, row, centered); err != nil {
			return err
		}
	}
	return nil
}

func writeOpeningSheet(f *excelize.File, sheet, caption string, values []int, header, centered int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet '%s': %w", sheet, err)
	}
	if err := writeStyledRow(f, sheet, 1, []interface{}{caption}, header); err != nil {
		return err
	}
	for i, v := range values {
		if err := writeStyledRow(f, sheet, i+2, []interface{}{v}, centered); err != nil {
			return err
		}
	}
	return nil
}

func writeWithdrawalSheet(f *excelize.File, sheet string, rows [][epf.MonthsInYear]int, header, centered int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet '%s': %w", sheet, err)
	}

	captions := make([]interface{}, 0, withdrawalColumns)
	for _, label := range epf.MonthLabels() {
		captions = append(captions, label)
	}
	if err := writeStyledRow(f, sheet, 1, captions, header); err != nil {
		return err
	}

	for i, months := range rows {
		row := make([]interface{}, 0, withdrawalColumns)
		for _, v := range months {
			row = append(row, v)
		}
		if err := writeStyledRow(f, sheet, i+2, row, centered); err != nil {
			return err
		}
	}
	return nil
}

// writeStyledRow writes one row starting at column A and applies the
// style across its width.
func writeStyledRow(f *excelize.File, sheet string, row int, values []interface{}, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("sheet '%s' row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, first, &values); err != nil {
		return fmt.Errorf("sheet '%s' row %d: %w", sheet, row, err)
	}

	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return fmt.Errorf("sheet '%s' row %d: %w", sheet, row, err)
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("style sheet '%s' row %d: %w", sheet, row, err)
	}
	return nil
}

func sampleHeaderStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: borderThin},
			{Type: "right", Color: "000000", Style: borderThin},
			{Type: "top", Color: "000000", Style: borderThin},
			{Type: "bottom", Color: "000000", Style: borderThin},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("header style: %w", err)
	}
	return style, nil
}
