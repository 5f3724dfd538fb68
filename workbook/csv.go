/*
csv.go - CSV statement report

PURPOSE:
  Writes the computed statements as a plain CSV: the caption row followed
  by one row per member, amounts in whole rupees. The column order is
  epf.StatementCaptions; writers never reorder or re-round.

SEE ALSO:
  - excel.go: the styled spreadsheet rendition of the same rows
*/
package workbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/warp/epf-engine/epf"
)

// CSVReportName is the default file name of the CSV report.
const CSVReportName = "output.csv"

// WriteCSV writes the caption row and one record per statement to w.
func WriteCSV(w io.Writer, statements []epf.Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(epf.StatementCaptions[:]); err != nil {
		return fmt.Errorf("write captions: %w", err)
	}
	for _, s := range statements {
		if err := cw.Write(statementRecord(s)); err != nil {
			return fmt.Errorf("write statement %s: %w", s.AccountNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV report to path, truncating any existing file.
func WriteCSVFile(path string, statements []epf.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, statements); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func statementRecord(s epf.Statement) []string {
	record := make([]string, 0, len(epf.StatementCaptions))
	record = append(record, s.AccountNumber, s.Name)
	for _, v := range s.Amounts() {
		record = append(record, strconv.FormatInt(v, 10))
	}
	return record
}
