/*
main.go - Console statement calculator

PURPOSE:
  The offline rendition of the statement pipeline: read the input
  workbook, ask for the annual interest rate, compute every member's
  statement, and write the CSV and spreadsheet reports side by side.

COMMAND-LINE FLAGS:
  -input   Input workbook path (default: InputFiles/Input.xlsx)
  -outdir  Directory for output.csv and Output.xlsx (default: .)
  -rate    Annual interest rate in percent; prompts on stdin when omitted

EXIT STATUS:
  0 on success; 1 with an ERROR line on stderr for any failure, from a
  missing file to a single bad cell.

SEE ALSO:
  - workbook/loader.go: input schema and validation
  - epf/engine.go: statement computation
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/warp/epf-engine/epf"
	"github.com/warp/epf-engine/workbook"
)

func main() {
	input := flag.String("input", filepath.Join("InputFiles", "Input.xlsx"), "input workbook path")
	outdir := flag.String("outdir", ".", "directory for the generated reports")
	rateFlag := flag.String("rate", "", "annual interest rate in percent (prompts when omitted)")
	flag.Parse()

	start := time.Now()

	if err := run(*input, *outdir, *rateFlag); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTotal Time Taken: %.2f Seconds\n", time.Since(start).Seconds())
}

func run(input, outdir, rateFlag string) error {
	in, err := workbook.LoadFile(input)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully Loaded the '%s' File.\n\n", filepath.Base(input))
	for _, sheet := range workbook.SheetNames() {
		fmt.Printf("Successfully Loaded the '%s' Sheet.\n", sheet)
	}
	fmt.Println("\nAll Sheets Loaded Successfully!")
	fmt.Println("Data Validation Successful!")

	rate, err := resolveRate(rateFlag)
	if err != nil {
		return err
	}

	fmt.Println("\nCalculating EPF Contributions and Interest...")
	statements, err := epf.NewStatementEngine(rate).Run(in.Members)
	if err != nil {
		return err
	}
	fmt.Println("Calculations Complete.")
	fmt.Println()

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	csvPath := filepath.Join(outdir, workbook.CSVReportName)
	if err := workbook.WriteCSVFile(csvPath, statements); err != nil {
		return err
	}
	fmt.Printf("Successfully Generated '%s'\n", workbook.CSVReportName)

	excelPath := filepath.Join(outdir, workbook.ExcelReportName)
	if err := workbook.WriteExcelFile(excelPath, statements); err != nil {
		return err
	}
	fmt.Printf("Successfully Generated '%s'\n", workbook.ExcelReportName)

	return nil
}

// resolveRate takes the rate from the flag when given, otherwise prompts
// on stdin.
func resolveRate(rateFlag string) (epf.Rate, error) {
	raw := rateFlag
	if raw == "" {
		fmt.Print("Enter the Rate of Interest for the Year: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return epf.Rate{}, fmt.Errorf("read rate: %w", err)
		}
		raw = line
	}

	rate, err := epf.ParseRate(raw)
	if err != nil {
		return epf.Rate{}, err
	}
	if err := rate.Validate(); err != nil {
		return epf.Rate{}, err
	}
	return rate, nil
}
