/*
main.go - Sample input generator

PURPOSE:
  Writes the five-member example input workbook so a new installation has
  something to run immediately.

COMMAND-LINE FLAGS:
  -out  Destination path (default: InputFiles/Sample_Input.xlsx);
        parent directories are created as needed

SEE ALSO:
  - workbook/sample.go: the generated content
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/warp/epf-engine/workbook"
)

func main() {
	out := flag.String("out", filepath.Join("InputFiles", workbook.SampleName), "destination path for the sample workbook")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(out string) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := workbook.WriteSampleFile(out); err != nil {
		return err
	}

	fmt.Println("Sample input workbook created successfully.")
	fmt.Println("\nSample data includes:")
	fmt.Println("- 5 sample employees")
	fmt.Println("- 12 months of wage data")
	fmt.Println("- Opening balances for EE, ER, and EPS")
	fmt.Println("- Withdrawal data (some employees have withdrawals)")
	fmt.Printf("\nFile: %s\n", out)
	return nil
}
