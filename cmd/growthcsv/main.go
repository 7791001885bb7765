// Package main provides the CLI entry point for growthcsv.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wzlab/growthcsv/pkg/growthcsv"
	"github.com/wzlab/growthcsv/pkg/growthcsv/output"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "growthcsv [input.xls(x)] [output.csv]",
		Short: "Convert plate-reader growth curves to long-format CSV",
		Long: `growthcsv converts a microplate-reader OD600 export (.xls or .xlsx)
into a normalized long-format CSV with one row per well and timepoint:

  Well    well identifier (A1, A2, ..., H12)
  Time_s  elapsed time in seconds
  Time_h  elapsed time in hours
  OD      optical-density reading`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := args[1]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	opts := growthcsv.DefaultOptions()
	opts.Verbose = true

	summary, err := growthcsv.Convert(inputPath, outputPath, opts)
	if err != nil {
		return err
	}

	// Validation failure does not undo the write; warn and exit 0.
	if err := output.ValidateCSV(outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: output validation failed: %v\n", err)
		return nil
	}

	fmt.Printf("wrote %d rows (%d wells, %d timepoints) to %s\n",
		summary.Points, summary.Wells, summary.Timepoints, outputPath)
	return nil
}
