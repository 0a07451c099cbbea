package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "invoice-pdf",
	Short: "Generate invoice PDF documents from JSON data",
	Long: `Invoice PDF is a CLI tool for turning validated invoice data into
fixed-layout A4 PDF documents.

The input is a JSON invoice record (see the schema command for the full
shape): business and customer details, line items, totals with optional
VAT, and payment metadata. Output defaults to Desktop/invoice-<number>.pdf.

Examples:
  # Generate a PDF from an invoice record
  invoice-pdf generate invoice.json

  # Generate to an explicit path
  invoice-pdf generate invoice.json -o /tmp/acme.pdf

  # Check an invoice record without rendering
  invoice-pdf validate invoice.json

  # Print the input schema for callers
  invoice-pdf schema`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
