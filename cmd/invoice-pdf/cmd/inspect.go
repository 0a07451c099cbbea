package cmd

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Inspect a generated PDF",
	Long: `Validate a PDF's structure and report basic facts about it.

Examples:
  invoice-pdf inspect invoice-INV-0042.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("%s is not a valid PDF: %w", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("cannot read page count: %w", err)
	}

	fmt.Printf("File:   %s\n", path)
	fmt.Printf("Size:   %d bytes\n", info.Size())
	fmt.Printf("Pages:  %d\n", pages)
	fmt.Printf("Valid:  yes\n")
	return nil
}
