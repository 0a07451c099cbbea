package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.json>",
	Short: "Validate an invoice record",
	Long: `Validate an invoice JSON record without rendering it.

Checks performed:
  - Required fields present (dates, business name, customer name, items)
  - Dates parse as YYYY-MM-DD
  - Amounts are numeric and non-negative
  - Currency is one of GBP, USD, CAD, EUR

Arithmetic consistency (subtotal + vatAmount = total) is the caller's
responsibility; a mismatch is reported as a warning only.

Examples:
  invoice-pdf validate invoice.json
  invoice-pdf validate invoice.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateJSON bool

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the verdict as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	req, err := decodeRequest(data)
	if err != nil {
		return err
	}

	result := &ValidationResult{File: args[0], Valid: true}

	inv, err := validator.Parse(req.Invoice)
	if err != nil {
		result.Valid = false
		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				result.Errors = append(result.Errors, ve.Error())
			}
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	// Mismatched totals are a warning, never an error.
	if inv != nil {
		expected := inv.Subtotal.Add(inv.VATAmount)
		if !expected.Equal(inv.Total) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("amount mismatch: subtotal(%s) + vatAmount(%s) = %s, but total is %s",
					inv.Subtotal, inv.VATAmount, expected, inv.Total))
		}
	}

	if validateJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			fmt.Printf("✓ %s: VALID\n", result.File)
		} else {
			fmt.Printf("✗ %s: INVALID\n", result.File)
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}
	}

	if !result.Valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// ValidationResult holds the verdict for a single input file
type ValidationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
