package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-pdf/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the invoice input schema",
	Long: `Print the JSON schema describing the accepted input shape.

External callers (for example an agent's tool-invocation layer) use this
declaration to construct valid generate requests. The validator enforces
the same rules at runtime.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema.Definition())
}
