package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-pdf/internal/output"
	"github.com/rezonia/invoice-pdf/internal/renderer"
	"github.com/rezonia/invoice-pdf/internal/validator"
	"github.com/rezonia/invoice-pdf/pkg/invoicepdf"
)

var (
	outputPath  string
	logoTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <input.json>",
	Short: "Generate an invoice PDF",
	Long: `Validate an invoice JSON record and render it to a PDF document.

The input file may be either a bare invoice object or a tool request of
the form {"invoice": {...}, "outputPath": "..."}. An --output flag takes
precedence over any outputPath in the file; with neither, the document is
written to Desktop/invoice-<number>.pdf.

Examples:
  invoice-pdf generate invoice.json
  invoice-pdf generate invoice.json -o /tmp/invoice.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: Desktop/invoice-<number>.pdf)")
	generateCmd.Flags().DurationVar(&logoTimeout, "logo-timeout", 15*time.Second, "Timeout for fetching a remote business logo")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	req, err := decodeRequest(data)
	if err != nil {
		return err
	}

	inv, err := validator.Parse(req.Invoice)
	if err != nil {
		return err
	}

	dest := outputPath
	if dest == "" {
		dest = req.OutputPath
	}
	dest, err = output.ResolvePath(dest, inv.Number)
	if err != nil {
		return err
	}

	printVerbose("Rendering invoice %s for %s\n", inv.Number, inv.Customer.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	r := renderer.New(renderer.WithHTTPClient(&http.Client{Timeout: logoTimeout}))
	var buf bytes.Buffer
	warnings, err := r.Render(ctx, inv, &buf)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}

	if err := output.Write(dest, buf.Bytes()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d bytes)\n", dest, buf.Len())
	return nil
}

// decodeRequest accepts either a tool request wrapper or a bare invoice.
func decodeRequest(data []byte) (*invoicepdf.Request, error) {
	var req invoicepdf.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}
	if req.Invoice == nil {
		req.Invoice = data
	}
	return &req, nil
}
