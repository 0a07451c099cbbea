package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-pdf/internal/server"
)

var (
	serveAddress string
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the generator.

Endpoints:
  GET  /health           - health check
  GET  /api/v1/schema    - input schema for callers
  POST /api/v1/generate  - invoice JSON in, PDF (or saved file) out
  POST /api/v1/validate  - invoice JSON in, validation verdict out

Examples:
  invoice-pdf serve
  invoice-pdf serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddress, "address", ":8080", "Listen address")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable request logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serveAddress,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		Debug:        serveDebug,
	}

	srv := server.NewServer(config)
	fmt.Printf("Listening on %s\n", serveAddress)
	return srv.Run()
}
