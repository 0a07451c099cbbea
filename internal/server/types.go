package server

import "encoding/json"

// GenerateRequest is the body of the generate and validate endpoints:
// the invoice record plus an optional server-side output path.
type GenerateRequest struct {
	Invoice    json.RawMessage `json:"invoice"`
	OutputPath string          `json:"outputPath,omitempty"`
}

// GenerateResponse is returned when the document was written server-side
type GenerateResponse struct {
	Path     string   `json:"path"`
	Size     int      `json:"size"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Fields []string `json:"fields,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error    string   `json:"error"`
	Details  string   `json:"details,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
