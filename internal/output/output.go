// Package output resolves the destination path for a generated invoice
// and writes the document without ever leaving a readable partial file.
package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoice-pdf/internal/model"
)

// ResolvePath returns the explicit path when given, otherwise the default
// derived from the invoice number: <home>/Desktop/invoice-<number>.pdf.
func ResolvePath(explicit, invoiceNumber string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", model.NewWriteError("", "cannot resolve home directory for default output path", err)
	}
	return filepath.Join(home, "Desktop", "invoice-"+sanitizeNumber(invoiceNumber)+".pdf"), nil
}

// sanitizeNumber strips path-hostile characters from an invoice number
// before it is embedded in a file name.
func sanitizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, number)
}

// Write stores a rendered document at path. The bytes are structurally
// validated first, then written to a temp file in the destination
// directory and renamed into place, so a failure at any stage leaves no
// readable partial file. Every failure is a *model.WriteError.
func Write(path string, data []byte) error {
	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		return model.NewWriteError(path, "generated document failed structural validation", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".invoice-*.pdf.tmp")
	if err != nil {
		return model.NewWriteError(path, "cannot create output file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return model.NewWriteError(path, "cannot write output file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return model.NewWriteError(path, "cannot finalize output file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return model.NewWriteError(path, "cannot move output file into place", err)
	}
	return nil
}
