package renderer

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rezonia/invoice-pdf/internal/model"
)

// maxLogoBytes caps how much image data is read from any logo source.
const maxLogoBytes = 10 << 20

// Logo is a fetched and type-sniffed logo image ready for embedding.
type Logo struct {
	Data []byte
	Type string // "PNG", "JPEG" or "GIF"
}

// LogoFetcher resolves a logo reference (http(s) URL, data URI, or local
// file path) into raw image bytes. Every failure is a *model.AssetError.
type LogoFetcher struct {
	client *http.Client
}

// NewLogoFetcher creates a fetcher. A nil client gets a default with a
// 15 second timeout.
func NewLogoFetcher(client *http.Client) *LogoFetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &LogoFetcher{client: client}
}

// Fetch resolves ref into decoded image bytes.
func (f *LogoFetcher) Fetch(ctx context.Context, ref string) (*Logo, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		data, err = f.fetchURL(ctx, ref)
	case strings.HasPrefix(ref, "data:"):
		data, err = decodeDataURI(ref)
	default:
		data, err = readFileCapped(ref)
	}
	if err != nil {
		return nil, model.NewAssetError(ref, "failed to fetch logo", err)
	}

	imgType, ok := sniffImageType(data)
	if !ok {
		return nil, model.NewAssetError(ref, "unsupported image format", nil)
	}
	return &Logo{Data: data, Type: imgType}, nil
}

func (f *LogoFetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
}

func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := uri[len("data:"):comma], uri[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("data URI must be base64 encoded")
	}
	return base64.StdEncoding.DecodeString(payload)
}

func readFileCapped(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxLogoBytes))
}

// sniffImageType inspects magic bytes for the formats the layout engine
// can embed.
func sniffImageType(data []byte) (string, bool) {
	switch {
	case len(data) >= 8 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return "PNG", true
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "JPEG", true
	case len(data) >= 6 && string(data[:4]) == "GIF8":
		return "GIF", true
	default:
		return "", false
	}
}
