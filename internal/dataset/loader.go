// Package dataset loads the periodic-table JSON document from its
// serving location and runs it through the strict decoder. Loading
// happens exactly once per session; there is no retry and no cache.
package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/wesen/ptable/internal/elements"
)

// Loader fetches and decodes the dataset. The zero value is not usable;
// construct with NewLoader.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a loader. A nil client falls back to
// http.DefaultClient; a nil logger discards.
func NewLoader(client *http.Client, logger *slog.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{client: client, logger: logger}
}

// Load reads the dataset from source, an http(s) URL or a local file
// path, and decodes it. Any transport or schema failure is returned
// as-is and is terminal for the session.
func (l *Loader) Load(ctx context.Context, source string) ([]elements.ChemicalElement, error) {
	raw, err := l.read(ctx, source)
	if err != nil {
		l.logger.Error("dataset read failed", "source", source, "error", err)
		return nil, err
	}

	els, err := elements.DecodeDataset(raw)
	if err != nil {
		l.logger.Error("dataset decode failed", "source", source, "error", err)
		return nil, err
	}

	l.logger.Info("dataset loaded", "source", source, "elements", len(els))
	return els, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(ctx, source)
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return raw, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dataset response: %w", err)
	}
	return raw, nil
}
