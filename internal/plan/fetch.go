package plan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultMaxBytes = 64 * 1024

// Fetcher reads plan documents from local files or http(s) URLs.
type Fetcher struct {
	h        *retryablehttp.Client
	maxBytes int
}

type FetcherOption func(*Fetcher)

func WithRetries(n int) FetcherOption {
	return func(f *Fetcher) {
		f.h.RetryMax = n
	}
}

// WithMaxBytes caps how much of a document is read. Larger documents fail.
func WithMaxBytes(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.h.Logger = l
		}
	}
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	h := retryablehttp.NewClient()
	h.RetryMax = 3
	h.Logger = nil
	f := &Fetcher{h: h, maxBytes: defaultMaxBytes}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the raw document at src: an http(s) URL, a file:// URL or a
// local path.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty plan source")
	}
	if p, ok := strings.CutPrefix(src, "file://"); ok {
		return f.readFile(p)
	}
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return f.readFile(src)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.h.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s: %d", src, resp.StatusCode)
	}
	return f.readCapped(resp.Body, src)
}

// Load fetches and parses the plan at src.
func (f *Fetcher) Load(ctx context.Context, src string) (*Plan, error) {
	b, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch plan: %w", err)
	}
	return Parse(src, b)
}

func (f *Fetcher) readFile(p string) ([]byte, error) {
	fh, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer fh.Close() //nolint:errcheck
	return f.readCapped(fh, p)
}

func (f *Fetcher) readCapped(r io.Reader, src string) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: int64(f.maxBytes) + 1}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(b) > f.maxBytes {
		return nil, fmt.Errorf("%s: larger than %d bytes", src, f.maxBytes)
	}
	return b, nil
}
