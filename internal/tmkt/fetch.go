package tmkt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// BaseURL is the site origin; team hrefs on league pages are relative to it.
const BaseURL = "https://www.transfermarkt.com"

var httpCli = &http.Client{Timeout: 30 * time.Second}

// Transfermarkt rejects requests without a browser User-Agent.
const defaultUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36 Edg/122.0.0.0"

// Fetcher issues plain GETs with a fixed header set. No retries: a failed
// fetch propagates to the caller and the collector decides what to skip.
type Fetcher struct {
	client  *http.Client
	headers map[string]string
}

// DefaultHeaders returns the header set used when none is supplied.
func DefaultHeaders() map[string]string {
	return map[string]string{"User-Agent": defaultUA}
}

func NewFetcher(headers map[string]string) *Fetcher {
	if len(headers) == 0 {
		headers = DefaultHeaders()
	}
	return &Fetcher{client: httpCli, headers: headers}
}

// GetText fetches url and returns the response body as a string.
func (f *Fetcher) GetText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUA)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}
	return string(b), nil
}
