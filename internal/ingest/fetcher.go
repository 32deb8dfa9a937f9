package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/worker"
)

// Fetcher retrieves documents over HTTP. Every fetch passes the host's
// robots.txt and a per-host rate limit before the request goes out.
type Fetcher struct {
	httpClient *http.Client
	robots     *RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a Fetcher from the HTTP configuration.
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	transport := &http.Transport{
		Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limiter:   worker.NewLimiter(1, 2),
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// FromURL fetches a document and reduces it to plain text. HTML
// responses are tag-stripped; anything else is returned as-is.
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) (string, error) {
	allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", fmt.Errorf("robots.txt disallows %s", rawURL)
	}
	if err := f.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") || looksLikeHTML(body) {
		return HTMLToText(string(body))
	}
	return string(body), nil
}
