package playbook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vendrahq/vendra/pkg/config"
)

// maxPlaybookBytes caps fetched content. The playbook is injected into the
// system prompt, so an oversized document would blow the token budget.
const maxPlaybookBytes = 64 * 1024

// Fetcher downloads playbooks over HTTP with TTL caching. One instance
// serves all tenants; the cache is keyed by normalized URL.
type Fetcher struct {
	httpClient *http.Client
	token      string
	cache      *Cache
	cfg        *config.PlaybookConfig
}

// NewFetcher creates a playbook fetcher. githubToken is the resolved token
// value (empty string = no auth, public URLs only).
func NewFetcher(cfg *config.PlaybookConfig, githubToken string) *Fetcher {
	cacheTTL := 5 * time.Minute
	if cfg != nil && cfg.CacheTTL > 0 {
		cacheTTL = cfg.CacheTTL
	}

	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      githubToken,
		cache:      NewCache(cacheTTL),
		cfg:        cfg,
	}
}

// Fetch returns the playbook at rawURL, from cache when fresh. GitHub blob
// URLs are normalized to raw content URLs first. On error the caller runs
// the turn without a playbook; a tenant's repo being down must not take
// their assistant down with it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	var allowedDomains []string
	if f.cfg != nil {
		allowedDomains = f.cfg.AllowedDomains
	}
	if err := ValidatePlaybookURL(rawURL, allowedDomains); err != nil {
		return "", err
	}

	downloadURL := ConvertToRawURL(rawURL)
	if content, ok := f.cache.Get(downloadURL); ok {
		return content, nil
	}

	content, err := f.download(ctx, downloadURL)
	if err != nil {
		return "", err
	}

	f.cache.Set(downloadURL, content)
	return content, nil
}

func (f *Fetcher) download(ctx context.Context, downloadURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch playbook from %s: %w", downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("playbook host returned HTTP %d for %s", resp.StatusCode, downloadURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPlaybookBytes+1))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if len(body) > maxPlaybookBytes {
		slog.Warn("Playbook exceeds size cap, truncating",
			"url", downloadURL, "cap_bytes", maxPlaybookBytes)
		body = body[:maxPlaybookBytes]
	}

	return string(body), nil
}
