package playbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/pkg/config"
)

// newTestFetcher points the allowlist at the httptest server's host so
// fetches resolve against it.
func newTestFetcher(ttl time.Duration, token string) *Fetcher {
	return NewFetcher(&config.PlaybookConfig{
		CacheTTL:       ttl,
		AllowedDomains: []string{"127.0.0.1"},
	}, token)
}

func TestFetcher_Fetch(t *testing.T) {
	var capturedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("# Tone\n\nWarm, concise, always confirm totals."))
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "gh-token-123")
	content, err := fetcher.Fetch(context.Background(), server.URL+"/playbook.md")
	require.NoError(t, err)

	assert.Equal(t, "# Tone\n\nWarm, concise, always confirm totals.", content)
	assert.Equal(t, "Bearer gh-token-123", capturedAuth)
}

func TestFetcher_NoTokenNoAuthHeader(t *testing.T) {
	var capturedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		w.Write([]byte("content"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "")
	_, err := fetcher.Fetch(context.Background(), server.URL+"/playbook.md")
	require.NoError(t, err)
	assert.Empty(t, capturedAuth)
}

func TestFetcher_CachesContent(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("cached content"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "")
	url := server.URL + "/playbook.md"

	for i := 0; i < 3; i++ {
		content, err := fetcher.Fetch(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, "cached content", content)
	}

	assert.Equal(t, int32(1), hits.Load(), "repeat fetches within TTL should hit the cache")
}

func TestFetcher_RefetchesAfterTTL(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("content"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(20*time.Millisecond, "")
	url := server.URL + "/playbook.md"

	_, err := fetcher.Fetch(context.Background(), url)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = fetcher.Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetcher_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "")
	_, err := fetcher.Fetch(context.Background(), server.URL+"/missing.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetcher_DisallowedDomain(t *testing.T) {
	fetcher := NewFetcher(&config.PlaybookConfig{
		CacheTTL:       time.Minute,
		AllowedDomains: []string{"github.com"},
	}, "")

	_, err := fetcher.Fetch(context.Background(), "https://evil.example.com/playbook.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in allowed list")
}

func TestFetcher_TruncatesOversizedPlaybook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("p", maxPlaybookBytes+5000)))
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "")
	content, err := fetcher.Fetch(context.Background(), server.URL+"/huge.md")
	require.NoError(t, err)
	assert.Len(t, content, maxPlaybookBytes)
}

func TestFetcher_ErrorsAreNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(time.Minute, "")
	url := server.URL + "/playbook.md"

	_, err := fetcher.Fetch(context.Background(), url)
	require.Error(t, err)

	content, err := fetcher.Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "recovered", content)
}
