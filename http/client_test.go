package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bamchi/hashscraper"
	hshttp "github.com/bamchi/hashscraper/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Render(t *testing.T) {
	t.Parallel()

	t.Run("posts the scrape request and returns the rendered page", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/scrape", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get(hshttp.APIKeyHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"data":{"html":"<html><body>Hi</body></html>","url":"https://example.com/final","title":"Example"}}`))
		}))
		defer server.Close()

		client := hshttp.NewClient(hshttp.WithBaseURL(server.URL), hshttp.WithAPIKey("secret"))

		page, err := client.Render(context.Background(), "https://example.com", hashscraper.WaitDOMContentLoaded)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hi</body></html>", page.HTML)
		assert.Equal(t, "https://example.com/final", page.URL)
		assert.Equal(t, "Example", page.Title)
		assert.Equal(t, map[string]any{
			"url":        "https://example.com",
			"wait_for":   "domcontentloaded",
			"javascript": true,
		}, got)
	})

	t.Run("omits the API key header when no key is configured", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header[http.CanonicalHeaderKey(hshttp.APIKeyHeader)]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"success":true,"data":{"html":"<p>x</p>"}}`))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.NoError(t, err)
	})

	t.Run("reports the service error when success is false", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":"Insufficient credits"}`))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.Equal(t, hashscraper.EUNAVAILABLE, hashscraper.ErrorCode(err))
		assert.Equal(t, "Insufficient credits", hashscraper.ErrorMessage(err))
	})

	t.Run("uses a default message when the service gives none", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.Equal(t, "Failed to scrape the page.", hashscraper.ErrorMessage(err))
	})

	t.Run("maps non-2xx responses to unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Invalid API key"}`))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.Equal(t, hashscraper.EUNAVAILABLE, hashscraper.ErrorCode(err))
		assert.Equal(t, "Invalid API key", hashscraper.ErrorMessage(err))
	})

	t.Run("reports the status code when the error body is not JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.Contains(t, hashscraper.ErrorMessage(err), "HTTP 502")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := hshttp.NewClient(hshttp.WithBaseURL(server.URL), hshttp.WithTimeout(10*time.Millisecond))

		_, err := client.Render(context.Background(), "https://example.com", hashscraper.WaitLoad)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(ctx, "https://example.com", hashscraper.WaitLoad)
		require.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Render(context.Background(), "https://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response")
	})
}

func TestClient_Usage(t *testing.T) {
	t.Parallel()

	t.Run("returns account usage", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/usage", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"data":{"plan":"Pro","credits_total":10000,"credits_used":1234,"credits_remaining":8766,"reset_date":"2026-11-01"}}`))
		}))
		defer server.Close()

		usage, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL+"/")).Usage(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &hashscraper.Usage{
			Plan:             "Pro",
			CreditsTotal:     10000,
			CreditsUsed:      1234,
			CreditsRemaining: 8766,
			ResetDate:        "2026-11-01",
		}, usage)
	})

	t.Run("uses a default message when the service gives none", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":""}`))
		}))
		defer server.Close()

		_, err := hshttp.NewClient(hshttp.WithBaseURL(server.URL)).Usage(context.Background())

		require.Error(t, err)
		assert.Equal(t, hashscraper.EUNAVAILABLE, hashscraper.ErrorCode(err))
		assert.Equal(t, "Failed to retrieve usage information.", hashscraper.ErrorMessage(err))
	})
}
