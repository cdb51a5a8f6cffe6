//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *rod.BrowserManager {
	t.Helper()
	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("returns JavaScript-rendered HTML with URL and title", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/final", http.StatusFound)
		})
		mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'JavaScript Rendered';
</script>
</body>
</html>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		renderer := rod.NewRenderer(newManager(t))

		for _, wait := range hashscraper.WaitStrategies {
			page, err := renderer.Render(context.Background(), srv.URL+"/start", wait)

			require.NoError(t, err, "wait=%s", wait)
			assert.Contains(t, page.HTML, "JavaScript Rendered")
			assert.NotContains(t, page.HTML, "Loading...")
			assert.Equal(t, srv.URL+"/final", page.URL)
			assert.Equal(t, "Test Page", page.Title)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rod.NewRenderer(newManager(t)).Render(ctx, "http://example.com", hashscraper.WaitLoad)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("times out on slow pages", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
		}))
		defer srv.Close()

		renderer := rod.NewRenderer(newManager(t), rod.WithRenderTimeout(100*time.Millisecond))

		_, err := renderer.Render(context.Background(), srv.URL, hashscraper.WaitLoad)

		require.Error(t, err)
	})
}
