package pagefetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scamurl/internal/config"

	"github.com/stretchr/testify/assert"
)

func testFetcher() *Fetcher {
	return NewFetcher(config.FetcherConfig{
		MaxRedirects: 5,
		MaxSize:      1 << 20,
		UserAgent:    "scamurl-test",
		TimeOut:      2 * time.Second,
	})
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	res := testFetcher().Fetch(context.Background(), srv.URL)

	assert.True(t, res.Available)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(res.Body), "ok")
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dest", http.StatusFound)
	})
	mux.HandleFunc("/dest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res := testFetcher().Fetch(context.Background(), srv.URL)

	assert.True(t, res.Available)
	assert.Contains(t, string(res.Body), "landed")
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	res := testFetcher().Fetch(context.Background(), srv.URL)

	assert.False(t, res.Available, "non-2xx answers degrade to unavailable")
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := testFetcher().Fetch(context.Background(), url)

	assert.False(t, res.Available)
}

func TestFetchUnsupportedScheme(t *testing.T) {
	res := testFetcher().Fetch(context.Background(), "ftp://example.org/file")

	assert.False(t, res.Available)
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := testFetcher().Fetch(ctx, "http://example.org/")

	assert.False(t, res.Available)
}
