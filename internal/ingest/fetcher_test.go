package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkoval/redline/internal/model"
)

func newTestFetcher(maxBytes int64) *Fetcher {
	return NewFetcher(model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "redline-test",
		MaxBodyBytes: maxBytes,
	})
}

func TestFromURLHTML(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/doc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><style>p{}</style></head><body><p>Hello clause.</p><script>x()</script></body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	got, err := newTestFetcher(1<<20).FromURL(context.Background(), server.URL+"/doc")
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if got != "Hello clause." {
		t.Errorf("got %q", got)
	}
}

func TestFromURLPlainText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/doc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "Raw text body.")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	got, err := newTestFetcher(1<<20).FromURL(context.Background(), server.URL+"/doc")
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if got != "Raw text body." {
		t.Errorf("got %q", got)
	}
}

func TestFromURLRobots(t *testing.T) {
	var robotsHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		robotsHits.Add(1)
		fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
	})
	mux.HandleFunc("/private/doc", func(w http.ResponseWriter, r *http.Request) {
		t.Error("disallowed path was fetched")
	})
	mux.HandleFunc("/public/doc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "Public doc.")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := newTestFetcher(1 << 20)

	_, err := fetcher.FromURL(context.Background(), server.URL+"/private/doc")
	if err == nil || !strings.Contains(err.Error(), "robots.txt disallows") {
		t.Fatalf("error = %v, want a robots refusal", err)
	}

	got, err := fetcher.FromURL(context.Background(), server.URL+"/public/doc")
	if err != nil {
		t.Fatalf("FromURL public: %v", err)
	}
	if got != "Public doc." {
		t.Errorf("got %q", got)
	}

	// Same host, so robots.txt is fetched once and cached.
	if robotsHits.Load() != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", robotsHits.Load())
	}
}

func TestFromURLStatusError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/doc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestFetcher(1<<20).FromURL(context.Background(), server.URL+"/doc")
	if err == nil || !strings.Contains(err.Error(), "unexpected status: 503") {
		t.Errorf("error = %v", err)
	}
}

func TestFromURLBodyLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/doc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "0123456789ABCDEF")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	got, err := newTestFetcher(10).FromURL(context.Background(), server.URL+"/doc")
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if got != "0123456789" {
		t.Errorf("got %q, want the body cut at 10 bytes", got)
	}
}

func TestFromURLRedirectLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := newTestFetcher(1<<20).FromURL(context.Background(), server.URL+"/loop")
	if err == nil || !strings.Contains(err.Error(), "stopped after 3 redirects") {
		t.Errorf("error = %v", err)
	}
}
