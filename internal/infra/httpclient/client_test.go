package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSetsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.UserAgent = "lumen/test"
	resp, err := New(cfg).Get(server.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()

	if got != "lumen/test" {
		t.Fatalf("expected user agent lumen/test, got %q", got)
	}
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond

	resp, err := New(cfg).Get(server.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatalf("expected timeout error")
	}
}
