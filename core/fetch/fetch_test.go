package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, "payload")
	}))
	defer srv.Close()

	c := New(Config{Timeout: time.Second}, testLogger())
	start := time.Now()
	got, err := c.Fetch(context.Background(), srv.URL, Policy{MaxAttempts: 3, BaseDelay: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "payload" {
		t.Errorf("body = %q", got)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	// Backoff schedule is base*2^(attempt-1): 10ms then 20ms.
	if el := time.Since(start); el < 30*time.Millisecond {
		t.Errorf("elapsed %v, want >= 30ms of backoff", el)
	}
}

func TestFetchExhaustsAttempts(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{Timeout: time.Second}, testLogger())
	_, err := c.Fetch(context.Background(), srv.URL, Policy{MaxAttempts: 2, BaseDelay: time.Millisecond})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (4xx must be retried too)", calls)
	}
}

func TestFetchConnectionError(t *testing.T) {
	c := New(Config{Timeout: 100 * time.Millisecond}, testLogger())
	// Reserved port with nothing listening.
	_, err := c.Fetch(context.Background(), "http://127.0.0.1:1/", Policy{MaxAttempts: 1, BaseDelay: time.Millisecond})
	if err == nil {
		t.Fatal("expected transport error")
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(Config{}, testLogger())
	if _, err := c.Fetch(ctx, srv.URL, Policy{MaxAttempts: 5, BaseDelay: time.Second}); err == nil {
		t.Fatal("expected context cancellation to surface")
	}
}
