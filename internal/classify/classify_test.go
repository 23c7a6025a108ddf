package classify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"
)

func TestPredictPostsTextAndReturnsCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		if r.Header.Get(requestIDHeader) == "" {
			t.Fatal("expected request id header")
		}
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.Text != "Hello, your invoice is attached" {
			t.Fatalf("unexpected text: %q", payload.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category":"invoice","confidence":0.93}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL + "/predict", HTTPClient: server.Client()})
	category, err := client.Predict(context.Background(), "Hello, your invoice is attached")
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if category != "invoice" {
		t.Fatalf("unexpected category: %s", category)
	}
}

func TestPredictBlankTextSkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	for _, text := range []string{"", "   ", "\n\t \n"} {
		if _, err := client.Predict(context.Background(), text); !errors.Is(err, ErrBlankText) {
			t.Fatalf("expected ErrBlankText for %q, got %v", text, err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("expected no requests, got %d", got)
	}
}

func TestPredictFailuresMatchErrPrediction(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   string
	}{
		{name: "service unavailable", status: http.StatusServiceUnavailable, body: `{"detail":"busy"}`, kind: "server"},
		{name: "internal error", status: http.StatusInternalServerError, body: ``, kind: "server"},
		{name: "invalid json", status: http.StatusOK, body: `{"category":`, kind: "malformed"},
		{name: "missing category", status: http.StatusOK, body: `{"error":"No text provided"}`, kind: "malformed"},
		{name: "null category", status: http.StatusOK, body: `{"category":null}`, kind: "malformed"},
		{name: "numeric category", status: http.StatusOK, body: `{"category":3}`, kind: "malformed"},
		{name: "blank category", status: http.StatusOK, body: `{"category":"  "}`, kind: "malformed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
			category, err := client.Predict(context.Background(), "free money now!!!")
			if err == nil {
				t.Fatalf("expected error, got category %q", category)
			}
			if !errors.Is(err, ErrPrediction) {
				t.Fatalf("expected ErrPrediction, got %v", err)
			}
			if got := Kind(err); got != tc.kind {
				t.Fatalf("kind mismatch: got %s want %s", got, tc.kind)
			}
		})
	}
}

func TestPredictServerErrorKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, HTTPClient: server.Client()})
	_, err := client.Predict(context.Background(), "free money now!!!")
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected *ServerError, got %T", err)
	}
	if serverErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", serverErr.StatusCode)
	}
	if serverErr.RequestID == "" {
		t.Fatal("expected request id to be recorded")
	}
}

func TestPredictConnectionRefusedIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := New(Config{Endpoint: endpoint, Timeout: time.Second})
	_, err := client.Predict(context.Background(), "hello")
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if !errors.Is(err, ErrPrediction) {
		t.Fatal("transport error should match ErrPrediction")
	}
}

func TestPredictTimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(Config{Endpoint: server.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Predict(context.Background(), "hello")
	if got := Kind(err); got != "transport" {
		t.Fatalf("expected transport failure, got %s (%v)", got, err)
	}
}

func TestNewFallsBackToDefaultEndpoint(t *testing.T) {
	client := New(Config{})
	if client.Endpoint() != DefaultEndpoint {
		t.Fatalf("unexpected endpoint: %s", client.Endpoint())
	}
}

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	if got := pickHTTPClient(custom, time.Second); got != custom {
		t.Fatalf("expected custom client to be returned")
	}
}

func TestPickHTTPClientUsesDefaultTimeout(t *testing.T) {
	client := pickHTTPClient(nil, 0)
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, client.Timeout)
	}
}

func TestPredictReturnsCategoryVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":"  invoice\n"}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL + "/predict", HTTPClient: server.Client()})
	category, err := client.Predict(context.Background(), "Receipt attached")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if category != "  invoice\n" {
		t.Fatalf("expected padded category unchanged, got %q", category)
	}
}

func TestPreviewBodyCutsOnRuneBoundary(t *testing.T) {
	preview := previewBody([]byte(strings.Repeat("é", 300)))
	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid UTF-8: %q", preview)
	}
	if got := utf8.RuneCountInString(preview); got != 257 {
		t.Fatalf("expected 256 runes plus ellipsis, got %d", got)
	}
	if !strings.HasSuffix(preview, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", preview)
	}

	short := previewBody([]byte("  café  "))
	if short != "café" {
		t.Fatalf("expected trimmed short body, got %q", short)
	}
}
