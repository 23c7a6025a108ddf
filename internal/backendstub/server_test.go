package backendstub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csheth/mailcat/internal/classify"
)

func TestRulesClassify(t *testing.T) {
	rules := DefaultRules()
	cases := map[string]string{
		"Hello, your invoice is attached":   "invoice",
		"free money now!!!":                 "spam",
		"Can we reschedule the MEETING?":    "meeting",
		"Your parcel has shipped":           "shipping",
		"lunch tomorrow?":                   "other",
		"Click to unsubscribe from updates": "newsletter",
	}
	for text, want := range cases {
		if got := rules.Classify(text); got != want {
			t.Fatalf("classify %q: got %s want %s", text, got, want)
		}
	}
}

func TestLoadRules(t *testing.T) {
	t.Run("should parse a yaml table", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "rules.yaml")
		req.NoError(os.WriteFile(path, []byte(`
rules:
  - category: hr
    keywords: [payroll, vacation]
`), 0o644))

		rules, err := LoadRules(path)

		req.NoError(err)
		req.Equal("other", rules.Default)
		req.Equal("hr", rules.Classify("Payroll closes Friday"))
	})

	t.Run("should reject a rule without category", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  - keywords: [x]\n"), 0o644))

		_, err := LoadRules(path)

		require.Error(t, err)
	})
}

func TestHandlerWithClient(t *testing.T) {
	t.Run("should classify a submitted email", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(NewHandler(Options{}))
		defer server.Close()

		client := classify.New(classify.Config{Endpoint: server.URL + predictPath, HTTPClient: server.Client()})
		category, err := client.Predict(context.Background(), "Hello, your invoice is attached")

		req.NoError(err)
		req.Equal("invoice", category)
	})

	t.Run("should surface a forced status as a server error", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(NewHandler(Options{Status: http.StatusServiceUnavailable}))
		defer server.Close()

		client := classify.New(classify.Config{Endpoint: server.URL + predictPath, HTTPClient: server.Client()})
		_, err := client.Predict(context.Background(), "free money now!!!")

		var serverErr *classify.ServerError
		req.True(errors.As(err, &serverErr))
		req.Equal(http.StatusServiceUnavailable, serverErr.StatusCode)
	})

	t.Run("should answer blank text without a category", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(NewHandler(Options{}))
		defer server.Close()

		resp, err := server.Client().Post(server.URL+predictPath, "application/json", strings.NewReader(`{"text":""}`))
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("should reject other methods", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(NewHandler(Options{}))
		defer server.Close()

		resp, err := server.Client().Get(server.URL + predictPath)
		req.NoError(err)
		defer resp.Body.Close()
		req.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestStartServesOnEphemeralPort(t *testing.T) {
	req := require.New(t)
	shutdown, endpoint, err := Start("127.0.0.1:0", Options{})
	req.NoError(err)
	defer shutdown(context.Background())

	category, err := classify.New(classify.Config{Endpoint: endpoint}).Predict(context.Background(), "agenda for the meeting")
	req.NoError(err)
	req.Equal("meeting", category)
}
