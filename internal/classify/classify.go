package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultEndpoint matches the address the classification service listens on
	// during local development.
	DefaultEndpoint = "http://127.0.0.1:8000/predict"

	defaultHTTPTimeout = 30 * time.Second
	maxResponseBytes   = 1 << 20
	requestIDHeader    = "X-Request-ID"
)

// Config describes how to build a prediction client.
type Config struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client posts email text to the classification endpoint and returns the
// category it assigns.
type Client struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

// New builds a Client. Empty fields fall back to the local defaults.
func New(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		client:   pickHTTPClient(cfg.HTTPClient, cfg.Timeout),
		log:      log.With(zap.String("component", "classify")),
	}
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Endpoint reports the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Category *string `json:"category"`
}

// Predict classifies text. Blank text is rejected with ErrBlankText before any
// request is made. Every other failure matches ErrPrediction.
func (c *Client) Predict(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrBlankText
	}
	requestID := uuid.NewString()
	log := c.log.With(zap.String("request_id", requestID))

	buf, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrPrediction, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return "", &TransportError{RequestID: requestID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("prediction request failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return "", &TransportError{RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn("prediction response unreadable", zap.Error(err))
		return "", &TransportError{RequestID: requestID, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("prediction rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", previewBody(body)),
		)
		return "", &ServerError{RequestID: requestID, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Warn("prediction payload invalid", zap.Error(err), zap.String("body", previewBody(body)))
		return "", &MalformedResponseError{RequestID: requestID, Reason: "invalid json", Err: err}
	}
	if parsed.Category == nil {
		log.Warn("prediction payload missing category", zap.String("body", previewBody(body)))
		return "", &MalformedResponseError{RequestID: requestID, Reason: "missing category"}
	}
	category := *parsed.Category
	if strings.TrimSpace(category) == "" {
		log.Warn("prediction payload has blank category")
		return "", &MalformedResponseError{RequestID: requestID, Reason: "blank category"}
	}

	log.Info("prediction received",
		zap.String("category", category),
		zap.Duration("elapsed", time.Since(started)),
	)
	return category, nil
}

func previewBody(body []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(body))
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return fmt.Sprintf("%s…", string(runes[:limit]))
}
