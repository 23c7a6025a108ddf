// Package backendstub serves a stand-in for the classification backend:
// POST /predict with {"text": ...} answered by a keyword table. It exists for
// local development and end-to-end tests, not for real classification.
package backendstub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAddr matches the address the client targets by default.
	DefaultAddr = "127.0.0.1:8000"

	predictPath  = "/predict"
	maxBodyBytes = 1 << 20
)

// Options configures the stub.
type Options struct {
	Rules Rules
	// Status forces every /predict response to this status when non-zero
	// and not 200.
	Status int
	Delay  time.Duration
	Logger *zap.Logger
}

type handler struct {
	opts Options
	log  *zap.Logger
}

// NewHandler returns the HTTP handler serving /predict.
func NewHandler(opts Options) http.Handler {
	if opts.Rules.Default == "" && len(opts.Rules.Rules) == 0 {
		opts.Rules = DefaultRules()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	h := &handler{opts: opts, log: log.With(zap.String("component", "backendstub"))}
	mux := http.NewServeMux()
	mux.HandleFunc(predictPath, h.predict)
	return mux
}

func (h *handler) predict(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(zap.String("request_id", r.Header.Get("X-Request-ID")))
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
		return
	}
	if h.opts.Delay > 0 {
		select {
		case <-time.After(h.opts.Delay):
		case <-r.Context().Done():
			return
		}
	}
	if h.opts.Status != 0 && h.opts.Status != http.StatusOK {
		log.Info("forced failure", zap.Int("status", h.opts.Status))
		writeJSON(w, h.opts.Status, map[string]string{"detail": http.StatusText(h.opts.Status)})
		return
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		log.Warn("invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		writeJSON(w, http.StatusOK, map[string]string{"error": "No text provided"})
		return
	}
	category := h.opts.Rules.Classify(payload.Text)
	log.Info("classified", zap.String("category", category), zap.Int("chars", len(payload.Text)))
	writeJSON(w, http.StatusOK, map[string]string{"category": category})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Start listens on addr (DefaultAddr when empty) and serves the stub in the
// background. It returns a shutdown function and the predict endpoint URL.
func Start(addr string, opts Options) (func(context.Context) error, string, error) {
	if strings.TrimSpace(addr) == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && opts.Logger != nil {
			opts.Logger.Error("stub server stopped", zap.Error(err))
		}
	}()
	endpoint := fmt.Sprintf("http://%s%s", ln.Addr().String(), predictPath)
	return srv.Shutdown, endpoint, nil
}
