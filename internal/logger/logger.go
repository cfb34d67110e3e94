// Package logger wraps slog with the fields the HTTP layer attaches.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// New returns a text logger at debug level in development and a JSON logger otherwise.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Discard is a logger for tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	if requestID == "" {
		return l
	}
	return &Logger{Logger: l.With(slog.String("request_id", requestID))}
}

func (l *Logger) HTTPRequest(requestID, method, uri string, status int, latencyMs float64, clientIP string) {
	l.WithRequestID(requestID).Info("http_request",
		slog.String("method", method),
		slog.String("uri", uri),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

func (l *Logger) HTTPError(requestID, method, uri string, status int, err error) {
	l.WithRequestID(requestID).Error("http_error",
		slog.String("method", method),
		slog.String("uri", uri),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
}

func (l *Logger) UpstreamError(upstream string, err error) {
	l.Warn("upstream_error",
		slog.String("upstream", upstream),
		slog.String("error", err.Error()),
	)
}
