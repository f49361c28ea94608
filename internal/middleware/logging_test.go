package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func serve(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	chain := chimiddleware.RequestID(Logger(captureLogger(&buf))(h))

	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_RecordsRequest(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	entry := serve(t, h, "/api/reviews")

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/reviews", entry["path"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(5), entry["bytes"])
	assert.NotEmpty(t, entry["requestId"])
}

func TestLogger_DefaultStatusIsOK(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{}"))
	})

	entry := serve(t, h, "/health")
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestLogger_ServerErrorsAtErrorLevel(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	entry := serve(t, h, "/api/reviews/rest-1")
	assert.Equal(t, "ERROR", entry["level"])
}
