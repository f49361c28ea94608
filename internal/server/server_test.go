package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/restaurant-reviews/internal/catalog"
	"github.com/sakif/restaurant-reviews/internal/config"
	"github.com/sakif/restaurant-reviews/internal/repository/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            5000,
		DocStore:        config.StoreMemory,
		CORSOrigins:     []string{"*"},
		ShutdownTimeout: time.Second,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newWithStore(testConfig(), testLogger(), memory.New(), catalog.Default())
}

func request(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestRoutes_ReviewLifecycle(t *testing.T) {
	s := newTestServer(t)

	rr := request(t, s, http.MethodPost, "/api/reviews",
		`{"restaurantId":"rest-2","restaurantName":"Spur Steak Ranch - Waterfront","userId":"u1","userName":"Ann","rating":4,"comment":"Good ribs"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	rr = request(t, s, http.MethodGet, "/api/reviews/rest-2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.NotNil(t, listed[0]["createdAt"], "timestamps are resolved on read")

	rr = request(t, s, http.MethodPut, "/api/reviews/"+created.ID, `{"rating":5,"comment":"Great ribs","userId":"u1"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = request(t, s, http.MethodGet, "/api/user-reviews/u1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Great ribs")

	rr = request(t, s, http.MethodDelete, "/api/reviews/"+created.ID+"?userId=u2", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = request(t, s, http.MethodDelete, "/api/reviews/"+created.ID+"?userId=u1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = request(t, s, http.MethodDelete, "/api/reviews/"+created.ID+"?userId=u1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_SearchIsNotAnID(t *testing.T) {
	s := newTestServer(t)

	rr := request(t, s, http.MethodGet, "/api/restaurants/search?query=durban", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Businesses []struct {
			ID string `json:"id"`
		} `json:"businesses"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	require.Len(t, res.Businesses, 1)
	assert.Equal(t, "rest-3", res.Businesses[0].ID)
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer(t)

	rr := request(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Server is running"}`, rr.Body.String())
}

func TestRoutes_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/reviews", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_UnknownRoute(t *testing.T) {
	rr := request(t, newTestServer(t), http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := openStore(ctx, testConfig())
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("sqlite creates the data directory", func(t *testing.T) {
		cfg := testConfig()
		cfg.DocStore = config.StoreSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "nested", "reviews.db")

		store, err := openStore(ctx, cfg)
		require.NoError(t, err)
		defer store.Close()

		_, err = os.Stat(filepath.Dir(cfg.SQLitePath))
		assert.NoError(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig()
		cfg.DocStore = "mongo"
		_, err := openStore(ctx, cfg)
		assert.Error(t, err)
	})
}
