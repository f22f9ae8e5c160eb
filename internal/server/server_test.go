package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"foodData.json":   `[{"name":"Rice","calories":130,"protein":2.7,"carbs":28,"fat":0.3,"sodium":1,"sugar":0.1}]`,
		"recipes.json":    `[{"id":"r1","title":"Plain Rice","ingredients":[{"name":"Rice","grams":200}],"steps":["Cook."]}]`,
		"conditions.json": `[{"code":"GENERAL","name":"General/Default"}]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return &config.Config{
		Server: config.ServerConfig{Port: "0", ShutdownTimeout: time.Second},
		Data:   config.DataConfig{Dir: dir},
	}
}

func TestNew(t *testing.T) {
	t.Run("wires routes over loaded reference data", func(t *testing.T) {
		srv, err := New(testConfig(t), zap.NewNop())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/diet/conditions", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "GENERAL")
	})

	t.Run("chat is unavailable without an API key", func(t *testing.T) {
		srv, err := New(testConfig(t), zap.NewNop())
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/chat", nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("missing reference data fails startup", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Data.Dir = t.TempDir()

		_, err := New(cfg, zap.NewNop())
		assert.Error(t, err)
	})
}
