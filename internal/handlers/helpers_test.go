package handlers_test

import (
	"VeriUser/internal/config"
	"VeriUser/internal/handlers"
	"VeriUser/internal/repo/repotest"
	"VeriUser/internal/service"
	"VeriUser/internal/store"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWith(t, repotest.NewMemKV())
}

func newTestRouterWith(t *testing.T, kv *repotest.MemKV) http.Handler {
	t.Helper()
	st, err := store.Open(context.Background(), kv)
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()
	cfg := &config.Config{ImportMaxSizeMB: 1}

	records := service.NewRecordService(st, logger).WithClock(func() time.Time { return testNow })
	registries := service.NewRegistryService(st, logger)
	return handlers.NewHandler(records, registries, logger, cfg).Router
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func validRecordBody() map[string]any {
	return map[string]any{
		"name":     "Иван Иванов",
		"username": "ivan",
		"channel":  "@ivan_channel",
		"age":      "25",
		"patents":  []string{"Пользователю Иван принадлежит @ivan"},
		"status":   "verified",
	}
}
