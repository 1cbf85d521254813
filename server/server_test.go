package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/engine"
	"github.com/pileup/pileup/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetUserNameFunc:     func() string { return "alex" },
	}
}

func TestServer_statusHandler(t *testing.T) {
	store := &mocks.StoreMock{
		CountByStatusFunc: func(ctx context.Context, status domain.Status) (int, error) {
			assert.Equal(t, domain.StatusUnplayed, status)
			return 42, nil
		},
	}

	srv := New(testConfig(), store, &mocks.SchedulerMock{}, engine.New(), "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.InDelta(t, 42, status["unplayed"], 0.1)
	assert.NotEmpty(t, status["time"])
}

func TestServer_pingMiddleware(t *testing.T) {
	srv := New(testConfig(), &mocks.StoreMock{}, &mocks.SchedulerMock{}, engine.New(), "test", false)

	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestServer_Run(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", time.Second },
		GetUserNameFunc:     func() string { return "alex" },
	}
	srv := New(cfg, &mocks.StoreMock{}, &mocks.SchedulerMock{}, engine.New(), "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
