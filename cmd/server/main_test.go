package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/isbn-books-api/internal/router"
	"github.com/snnyvrz/isbn-books-api/internal/testutil"
)

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := router.New(router.Options{
		DB:        testutil.NewTestDB(t),
		Logger:    zerolog.Nop(),
		Version:   appVersion,
		StartTime: time.Now(),
	})

	srv := newHTTPServer(":0", h)

	if srv.Addr != ":0" {
		t.Errorf("expected addr :0, got %q", srv.Addr)
	}
	if srv.ReadTimeout != readTimeout || srv.WriteTimeout != writeTimeout || srv.IdleTimeout != idleTimeout {
		t.Errorf("unexpected timeouts: read=%s write=%s idle=%s", srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout)
	}

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}
}
