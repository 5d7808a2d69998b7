package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tastelog/internal/domain/categories"
	"tastelog/internal/domain/reviews"
	"tastelog/internal/domain/storage"
	"tastelog/internal/ratelimiter"

	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	catStore := categories.NewMemoryStore()
	revStore := reviews.NewMemoryStore()
	revStore.CategoryName = catStore.Name

	return &application{
		config: config{
			env: "test",
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "secret"},
			},
		},
		logger: zap.NewNop().Sugar(),
		store: &storage.Container{
			Reviews:    revStore,
			Categories: catStore,
		},
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Second),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected response code %d. Got %d", expected, actual)
	}
}
