package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"credit-simulator/logger"
	"credit-simulator/repository"
)

func newTestRouter(limiter Limiter) http.Handler {
	return NewRouter(RouterConfig{
		ReportHandler:       newReportHandler(),
		UnifiedScoreHandler: newUnifiedScoreHandler(),
		EMIHandler:          newEMIHandler(),
		Limiter:             limiter,
		Log:                 logger.NewNop(),
	})
}

func TestRouter_Healthz(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/credit-report?seed=7", "", http.StatusOK},
		{http.MethodPost, "/api/unified-score", `{"loanType":"Auto Loan","scores":{"Equifax":720}}`, http.StatusOK},
		{http.MethodPost, "/api/emi", `{"amount":50000,"interestRate":0,"tenureMonths":10}`, http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_LimiterGuardsAPIOnly(t *testing.T) {
	limiter := NewSharedRateLimiter(repository.NewMemoryWindowCounter(), 1, time.Minute, logger.NewNop())
	router := newTestRouter(limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/credit-report", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/credit-report", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
