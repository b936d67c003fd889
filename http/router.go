package http

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"credit-simulator/logger"
)

type RouterConfig struct {
	ReportHandler       *ReportHandler
	UnifiedScoreHandler *UnifiedScoreHandler
	EMIHandler          *EMIHandler

	// Limiter guards every /api route. Nil disables rate limiting.
	Limiter Limiter
	Log     *logger.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		if cfg.Limiter == nil {
			return h
		}
		return RateLimitMiddleware(cfg.Limiter, cfg.Log, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.Log, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.ReportHandler != nil {
		mux.Handle("/api/credit-report", limited(cfg.ReportHandler.GenerateReport))
	}
	if cfg.UnifiedScoreHandler != nil {
		mux.Handle("/api/unified-score", limited(cfg.UnifiedScoreHandler.ComputeUnifiedScore))
	}
	if cfg.EMIHandler != nil {
		mux.Handle("/api/emi", limited(cfg.EMIHandler.CalculateEMI))
	}

	return otelhttp.NewHandler(RequestLogger(cfg.Log, mux), "credit-simulator")
}
