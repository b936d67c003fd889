package http

import (
	"fmt"
	"net/http"
	"strconv"

	"credit-simulator/logger"
	"credit-simulator/service"
)

type ReportHandler struct {
	service *service.ReportService
	log     *logger.Logger
}

func NewReportHandler(service *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{service: service, log: log}
}

// GenerateReport serves a freshly synthesized credit report. An optional
// ?seed= pins the random stream.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, h.log, http.MethodGet, http.MethodPost)
		return
	}

	var opts service.ReportOptions
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, h.log, fmt.Errorf("%w: seed must be an unsigned integer", service.ErrInvalidInput))
			return
		}
		opts.Seed = &seed
	}

	report := h.service.Generate(r.Context(), opts)
	writeJSON(w, h.log, http.StatusOK, report)
}
