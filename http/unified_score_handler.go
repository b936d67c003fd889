package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"credit-simulator/domain"
	"credit-simulator/logger"
	"credit-simulator/service"
)

const maxRequestBody = 1 << 16

type UnifiedScoreHandler struct {
	service *service.UnifiedScoreService
	log     *logger.Logger
}

func NewUnifiedScoreHandler(service *service.UnifiedScoreService, log *logger.Logger) *UnifiedScoreHandler {
	return &UnifiedScoreHandler{service: service, log: log}
}

func (h *UnifiedScoreHandler) ComputeUnifiedScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, h.log, http.MethodPost)
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		writeError(w, h.log, &apiError{
			Status: http.StatusUnsupportedMediaType,
			Code:   codeUnsupportedMedia,
			Err:    errors.New("content type must be application/json"),
		})
		return
	}

	var req domain.UnifiedScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.log.Debug("error decoding request body", "error", err)
		writeError(w, h.log, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	result, err := h.service.Compute(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
