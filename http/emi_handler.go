package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"credit-simulator/domain"
	"credit-simulator/logger"
	"credit-simulator/service"
)

type EMIHandler struct {
	service *service.EMIService
	log     *logger.Logger
}

func NewEMIHandler(service *service.EMIService, log *logger.Logger) *EMIHandler {
	return &EMIHandler{service: service, log: log}
}

func (h *EMIHandler) CalculateEMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, h.log, http.MethodPost)
		return
	}

	var input domain.EMIInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&input); err != nil {
		writeError(w, h.log, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
