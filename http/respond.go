package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"credit-simulator/logger"
	"credit-simulator/service"
)

const (
	codeInvalidInput     = "invalid_input"
	codeUnknownLoanType  = "unknown_loan_type"
	codeConfigurationGap = "configuration_gap"
	codeRateLimited      = "rate_limited"
	codeMethodNotAllowed = "method_not_allowed"
	codeUnsupportedMedia = "unsupported_media_type"
	codeInternal         = "internal"
)

type apiError struct {
	Status int
	Code   string
	Err    error
}

func (e *apiError) Error() string { return e.Err.Error() }

func (e *apiError) Unwrap() error { return e.Err }

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// toAPIError maps service errors onto HTTP statuses and stable codes.
func toAPIError(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return &apiError{Status: http.StatusBadRequest, Code: codeInvalidInput, Err: err}
	case errors.Is(err, service.ErrUnknownLoanType):
		return &apiError{Status: http.StatusBadRequest, Code: codeUnknownLoanType, Err: err}
	case errors.Is(err, service.ErrConfigurationGap):
		return &apiError{Status: http.StatusInternalServerError, Code: codeConfigurationGap, Err: err}
	default:
		return &apiError{Status: http.StatusInternalServerError, Code: codeInternal, Err: err}
	}
}

func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	ae := toAPIError(err)
	if ae.Status >= http.StatusInternalServerError {
		log.Error("request failed", "code", ae.Code, "error", err)
	}
	writeJSON(w, log, ae.Status, errorEnvelope{
		Error: errorBody{Message: ae.Err.Error(), Code: ae.Code},
	})
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written body behind a 200 header.
func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("error writing response", "error", err)
	}
}

func methodNotAllowed(w http.ResponseWriter, log *logger.Logger, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	writeJSON(w, log, http.StatusMethodNotAllowed, errorEnvelope{
		Error: errorBody{Message: "method not allowed", Code: codeMethodNotAllowed},
	})
}
