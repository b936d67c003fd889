package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-simulator/domain"
	"credit-simulator/logger"
	"credit-simulator/service"
)

func newUnifiedScoreHandler() *UnifiedScoreHandler {
	log := logger.NewNop()
	return NewUnifiedScoreHandler(service.NewUnifiedScoreService(service.DefaultCatalog(), log), log)
}

func newReportHandler() *ReportHandler {
	log := logger.NewNop()
	return NewReportHandler(service.NewReportService(service.DefaultCatalog(), log), log)
}

func newEMIHandler() *EMIHandler {
	log := logger.NewNop()
	return NewEMIHandler(service.NewEMIService(log), log)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env.Error
}

func TestUnifiedScoreHandler_OK(t *testing.T) {
	handler := newUnifiedScoreHandler()

	body := []byte(`{
		"loanType": "Home Loan",
		"scores": {"CIBIL": 800, "Equifax": 750, "Experian": 780, "CRIF": 600}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/unified-score", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ComputeUnifiedScore(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.UnifiedScoreResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 755, result.UnifiedScore)
	assert.Equal(t, []string{}, result.MissingBureaus)
	assert.Equal(t, "0.60", result.ScoreBreakdown[0].Weight)
}

func TestUnifiedScoreHandler_NullScore(t *testing.T) {
	handler := newUnifiedScoreHandler()

	body := []byte(`{"loanType":"Personal Loan","scores":{"Experian":780,"Equifax":750,"CIBIL":800,"CRIF":null}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/unified-score", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.ComputeUnifiedScore(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.UnifiedScoreResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 774, result.UnifiedScore)
	assert.Equal(t, []string{domain.BureauCRIF}, result.MissingBureaus)
}

func TestUnifiedScoreHandler_UnknownLoanType(t *testing.T) {
	handler := newUnifiedScoreHandler()

	body := []byte(`{"loanType":"Unknown Loan","scores":{"CIBIL":700}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/unified-score", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.ComputeUnifiedScore(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	assert.Equal(t, codeUnknownLoanType, decodeError(t, w).Code)
}

func TestUnifiedScoreHandler_MethodNotAllowed(t *testing.T) {
	handler := newUnifiedScoreHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/unified-score", nil)
	w := httptest.NewRecorder()

	handler.ComputeUnifiedScore(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestUnifiedScoreHandler_BadRequest(t *testing.T) {
	handler := newUnifiedScoreHandler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"loanType":`},
		{"missing loan type", `{"scores":{"CIBIL":700}}`},
		{"missing scores", `{"loanType":"Home Loan"}`},
		{"score out of range", `{"loanType":"Home Loan","scores":{"CIBIL":1200}}`},
		{"non numeric score", `{"loanType":"Home Loan","scores":{"CIBIL":"high"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/unified-score", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ComputeUnifiedScore(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			assert.Equal(t, codeInvalidInput, decodeError(t, w).Code)
		})
	}
}

func TestUnifiedScoreHandler_UnsupportedMediaType(t *testing.T) {
	handler := newUnifiedScoreHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/unified-score", bytes.NewBufferString("loanType=Home"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.ComputeUnifiedScore(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", w.Code)
	}
	assert.Equal(t, codeUnsupportedMedia, decodeError(t, w).Code)
}

func TestReportHandler_SeedIsDeterministic(t *testing.T) {
	handler := newReportHandler()

	fetch := func() domain.CreditReport {
		req := httptest.NewRequest(http.MethodGet, "/api/credit-report?seed=42", nil)
		w := httptest.NewRecorder()
		handler.GenerateReport(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var report domain.CreditReport
		require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
		return report
	}

	a, b := fetch(), fetch()
	assert.Equal(t, uint64(42), a.Seed)
	assert.Equal(t, a.ReportID, b.ReportID)
	assert.Equal(t, a.BureauScores, b.BureauScores)
	assert.Equal(t, a.Loans, b.Loans)
}

func TestReportHandler_PostWithoutSeed(t *testing.T) {
	handler := newReportHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/credit-report", nil)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestReportHandler_BadSeed(t *testing.T) {
	handler := newReportHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/credit-report?seed=-1", nil)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_MethodNotAllowed(t *testing.T) {
	handler := newReportHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/credit-report", nil)
	w := httptest.NewRecorder()

	handler.GenerateReport(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, w.Header().Values("Allow"))
}

func TestEMIHandler_OK(t *testing.T) {
	handler := newEMIHandler()

	body := []byte(`{"amount": 100000, "interestRate": 10, "tenureMonths": 24}`)
	req := httptest.NewRequest(http.MethodPost, "/api/emi", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateEMI(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.EMIResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 4614, result.EMI)
}

func TestEMIHandler_BadRequest(t *testing.T) {
	handler := newEMIHandler()

	body := []byte(`{"amount": -1, "interestRate": 10, "tenureMonths": 24}`)
	req := httptest.NewRequest(http.MethodPost, "/api/emi", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateEMI(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEMIHandler_MethodNotAllowed(t *testing.T) {
	handler := newEMIHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/emi", nil)
	w := httptest.NewRecorder()

	handler.CalculateEMI(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestToAPIError_ConfigurationGapIsServerError(t *testing.T) {
	ae := toAPIError(service.ErrConfigurationGap)
	assert.Equal(t, http.StatusInternalServerError, ae.Status)
	assert.Equal(t, codeConfigurationGap, ae.Code)
}
