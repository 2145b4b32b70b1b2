package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zoning-feasibility/internal/api/models"
	"zoning-feasibility/internal/data"
	"zoning-feasibility/internal/engine"

	"github.com/gin-gonic/gin"
)

func newTestRouter(h *AnalyzeHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/analyze", h.Analyze)
	return r
}

func postAnalyze(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validLotBody = `{
	"lot": {
		"bbl": "3012340056",
		"borough": 3,
		"zoning_districts": ["R7A"],
		"lot_area": 10000,
		"lot_frontage": 100,
		"lot_depth": 100
	}
}`

func TestAnalyzeEndpoint(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, nil, 0)
	w := postAnalyze(t, newTestRouter(h), validLotBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Cached {
		t.Errorf("status/cached = %q/%v", resp.Status, resp.Cached)
	}
	if resp.Result == nil || len(resp.Result.Scenarios) == 0 {
		t.Fatalf("no scenarios in response")
	}
}

func TestAnalyzeEndpointCaches(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, data.NewCache(), time.Minute)
	r := newTestRouter(h)

	if w := postAnalyze(t, r, validLotBody); w.Code != http.StatusOK {
		t.Fatalf("first request: %d", w.Code)
	}
	w := postAnalyze(t, r, validLotBody)
	if w.Code != http.StatusOK {
		t.Fatalf("second request: %d", w.Code)
	}
	var resp models.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Cached {
		t.Errorf("identical second request should be served from cache")
	}
}

func TestAnalyzeEndpointMissingLot(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, nil, 0)
	w := postAnalyze(t, newTestRouter(h), `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "MISSING_LOT" {
		t.Errorf("error code = %q, want MISSING_LOT", resp.Error.Code)
	}
}

func TestAnalyzeEndpointInvalidLot(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, nil, 0)
	w := postAnalyze(t, newTestRouter(h), `{"lot": {"bbl": "3012340056", "borough": 3, "lot_area": 10000, "zoning_districts": []}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "INVALID_LOT" {
		t.Errorf("error code = %q, want INVALID_LOT", resp.Error.Code)
	}
}

func TestAnalyzeEndpointBBLWithoutPluto(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, nil, 0)
	w := postAnalyze(t, newTestRouter(h), `{"bbl": "3012340056"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "PLUTO_UNAVAILABLE" {
		t.Errorf("error code = %q, want PLUTO_UNAVAILABLE", resp.Error.Code)
	}
}

func TestAnalyzeEndpointStreetWidthOption(t *testing.T) {
	h := NewAnalyzeHandler(engine.NewCalculator(), nil, nil, 0)
	body := `{
		"lot": {
			"bbl": "3012340056",
			"borough": 3,
			"zoning_districts": ["R6"],
			"lot_area": 10000
		},
		"options": {"street_width_ft": 80}
	}`
	w := postAnalyze(t, newTestRouter(h), body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// R6 QH FAR is street-width dependent: 3.0 on a wide street.
	if resp.Result.Envelope.ResidentialFAR != 3.0 {
		t.Errorf("R6 wide-street FAR = %v, want 3.0", resp.Result.Envelope.ResidentialFAR)
	}
}
