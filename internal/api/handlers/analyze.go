package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"zoning-feasibility/internal/api/models"
	"zoning-feasibility/internal/data"
	"zoning-feasibility/internal/engine"
	"zoning-feasibility/internal/model"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles lot analysis requests.
type AnalyzeHandler struct {
	Calc        *engine.Calculator
	Pluto       *data.PlutoClient
	Cache       *data.Cache
	AnalysisTTL time.Duration
}

// NewAnalyzeHandler creates an analysis handler. Cache may be nil to
// disable result caching; Pluto may be nil when only full profiles are
// accepted.
func NewAnalyzeHandler(calc *engine.Calculator, pluto *data.PlutoClient, cache *data.Cache, ttl time.Duration) *AnalyzeHandler {
	if ttl <= 0 {
		ttl = data.TTLAnalysis
	}
	return &AnalyzeHandler{Calc: calc, Pluto: pluto, Cache: cache, AnalysisTTL: ttl}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	lot, ok := h.resolveLot(c, &req)
	if !ok {
		return
	}

	cacheKey := ""
	if h.Cache != nil && !req.Options.SkipCache {
		payload, err := json.Marshal(req)
		if err == nil {
			cacheKey = data.RequestKey(payload)
			if cached, found := h.Cache.Get("analysis", cacheKey); found {
				if result, ok := cached.(*model.CalculationResult); ok {
					c.JSON(http.StatusOK, models.AnalyzeResponse{
						Status: "ok",
						Cached: true,
						Result: result,
					})
					return
				}
			}
		}
	}

	result, err := h.Calc.Analyze(lot)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ANALYSIS_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	if cacheKey != "" {
		h.Cache.Set("analysis", cacheKey, result, h.AnalysisTTL)
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{Status: "ok", Result: result})
}

// resolveLot builds the lot profile from the request: an explicit
// profile wins, otherwise the BBL goes through PLUTO. Writes the error
// response itself and returns ok=false on failure.
func (h *AnalyzeHandler) resolveLot(c *gin.Context, req *models.AnalyzeRequest) (model.LotProfile, bool) {
	var lot model.LotProfile

	switch {
	case req.Lot != nil:
		lot = *req.Lot
		data.FillFromPluto(&lot)
	case req.BBL != "":
		if h.Pluto == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "PLUTO_UNAVAILABLE",
					Message: "BBL lookup is not configured; provide a full lot profile",
				},
			})
			return lot, false
		}
		pluto, err := h.Pluto.FetchLot(c.Request.Context(), req.BBL)
		if err != nil {
			writePlutoError(c, err)
			return lot, false
		}
		if pluto == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "LOT_NOT_FOUND",
					Message: "No PLUTO record for BBL " + req.BBL,
				},
			})
			return lot, false
		}
		lot = data.BuildLotProfile(pluto)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_LOT",
				Message: "Provide a lot profile or a bbl",
			},
		})
		return lot, false
	}

	if req.Options.StreetWidthFt > 0 {
		lot.StreetWidthFt = req.Options.StreetWidthFt
		lot.StreetWidth = model.ClassifyStreetWidth(req.Options.StreetWidthFt)
	}
	if req.Options.MIHOption != "" {
		lot.MIHOption = req.Options.MIHOption
	}

	if err := lot.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_LOT",
				Message: err.Error(),
			},
		})
		return lot, false
	}
	return lot, true
}

// writePlutoError maps Socrata client errors onto API status codes.
func writePlutoError(c *gin.Context, err error) {
	if sErr, ok := err.(*data.SocrataError); ok {
		statusCode := http.StatusBadGateway
		if sErr.StatusCode == http.StatusForbidden {
			statusCode = http.StatusUnauthorized
		} else if sErr.StatusCode == http.StatusTooManyRequests {
			statusCode = http.StatusTooManyRequests
		}
		c.JSON(statusCode, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    sErr.Code,
				Message: sErr.Message,
				Details: map[string]any{
					"status_code": sErr.StatusCode,
					"retry_after": sErr.RetryAfter,
				},
			},
		})
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "DATA_FETCH_ERROR",
			Message: err.Error(),
		},
	})
}
