package handlers

import (
	"net/http"

	"zoning-feasibility/internal/api/models"
	"zoning-feasibility/internal/data"
	"zoning-feasibility/internal/engine"

	"github.com/gin-gonic/gin"
)

// AssemblageHandler handles multi-lot assemblage studies.
type AssemblageHandler struct {
	Calc *engine.Calculator
}

// NewAssemblageHandler creates an assemblage handler.
func NewAssemblageHandler(calc *engine.Calculator) *AssemblageHandler {
	return &AssemblageHandler{Calc: calc}
}

// Assemblage handles POST /api/v1/assemblage
func (h *AssemblageHandler) Assemblage(c *gin.Context) {
	var req models.AssemblageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if len(req.Lots) < 2 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TOO_FEW_LOTS",
				Message: "Assemblage requires at least 2 lots",
			},
		})
		return
	}
	if len(req.KeepBuildings) > 0 && len(req.KeepBuildings) != len(req.Lots) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "KEEP_FLAGS_MISMATCH",
				Message: "keep_buildings must match lots in length",
			},
		})
		return
	}

	lots := req.Lots
	for i := range lots {
		data.FillFromPluto(&lots[i])
		if err := lots[i].Validate(); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_LOT",
					Message: "lot " + lots[i].BBL + ": " + err.Error(),
				},
			})
			return
		}
	}

	study, err := h.Calc.AnalyzeAssemblage(lots, req.KeepBuildings)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ASSEMBLAGE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": study})
}
