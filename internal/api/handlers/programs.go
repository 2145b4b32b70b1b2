package handlers

import (
	"net/http"
	"strconv"

	"zoning-feasibility/internal/api/models"
	"zoning-feasibility/internal/engine"
	"zoning-feasibility/internal/model"

	"github.com/gin-gonic/gin"
)

// ProgramsHandler lists registered zoning programs.
type ProgramsHandler struct {
	Calc *engine.Calculator
}

// NewProgramsHandler creates a programs handler.
func NewProgramsHandler(calc *engine.Calculator) *ProgramsHandler {
	return &ProgramsHandler{Calc: calc}
}

// ListPrograms handles GET /api/v1/programs
//
// Without query parameters it lists every registered program. With
// district (and optionally borough, community_district, lot_area) it
// also runs the checks against a synthetic lot in that district.
func (h *ProgramsHandler) ListPrograms(c *gin.Context) {
	defs := h.Calc.Programs().Definitions()

	programs := make([]models.ProgramInfo, len(defs))
	for i, d := range defs {
		programs[i] = models.ProgramInfo{
			Key:         d.Key,
			Name:        d.Name,
			Category:    d.Category,
			Description: d.Description,
			Citation:    d.Citation,
		}
	}

	resp := models.ProgramsResponse{Programs: programs, Count: len(programs)}

	if district := c.Query("district"); district != "" {
		lot := model.LotProfile{
			BBL:               "1000010001",
			Borough:           queryInt(c, "borough", 1),
			ZoningDistricts:   []string{district},
			LotArea:           queryFloat(c, "lot_area", 10000),
			CommunityDistrict: queryInt(c, "community_district", 0),
			IsMIHArea:         c.Query("mih") == "true",
		}
		resp.Results = h.Calc.Programs().CheckAll(lot)
	}

	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return fallback
}

func queryFloat(c *gin.Context, key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(c.Query(key), 64); err == nil {
		return v
	}
	return fallback
}
