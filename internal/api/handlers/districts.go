package handlers

import (
	"net/http"

	"zoning-feasibility/internal/api/models"
	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"

	"github.com/gin-gonic/gin"
)

// GetDistrict handles GET /api/v1/districts/:code
//
// Returns the static rule tables for one district. street_width (narrow
// or wide) selects between width-dependent heights; defaults to narrow.
func GetDistrict(c *gin.Context) {
	code := zoning.NormalizeDistrict(c.Param("code"))
	if zoning.BaseDistrict(code) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DISTRICT",
				Message: "District code does not follow the R/C/M district grammar: " + c.Param("code"),
			},
		})
		return
	}

	far := zoning.LookupFAR(code)
	if far.Residential.IsZero() && far.Commercial.IsZero() &&
		far.CommunityFac.IsZero() && far.Manufacturing.IsZero() {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_DISTRICT",
				Message: "No rule tables for district " + code,
			},
		})
		return
	}

	streetWidth := c.DefaultQuery("street_width", model.StreetNarrow)

	c.JSON(http.StatusOK, models.DistrictResponse{
		District:      code,
		BaseDistrict:  zoning.BaseDistrict(code),
		FAR:           far,
		PermittedUses: zoning.GetPermittedUses(code),
		BuildingType:  zoning.GetBuildingTypeRules(code),
		Heights:       zoning.GetHeightRules(code, streetWidth, false, zoning.ProgramAuto),
		MIHBonusFAR:   zoning.MIHBonusFAR(code),
	})
}
