package middleware

import (
	"fmt"
	"net/http"

	"zoning-feasibility/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics into the standard error envelope so a
// bad rule-table lookup never takes the server down.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		default:
			if v != nil {
				message = fmt.Sprintf("%v", v)
			}
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
