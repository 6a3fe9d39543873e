package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestionpro/backend/internal/application/usecase/analytics"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles reporting endpoints.
type AnalyticsController struct {
	summaryUseCase *analytics.ProfitabilitySummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(summaryUseCase *analytics.ProfitabilitySummaryUseCase) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase: summaryUseCase,
	}
}

// ProfitabilitySummary handles GET /analytics/profitability requests.
func (c *AnalyticsController) ProfitabilitySummary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute profitability summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitabilitySummaryResponse(output))
}
