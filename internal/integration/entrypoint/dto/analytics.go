package dto

import (
	"github.com/gestionpro/backend/internal/application/usecase/analytics"
)

// ProjectProfitabilityResponse represents one project's figures in the report.
type ProjectProfitabilityResponse struct {
	ProjectID        string  `json:"projectId"`
	ProjectName      string  `json:"projectName"`
	Status           string  `json:"status"`
	Income           float64 `json:"income"`
	TotalCost        float64 `json:"totalCost"`
	Margin           float64 `json:"margin"`
	MarginPercentage float64 `json:"marginPercentage"`
}

// ProfitabilitySummaryResponse represents the aggregate profitability report.
type ProfitabilitySummaryResponse struct {
	TotalIncome      float64                        `json:"totalIncome"`
	TotalCost        float64                        `json:"totalCost"`
	TotalMargin      float64                        `json:"totalMargin"`
	MarginPercentage float64                        `json:"marginPercentage"`
	CountByStatus    map[string]int                 `json:"countByStatus"`
	Projects         []ProjectProfitabilityResponse `json:"projects"`
}

// ToProfitabilitySummaryResponse converts the report output to a response DTO.
func ToProfitabilitySummaryResponse(output *analytics.ProfitabilitySummaryOutput) ProfitabilitySummaryResponse {
	counts := make(map[string]int, len(output.CountByStatus))
	for status, count := range output.CountByStatus {
		counts[string(status)] = count
	}

	projects := make([]ProjectProfitabilityResponse, 0, len(output.Projects))
	for _, p := range output.Projects {
		projects = append(projects, ProjectProfitabilityResponse{
			ProjectID:        p.ProjectID.String(),
			ProjectName:      p.ProjectName,
			Status:           string(p.Status),
			Income:           p.Income.InexactFloat64(),
			TotalCost:        p.TotalCost.InexactFloat64(),
			Margin:           p.Margin.InexactFloat64(),
			MarginPercentage: p.MarginPercentage,
		})
	}

	return ProfitabilitySummaryResponse{
		TotalIncome:      output.TotalIncome.InexactFloat64(),
		TotalCost:        output.TotalCost.InexactFloat64(),
		TotalMargin:      output.TotalMargin.InexactFloat64(),
		MarginPercentage: output.MarginPercentage,
		CountByStatus:    counts,
		Projects:         projects,
	}
}
