// Package analytics contains reporting use cases over the project collection.
package analytics

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/domain/costing"
	"github.com/gestionpro/backend/internal/domain/entity"
)

// ProjectProfitability is one project's contribution to the report.
type ProjectProfitability struct {
	ProjectID        uuid.UUID
	ProjectName      string
	Status           entity.ProjectStatus
	Income           decimal.Decimal
	TotalCost        decimal.Decimal
	Margin           decimal.Decimal
	MarginPercentage float64
}

// ProfitabilitySummaryOutput aggregates cost and margin figures across the
// whole collection.
type ProfitabilitySummaryOutput struct {
	TotalIncome      decimal.Decimal
	TotalCost        decimal.Decimal
	TotalMargin      decimal.Decimal
	MarginPercentage float64
	CountByStatus    map[entity.ProjectStatus]int
	Projects         []ProjectProfitability
}

// ProfitabilitySummaryUseCase computes the profitability report.
type ProfitabilitySummaryUseCase struct {
	engine *sync.Engine
}

// NewProfitabilitySummaryUseCase creates a new ProfitabilitySummaryUseCase instance.
func NewProfitabilitySummaryUseCase(engine *sync.Engine) *ProfitabilitySummaryUseCase {
	return &ProfitabilitySummaryUseCase{
		engine: engine,
	}
}

// Execute computes per-project and aggregate figures, worst margin first.
func (uc *ProfitabilitySummaryUseCase) Execute(ctx context.Context) (*ProfitabilitySummaryOutput, error) {
	projects := uc.engine.Projects()

	out := &ProfitabilitySummaryOutput{
		CountByStatus: make(map[entity.ProjectStatus]int),
		Projects:      make([]ProjectProfitability, 0, len(projects)),
	}

	for _, p := range projects {
		summary := costing.Summarize(p)
		out.TotalIncome = out.TotalIncome.Add(p.Income)
		out.TotalCost = out.TotalCost.Add(summary.TotalCost)
		out.TotalMargin = out.TotalMargin.Add(summary.Margin)
		out.CountByStatus[p.Status]++
		out.Projects = append(out.Projects, ProjectProfitability{
			ProjectID:        p.ID,
			ProjectName:      p.Name,
			Status:           p.Status,
			Income:           p.Income,
			TotalCost:        summary.TotalCost,
			Margin:           summary.Margin,
			MarginPercentage: summary.MarginPercentage,
		})
	}

	if out.TotalIncome.IsPositive() {
		out.MarginPercentage, _ = out.TotalMargin.
			Div(out.TotalIncome).
			Mul(decimal.NewFromInt(100)).
			Float64()
	}

	sort.SliceStable(out.Projects, func(i, j int) bool {
		return out.Projects[i].MarginPercentage < out.Projects[j].MarginPercentage
	})

	return out, nil
}
