package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/domain/costing"
	"github.com/gestionpro/backend/internal/domain/entity"
)

// ProjectView pairs a project with its derived cost figures.
type ProjectView struct {
	Project *entity.Project
	Metrics costing.Summary
}

// ListProjectsOutput represents the output of a project listing.
type ListProjectsOutput struct {
	Projects []ProjectView
	Loading  bool
}

// ListProjectsUseCase handles project listing logic.
type ListProjectsUseCase struct {
	engine *sync.Engine
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(engine *sync.Engine) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		engine: engine,
	}
}

// Execute returns the current project collection with derived metrics. A
// collection still loading is reported as an empty list with Loading set,
// never as an error.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	if uc.engine.State() != sync.StateReady {
		return &ListProjectsOutput{Projects: []ProjectView{}, Loading: true}, nil
	}

	projects := uc.engine.Projects()
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{
			Project: p,
			Metrics: costing.Summarize(p),
		})
	}

	return &ListProjectsOutput{Projects: views}, nil
}

// GetProjectInput represents the input for a single project lookup.
type GetProjectInput struct {
	ID uuid.UUID
}

// GetProjectOutput represents the output of a single project lookup.
type GetProjectOutput struct {
	Project *entity.Project
	Metrics costing.Summary
}

// GetProjectUseCase handles single project lookup logic.
type GetProjectUseCase struct {
	engine *sync.Engine
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(engine *sync.Engine) *GetProjectUseCase {
	return &GetProjectUseCase{
		engine: engine,
	}
}

// Execute returns the project with its derived metrics.
func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	project, err := uc.engine.Get(input.ID)
	if err != nil {
		return nil, err
	}

	return &GetProjectOutput{
		Project: project,
		Metrics: costing.Summarize(project),
	}, nil
}
