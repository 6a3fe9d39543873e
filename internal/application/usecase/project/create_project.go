// Package project contains project-related use cases.
package project

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name         string
	NumberID     string
	Status       entity.ProjectStatus // Optional, defaults to on-hold
	InitialDate  *time.Time
	FinalDate    *time.Time
	Income       decimal.Decimal
	Categories   []entity.Category
	Observations string
	CreatedBy    string
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	engine *sync.Engine
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(engine *sync.Engine) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		engine: engine,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeMissingProjectFields,
			"project name is required",
			domainerror.ErrMissingProjectFields,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.ProjectStatusOnHold
	}
	if !isValidStatus(status) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectStatus,
			"status must be 'on-hold', 'in-process', 'completed' or 'paused'",
			domainerror.ErrInvalidProjectStatus,
		)
	}

	if input.Income.IsNegative() {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNegativeIncome,
			"income must not be negative",
			domainerror.ErrNegativeIncome,
		)
	}

	project := entity.NewProject(
		input.Name,
		input.NumberID,
		status,
		input.InitialDate,
		input.FinalDate,
		input.Income,
		input.Categories,
		input.Observations,
	)

	if err := uc.engine.Create(ctx, project, input.CreatedBy); err != nil {
		return nil, err
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}

// isValidStatus validates the project status.
func isValidStatus(status entity.ProjectStatus) bool {
	switch status {
	case entity.ProjectStatusOnHold,
		entity.ProjectStatusInProcess,
		entity.ProjectStatusCompleted,
		entity.ProjectStatusPaused:
		return true
	}
	return false
}
