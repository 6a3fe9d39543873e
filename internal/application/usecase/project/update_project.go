package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for a project update. The whole
// document is replaced; fields omitted by the caller are replaced with their
// zero values, matching full-document update semantics.
type UpdateProjectInput struct {
	ID           uuid.UUID
	Name         string
	NumberID     string
	Status       entity.ProjectStatus
	InitialDate  *time.Time
	FinalDate    *time.Time
	Income       decimal.Decimal
	Categories   []entity.Category
	Observations string
	UpdatedBy    string
}

// UpdateProjectOutput represents the output of a project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	engine *sync.Engine
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(engine *sync.Engine) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		engine: engine,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeMissingProjectFields,
			"project name is required",
			domainerror.ErrMissingProjectFields,
		)
	}
	if !isValidStatus(input.Status) {
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

	current, err := uc.engine.Get(input.ID)
	if err != nil {
		return nil, err
	}

	// Creation timestamp and attachments survive the document replacement;
	// quotes are managed by the attachment use cases, not by update.
	updated := current.Clone()
	updated.Name = input.Name
	updated.NumberID = input.NumberID
	updated.Status = input.Status
	updated.InitialDate = input.InitialDate
	updated.FinalDate = input.FinalDate
	updated.Income = input.Income
	updated.Categories = entity.CloneCategories(input.Categories)
	updated.Observations = input.Observations
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.engine.Update(ctx, updated, input.UpdatedBy); err != nil {
		return nil, err
	}

	return &UpdateProjectOutput{
		Project: updated,
	}, nil
}
