// Package visit contains customer-visit use cases.
package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// CreateVisitInput represents the input for visit creation.
type CreateVisitInput struct {
	CustomerName string
	Date         time.Time
	Notes        string
	ProjectID    *uuid.UUID
}

// CreateVisitOutput represents the output of visit creation.
type CreateVisitOutput struct {
	Visit *entity.Visit
}

// CreateVisitUseCase handles visit creation logic.
type CreateVisitUseCase struct {
	visitRepo adapter.VisitRepository
}

// NewCreateVisitUseCase creates a new CreateVisitUseCase instance.
func NewCreateVisitUseCase(visitRepo adapter.VisitRepository) *CreateVisitUseCase {
	return &CreateVisitUseCase{
		visitRepo: visitRepo,
	}
}

// Execute performs the visit creation.
func (uc *CreateVisitUseCase) Execute(ctx context.Context, input CreateVisitInput) (*CreateVisitOutput, error) {
	if input.CustomerName == "" || input.Date.IsZero() {
		return nil, domainerror.NewVisitError(
			domainerror.ErrCodeMissingVisitFields,
			"visit customer name and date are required",
			domainerror.ErrMissingVisitFields,
		)
	}

	visit := entity.NewVisit(input.CustomerName, input.Date, input.Notes, input.ProjectID)

	if err := uc.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}

	return &CreateVisitOutput{
		Visit: visit,
	}, nil
}

// ListVisitsOutput represents the output of a visit listing.
type ListVisitsOutput struct {
	Visits []*entity.Visit
}

// ListVisitsUseCase handles visit listing logic.
type ListVisitsUseCase struct {
	visitRepo adapter.VisitRepository
}

// NewListVisitsUseCase creates a new ListVisitsUseCase instance.
func NewListVisitsUseCase(visitRepo adapter.VisitRepository) *ListVisitsUseCase {
	return &ListVisitsUseCase{
		visitRepo: visitRepo,
	}
}

// Execute returns every visit, most recent first.
func (uc *ListVisitsUseCase) Execute(ctx context.Context) (*ListVisitsOutput, error) {
	visits, err := uc.visitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return &ListVisitsOutput{
		Visits: visits,
	}, nil
}

// UpdateVisitInput represents the input for a visit update.
type UpdateVisitInput struct {
	ID           uuid.UUID
	CustomerName string
	Date         time.Time
	Notes        string
	ProjectID    *uuid.UUID
}

// UpdateVisitOutput represents the output of a visit update.
type UpdateVisitOutput struct {
	Visit *entity.Visit
}

// UpdateVisitUseCase handles visit update logic.
type UpdateVisitUseCase struct {
	visitRepo adapter.VisitRepository
}

// NewUpdateVisitUseCase creates a new UpdateVisitUseCase instance.
func NewUpdateVisitUseCase(visitRepo adapter.VisitRepository) *UpdateVisitUseCase {
	return &UpdateVisitUseCase{
		visitRepo: visitRepo,
	}
}

// Execute performs the visit update.
func (uc *UpdateVisitUseCase) Execute(ctx context.Context, input UpdateVisitInput) (*UpdateVisitOutput, error) {
	if input.CustomerName == "" || input.Date.IsZero() {
		return nil, domainerror.NewVisitError(
			domainerror.ErrCodeMissingVisitFields,
			"visit customer name and date are required",
			domainerror.ErrMissingVisitFields,
		)
	}

	visit, err := uc.visitRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	visit.CustomerName = input.CustomerName
	visit.Date = input.Date
	visit.Notes = input.Notes
	visit.ProjectID = input.ProjectID
	visit.UpdatedAt = time.Now().UTC()

	if err := uc.visitRepo.Update(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}

	return &UpdateVisitOutput{
		Visit: visit,
	}, nil
}

// DeleteVisitInput represents the input for visit deletion.
type DeleteVisitInput struct {
	ID uuid.UUID
}

// DeleteVisitUseCase handles visit deletion logic.
type DeleteVisitUseCase struct {
	visitRepo adapter.VisitRepository
}

// NewDeleteVisitUseCase creates a new DeleteVisitUseCase instance.
func NewDeleteVisitUseCase(visitRepo adapter.VisitRepository) *DeleteVisitUseCase {
	return &DeleteVisitUseCase{
		visitRepo: visitRepo,
	}
}

// Execute performs the visit deletion.
func (uc *DeleteVisitUseCase) Execute(ctx context.Context, input DeleteVisitInput) error {
	if _, err := uc.visitRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.visitRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	return nil
}
