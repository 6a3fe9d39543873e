// Package storageitem contains catalog-related use cases.
package storageitem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// CreateStorageItemInput represents the input for catalog entry creation.
type CreateStorageItemInput struct {
	CategoryName string
	Name         string
	Cost         decimal.Decimal
	Unit         string
	IVAAmount    decimal.Decimal
}

// CreateStorageItemOutput represents the output of catalog entry creation.
type CreateStorageItemOutput struct {
	Item *entity.StorageItem
}

// CreateStorageItemUseCase handles catalog entry creation logic.
type CreateStorageItemUseCase struct {
	itemRepo adapter.StorageItemRepository
}

// NewCreateStorageItemUseCase creates a new CreateStorageItemUseCase instance.
func NewCreateStorageItemUseCase(itemRepo adapter.StorageItemRepository) *CreateStorageItemUseCase {
	return &CreateStorageItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the catalog entry creation.
func (uc *CreateStorageItemUseCase) Execute(ctx context.Context, input CreateStorageItemInput) (*CreateStorageItemOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewStorageItemError(
			domainerror.ErrCodeMissingStorageItemFields,
			"catalog entry name is required",
			domainerror.ErrMissingStorageItemFields,
		)
	}
	if input.Cost.IsNegative() || input.IVAAmount.IsNegative() {
		return nil, domainerror.NewStorageItemError(
			domainerror.ErrCodeInvalidStorageItemCost,
			"cost and IVA must not be negative",
			domainerror.ErrInvalidStorageItemCost,
		)
	}

	item := entity.NewStorageItem(input.CategoryName, input.Name, input.Cost, input.Unit, input.IVAAmount)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create catalog entry: %w", err)
	}

	return &CreateStorageItemOutput{
		Item: item,
	}, nil
}

// ListStorageItemsInput represents the input for a catalog listing. An empty
// CategoryName lists everything.
type ListStorageItemsInput struct {
	CategoryName string
}

// ListStorageItemsOutput represents the output of a catalog listing.
type ListStorageItemsOutput struct {
	Items []*entity.StorageItem
}

// ListStorageItemsUseCase handles catalog listing logic.
type ListStorageItemsUseCase struct {
	itemRepo adapter.StorageItemRepository
}

// NewListStorageItemsUseCase creates a new ListStorageItemsUseCase instance.
func NewListStorageItemsUseCase(itemRepo adapter.StorageItemRepository) *ListStorageItemsUseCase {
	return &ListStorageItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute returns catalog entries, optionally filtered by category name.
func (uc *ListStorageItemsUseCase) Execute(ctx context.Context, input ListStorageItemsInput) (*ListStorageItemsOutput, error) {
	var (
		items []*entity.StorageItem
		err   error
	)
	if input.CategoryName == "" {
		items, err = uc.itemRepo.FindAll(ctx)
	} else {
		items, err = uc.itemRepo.FindByCategoryName(ctx, input.CategoryName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	return &ListStorageItemsOutput{
		Items: items,
	}, nil
}

// UpdateStorageItemInput represents the input for a catalog entry update.
type UpdateStorageItemInput struct {
	ID           uuid.UUID
	CategoryName string
	Name         string
	Cost         decimal.Decimal
	Unit         string
	IVAAmount    decimal.Decimal
}

// UpdateStorageItemOutput represents the output of a catalog entry update.
type UpdateStorageItemOutput struct {
	Item *entity.StorageItem
}

// UpdateStorageItemUseCase handles catalog entry update logic.
type UpdateStorageItemUseCase struct {
	itemRepo adapter.StorageItemRepository
}

// NewUpdateStorageItemUseCase creates a new UpdateStorageItemUseCase instance.
func NewUpdateStorageItemUseCase(itemRepo adapter.StorageItemRepository) *UpdateStorageItemUseCase {
	return &UpdateStorageItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the catalog entry update. Items already copied onto
// projects keep their copied values.
func (uc *UpdateStorageItemUseCase) Execute(ctx context.Context, input UpdateStorageItemInput) (*UpdateStorageItemOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewStorageItemError(
			domainerror.ErrCodeMissingStorageItemFields,
			"catalog entry name is required",
			domainerror.ErrMissingStorageItemFields,
		)
	}
	if input.Cost.IsNegative() || input.IVAAmount.IsNegative() {
		return nil, domainerror.NewStorageItemError(
			domainerror.ErrCodeInvalidStorageItemCost,
			"cost and IVA must not be negative",
			domainerror.ErrInvalidStorageItemCost,
		)
	}

	item, err := uc.itemRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item.CategoryName = input.CategoryName
	item.Name = input.Name
	item.Cost = input.Cost
	item.Unit = input.Unit
	item.IVAAmount = input.IVAAmount
	item.UpdatedAt = time.Now().UTC()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update catalog entry: %w", err)
	}

	return &UpdateStorageItemOutput{
		Item: item,
	}, nil
}

// DeleteStorageItemInput represents the input for catalog entry deletion.
type DeleteStorageItemInput struct {
	ID uuid.UUID
}

// DeleteStorageItemUseCase handles catalog entry deletion logic.
type DeleteStorageItemUseCase struct {
	itemRepo adapter.StorageItemRepository
}

// NewDeleteStorageItemUseCase creates a new DeleteStorageItemUseCase instance.
func NewDeleteStorageItemUseCase(itemRepo adapter.StorageItemRepository) *DeleteStorageItemUseCase {
	return &DeleteStorageItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the catalog entry deletion.
func (uc *DeleteStorageItemUseCase) Execute(ctx context.Context, input DeleteStorageItemInput) error {
	if _, err := uc.itemRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.itemRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", err)
	}

	return nil
}
