package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/usecase/storageitem"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
)

// StorageItemController handles catalog endpoints.
type StorageItemController struct {
	createUseCase *storageitem.CreateStorageItemUseCase
	listUseCase   *storageitem.ListStorageItemsUseCase
	updateUseCase *storageitem.UpdateStorageItemUseCase
	deleteUseCase *storageitem.DeleteStorageItemUseCase
}

// NewStorageItemController creates a new catalog controller instance.
func NewStorageItemController(
	createUseCase *storageitem.CreateStorageItemUseCase,
	listUseCase *storageitem.ListStorageItemsUseCase,
	updateUseCase *storageitem.UpdateStorageItemUseCase,
	deleteUseCase *storageitem.DeleteStorageItemUseCase,
) *StorageItemController {
	return &StorageItemController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /storage-items requests.
func (c *StorageItemController) Create(ctx *gin.Context) {
	var req dto.CreateStorageItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingStorageItemFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), storageitem.CreateStorageItemInput{
		CategoryName: req.CategoryName,
		Name:         req.Name,
		Cost:         decimal.NewFromFloat(req.Cost),
		Unit:         req.Unit,
		IVAAmount:    decimal.NewFromFloat(req.IVAAmount),
	})
	if err != nil {
		respondStorageItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStorageItemResponse(output.Item))
}

// List handles GET /storage-items requests, optionally filtered by category.
func (c *StorageItemController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), storageitem.ListStorageItemsInput{
		CategoryName: ctx.Query("category"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve catalog entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStorageItemListResponse(output.Items))
}

// Update handles PUT /storage-items/:id requests.
func (c *StorageItemController) Update(ctx *gin.Context) {
	id, ok := parseStorageItemID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStorageItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingStorageItemFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), storageitem.UpdateStorageItemInput{
		ID:           id,
		CategoryName: req.CategoryName,
		Name:         req.Name,
		Cost:         decimal.NewFromFloat(req.Cost),
		Unit:         req.Unit,
		IVAAmount:    decimal.NewFromFloat(req.IVAAmount),
	})
	if err != nil {
		respondStorageItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStorageItemResponse(output.Item))
}

// Delete handles DELETE /storage-items/:id requests.
func (c *StorageItemController) Delete(ctx *gin.Context) {
	id, ok := parseStorageItemID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), storageitem.DeleteStorageItemInput{ID: id}); err != nil {
		respondStorageItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Catalog entry deleted"})
}

func parseStorageItemID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid catalog entry ID",
			Code:  string(domainerror.ErrCodeStorageItemNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondStorageItemError maps catalog domain errors onto HTTP status codes.
func respondStorageItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.StorageItemError
	if errors.As(err, &itemErr) {
		status := http.StatusInternalServerError
		switch itemErr.Code {
		case domainerror.ErrCodeStorageItemNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingStorageItemFields,
			domainerror.ErrCodeInvalidStorageItemCost:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
