package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/usecase/visit"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
)

// VisitController handles customer-visit endpoints.
type VisitController struct {
	createUseCase *visit.CreateVisitUseCase
	listUseCase   *visit.ListVisitsUseCase
	updateUseCase *visit.UpdateVisitUseCase
	deleteUseCase *visit.DeleteVisitUseCase
}

// NewVisitController creates a new visit controller instance.
func NewVisitController(
	createUseCase *visit.CreateVisitUseCase,
	listUseCase *visit.ListVisitsUseCase,
	updateUseCase *visit.UpdateVisitUseCase,
	deleteUseCase *visit.DeleteVisitUseCase,
) *VisitController {
	return &VisitController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /visits requests.
func (c *VisitController) Create(ctx *gin.Context) {
	var req dto.CreateVisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingVisitFields),
		})
		return
	}

	projectID, ok := parseOptionalProjectID(ctx, req.ProjectID)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), visit.CreateVisitInput{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Notes:        req.Notes,
		ProjectID:    projectID,
	})
	if err != nil {
		respondVisitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVisitResponse(output.Visit))
}

// List handles GET /visits requests.
func (c *VisitController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve visits",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisitListResponse(output.Visits))
}

// Update handles PUT /visits/:id requests.
func (c *VisitController) Update(ctx *gin.Context) {
	id, ok := parseVisitID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateVisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingVisitFields),
		})
		return
	}

	projectID, ok := parseOptionalProjectID(ctx, req.ProjectID)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), visit.UpdateVisitInput{
		ID:           id,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Notes:        req.Notes,
		ProjectID:    projectID,
	})
	if err != nil {
		respondVisitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisitResponse(output.Visit))
}

// Delete handles DELETE /visits/:id requests.
func (c *VisitController) Delete(ctx *gin.Context) {
	id, ok := parseVisitID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), visit.DeleteVisitInput{ID: id}); err != nil {
		respondVisitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Visit deleted"})
}

func parseVisitID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid visit ID",
			Code:  string(domainerror.ErrCodeVisitNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalProjectID(ctx *gin.Context, raw *string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID",
			Code:  string(domainerror.ErrCodeProjectNotFound),
		})
		return nil, false
	}
	return &id, true
}

// respondVisitError maps visit domain errors onto HTTP status codes.
func respondVisitError(ctx *gin.Context, err error) {
	var visitErr *domainerror.VisitError
	if errors.As(err, &visitErr) {
		status := http.StatusInternalServerError
		switch visitErr.Code {
		case domainerror.ErrCodeVisitNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingVisitFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: visitErr.Message,
			Code:  string(visitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
