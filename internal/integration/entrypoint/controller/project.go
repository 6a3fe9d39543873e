// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/usecase/project"
	"github.com/gestionpro/backend/internal/domain/costing"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
	"github.com/gestionpro/backend/internal/integration/entrypoint/middleware"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase    *project.ListProjectsUseCase
	getUseCase     *project.GetProjectUseCase
	createUseCase  *project.CreateProjectUseCase
	updateUseCase  *project.UpdateProjectUseCase
	deleteUseCase  *project.DeleteProjectUseCase
	attachUseCase  *project.AttachQuoteUseCase
	signURLUseCase *project.SignQuoteURLUseCase
	removeUseCase  *project.RemoveQuoteUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	getUseCase *project.GetProjectUseCase,
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
	attachUseCase *project.AttachQuoteUseCase,
	signURLUseCase *project.SignQuoteURLUseCase,
	removeUseCase *project.RemoveQuoteUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		attachUseCase:  attachUseCase,
		signURLUseCase: signURLUseCase,
		removeUseCase:  removeUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	response := dto.ProjectListResponse{
		Projects: make([]dto.ProjectResponse, 0, len(output.Projects)),
		Loading:  output.Loading,
	}
	for _, view := range output.Projects {
		response.Projects = append(response.Projects, dto.ToProjectResponse(view.Project, view.Metrics))
	}
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /projects/:id requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), project.GetProjectInput{ID: id})
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project, output.Metrics))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProjectFields),
		})
		return
	}

	initialDate, err := dto.ParseDate(req.InitialDate)
	if err != nil {
		respondBadDate(ctx)
		return
	}
	finalDate, err := dto.ParseDate(req.FinalDate)
	if err != nil {
		respondBadDate(ctx)
		return
	}

	createdBy := identityLabel(ctx)

	input := project.CreateProjectInput{
		Name:         req.Name,
		NumberID:     req.NumberID,
		Status:       entity.ProjectStatus(req.Status),
		InitialDate:  initialDate,
		FinalDate:    finalDate,
		Income:       decimal.NewFromFloat(req.Income),
		Categories:   dto.ToEntityCategories(req.Categories),
		Observations: req.Observations,
		CreatedBy:    createdBy,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project, costing.Summarize(output.Project)))
}

// Update handles PUT /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProjectFields),
		})
		return
	}

	initialDate, err := dto.ParseDate(req.InitialDate)
	if err != nil {
		respondBadDate(ctx)
		return
	}
	finalDate, err := dto.ParseDate(req.FinalDate)
	if err != nil {
		respondBadDate(ctx)
		return
	}

	updatedBy := identityLabel(ctx)

	input := project.UpdateProjectInput{
		ID:           id,
		Name:         req.Name,
		NumberID:     req.NumberID,
		Status:       entity.ProjectStatus(req.Status),
		InitialDate:  initialDate,
		FinalDate:    finalDate,
		Income:       decimal.NewFromFloat(req.Income),
		Categories:   dto.ToEntityCategories(req.Categories),
		Observations: req.Observations,
		UpdatedBy:    updatedBy,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project, costing.Summarize(output.Project)))
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{ID: id})
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	message := "Project deleted"
	if output.Degraded {
		message = "Project deleted locally; remote removal pending"
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// AttachQuote handles POST /projects/:id/quotes requests with a multipart file.
func (c *ProjectController) AttachQuote(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file named 'file' is required",
			Code:  string(domainerror.ErrCodeInvalidAttachment),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
			Code:  string(domainerror.ErrCodeInvalidAttachment),
		})
		return
	}
	defer file.Close()

	updatedBy := identityLabel(ctx)

	output, err := c.attachUseCase.Execute(ctx.Request.Context(), project.AttachQuoteInput{
		ProjectID:   id,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		UpdatedBy:   updatedBy,
	})
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.QuoteFileResponse{
		Name:       output.Quote.Name,
		Path:       output.Quote.Path,
		Size:       output.Quote.Size,
		UploadedAt: output.Quote.UploadedAt,
	})
}

// SignQuoteURL handles GET /projects/:id/quotes/url requests.
func (c *ProjectController) SignQuoteURL(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	path := ctx.Query("path")
	if path == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'path' is required",
			Code:  string(domainerror.ErrCodeAttachmentNotFound),
		})
		return
	}

	output, err := c.signURLUseCase.Execute(ctx.Request.Context(), project.SignQuoteURLInput{
		ProjectID: id,
		Path:      path,
	})
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SignedURLResponse{
		URL:       output.URL,
		ExpiresAt: output.ExpiresAt,
	})
}

// RemoveQuote handles DELETE /projects/:id/quotes requests.
func (c *ProjectController) RemoveQuote(ctx *gin.Context) {
	id, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	path := ctx.Query("path")
	if path == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'path' is required",
			Code:  string(domainerror.ErrCodeAttachmentNotFound),
		})
		return
	}

	updatedBy := identityLabel(ctx)

	err := c.removeUseCase.Execute(ctx.Request.Context(), project.RemoveQuoteInput{
		ProjectID: id,
		Path:      path,
		UpdatedBy: updatedBy,
	})
	if err != nil {
		respondProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attachment removed"})
}

// identityLabel names the acting identity for audit fields and notification
// payloads, preferring the stable id over the role.
func identityLabel(ctx *gin.Context) string {
	if id, ok := middleware.GetIdentityIDFromContext(ctx); ok {
		return id.String()
	}
	role, _ := middleware.GetIdentityRoleFromContext(ctx)
	return role
}

func parseProjectID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID",
			Code:  string(domainerror.ErrCodeProjectNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondBadDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Dates must use the YYYY-MM-DD format",
		Code:  string(domainerror.ErrCodeMissingProjectFields),
	})
}

// respondProjectError maps domain errors onto HTTP status codes.
func respondProjectError(ctx *gin.Context, err error) {
	var projectErr *domainerror.ProjectError
	if errors.As(err, &projectErr) {
		status := http.StatusInternalServerError
		switch projectErr.Code {
		case domainerror.ErrCodeProjectNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingProjectFields,
			domainerror.ErrCodeInvalidProjectStatus,
			domainerror.ErrCodeNegativeIncome:
			status = http.StatusBadRequest
		case domainerror.ErrCodeProjectsNotLoaded:
			status = http.StatusServiceUnavailable
		case domainerror.ErrCodeRemoteDeleteFailed:
			status = http.StatusBadGateway
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: projectErr.Message,
			Code:  string(projectErr.Code),
		})
		return
	}

	var attachmentErr *domainerror.AttachmentError
	if errors.As(err, &attachmentErr) {
		status := http.StatusInternalServerError
		switch attachmentErr.Code {
		case domainerror.ErrCodeInvalidAttachment:
			status = http.StatusBadRequest
		case domainerror.ErrCodeAttachmentNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeAttachmentUploadFailed:
			status = http.StatusBadGateway
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: attachmentErr.Message,
			Code:  string(attachmentErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
