package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/usecase/employee"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
)

// EmployeeController handles employee endpoints.
type EmployeeController struct {
	createUseCase   *employee.CreateEmployeeUseCase
	listUseCase     *employee.ListEmployeesUseCase
	updateUseCase   *employee.UpdateEmployeeUseCase
	deleteUseCase   *employee.DeleteEmployeeUseCase
	overtimeUseCase *employee.RecordOvertimeUseCase
}

// NewEmployeeController creates a new employee controller instance.
func NewEmployeeController(
	createUseCase *employee.CreateEmployeeUseCase,
	listUseCase *employee.ListEmployeesUseCase,
	updateUseCase *employee.UpdateEmployeeUseCase,
	deleteUseCase *employee.DeleteEmployeeUseCase,
	overtimeUseCase *employee.RecordOvertimeUseCase,
) *EmployeeController {
	return &EmployeeController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		overtimeUseCase: overtimeUseCase,
	}
}

// Create handles POST /employees requests.
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEmployeeFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), employee.CreateEmployeeInput{
		Name:     req.Name,
		Salary:   decimal.NewFromFloat(req.Salary),
		Position: req.Position,
		Group:    req.Group,
	})
	if err != nil {
		respondEmployeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmployeeResponse(output.Employee))
}

// List handles GET /employees requests.
func (c *EmployeeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve employees",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeListResponse(output.Employees))
}

// Update handles PUT /employees/:id requests.
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEmployeeFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), employee.UpdateEmployeeInput{
		ID:       id,
		Name:     req.Name,
		Salary:   decimal.NewFromFloat(req.Salary),
		Position: req.Position,
		Group:    req.Group,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondEmployeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(output.Employee))
}

// Delete handles DELETE /employees/:id requests.
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), employee.DeleteEmployeeInput{ID: id}); err != nil {
		respondEmployeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted"})
}

// RecordOvertime handles POST /employees/:id/overtime requests. It prices an
// overtime line against the employee's current rate and returns the frozen
// record for embedding into a project.
func (c *EmployeeController) RecordOvertime(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	var req dto.RecordOvertimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidOvertimeHours),
		})
		return
	}

	output, err := c.overtimeUseCase.Execute(ctx.Request.Context(), employee.RecordOvertimeInput{
		EmployeeID:   id,
		OvertimeType: entity.OvertimeType(req.OvertimeType),
		Hours:        decimal.NewFromFloat(req.Hours),
	})
	if err != nil {
		respondEmployeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OvertimeRecordPayload{
		EmployeeID:   output.Record.EmployeeID.String(),
		OvertimeType: string(output.Record.OvertimeType),
		Hours:        output.Record.Hours.InexactFloat64(),
		Cost:         output.Record.Cost.InexactFloat64(),
	})
}

func parseEmployeeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid employee ID",
			Code:  string(domainerror.ErrCodeEmployeeNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondEmployeeError maps employee domain errors onto HTTP status codes.
func respondEmployeeError(ctx *gin.Context, err error) {
	var employeeErr *domainerror.EmployeeError
	if errors.As(err, &employeeErr) {
		status := http.StatusInternalServerError
		switch employeeErr.Code {
		case domainerror.ErrCodeEmployeeNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeMissingEmployeeFields,
			domainerror.ErrCodeInvalidSalary,
			domainerror.ErrCodeInvalidOvertimeType,
			domainerror.ErrCodeInvalidOvertimeHours,
			domainerror.ErrCodeInactiveEmployee:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: employeeErr.Message,
			Code:  string(employeeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
