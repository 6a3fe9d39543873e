package dto

import (
	"time"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// CreateEmployeeRequest represents the request body for employee creation.
type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,min=1"`
	Salary   float64 `json:"salary" binding:"required,gt=0"`
	Position string  `json:"position,omitempty"`
	Group    string  `json:"group,omitempty"`
}

// UpdateEmployeeRequest represents the request body for an employee update.
type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,min=1"`
	Salary   float64 `json:"salary" binding:"required,gt=0"`
	Position string  `json:"position,omitempty"`
	Group    string  `json:"group,omitempty"`
	IsActive bool    `json:"isActive"`
}

// EmployeeResponse represents a single employee in API responses.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"isActive"`
	Salary     float64   `json:"salary"`
	Position   string    `json:"position,omitempty"`
	Group      string    `json:"group,omitempty"`
	HourlyRate float64   `json:"hourlyRate"`
	DailyRate  float64   `json:"dailyRate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeeListResponse represents the response for listing employees.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// RecordOvertimeRequest represents the request body for pricing an overtime line.
type RecordOvertimeRequest struct {
	OvertimeType string  `json:"overtimeType" binding:"required"`
	Hours        float64 `json:"hours" binding:"required,gt=0"`
}

// ToEmployeeResponse converts a domain Employee entity to a response DTO.
func ToEmployeeResponse(employee *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID.String(),
		Name:       employee.Name,
		IsActive:   employee.IsActive,
		Salary:     employee.Salary.InexactFloat64(),
		Position:   employee.Position,
		Group:      employee.Group,
		HourlyRate: employee.HourlyRate.InexactFloat64(),
		DailyRate:  employee.DailyRate.InexactFloat64(),
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

// ToEmployeeListResponse converts a list of employees to a list response.
func ToEmployeeListResponse(employees []*entity.Employee) EmployeeListResponse {
	out := EmployeeListResponse{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, employee := range employees {
		out.Employees = append(out.Employees, ToEmployeeResponse(employee))
	}
	return out
}
