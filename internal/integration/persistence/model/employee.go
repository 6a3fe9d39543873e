package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	IsActive   bool            `gorm:"not null"`
	Salary     decimal.Decimal `gorm:"type:numeric;not null"`
	Position   string          `gorm:"type:varchar(100)"`
	Group      string          `gorm:"column:work_group;type:varchar(100)"`
	HourlyRate decimal.Decimal `gorm:"type:numeric;not null"`
	DailyRate  decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:         m.ID,
		Name:       m.Name,
		IsActive:   m.IsActive,
		Salary:     m.Salary,
		Position:   m.Position,
		Group:      m.Group,
		HourlyRate: m.HourlyRate,
		DailyRate:  m.DailyRate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// EmployeeFromEntity creates an EmployeeModel from a domain Employee entity.
func EmployeeFromEntity(employee *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:         employee.ID,
		Name:       employee.Name,
		IsActive:   employee.IsActive,
		Salary:     employee.Salary,
		Position:   employee.Position,
		Group:      employee.Group,
		HourlyRate: employee.HourlyRate,
		DailyRate:  employee.DailyRate,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}
