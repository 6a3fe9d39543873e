package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rate divisors fixed by company payroll policy: 230 working hours and 30
// payable days per month.
var (
	hourlyRateDivisor = decimal.NewFromInt(230)
	dailyRateDivisor  = decimal.NewFromInt(30)
)

// Employee represents a company employee whose overtime can be charged to
// projects.
type Employee struct {
	ID         uuid.UUID
	Name       string
	IsActive   bool
	Salary     decimal.Decimal
	Position   string
	Group      string
	HourlyRate decimal.Decimal
	DailyRate  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewEmployee creates a new Employee entity. Hourly and daily rates are
// derived from the salary at entry time with the fixed divisors.
func NewEmployee(name string, salary decimal.Decimal, position, group string) *Employee {
	now := time.Now().UTC()

	return &Employee{
		ID:         uuid.New(),
		Name:       name,
		IsActive:   true,
		Salary:     salary,
		Position:   position,
		Group:      group,
		HourlyRate: salary.Div(hourlyRateDivisor),
		DailyRate:  salary.Div(dailyRateDivisor),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateSalary sets a new salary and re-derives both rates. Overtime records
// already attached to projects keep their snapshotted cost.
func (e *Employee) UpdateSalary(salary decimal.Decimal) {
	e.Salary = salary
	e.HourlyRate = salary.Div(hourlyRateDivisor)
	e.DailyRate = salary.Div(dailyRateDivisor)
	e.UpdatedAt = time.Now().UTC()
}
