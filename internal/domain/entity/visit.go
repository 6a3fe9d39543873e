package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit records a customer visit, optionally linked to a project.
type Visit struct {
	ID           uuid.UUID
	CustomerName string
	Date         time.Time
	Notes        string
	ProjectID    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVisit creates a new Visit entity.
func NewVisit(customerName string, date time.Time, notes string, projectID *uuid.UUID) *Visit {
	now := time.Now().UTC()

	return &Visit{
		ID:           uuid.New(),
		CustomerName: customerName,
		Date:         date,
		Notes:        notes,
		ProjectID:    projectID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
