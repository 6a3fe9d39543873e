package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// VisitModel represents the visits table in the database.
type VisitModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName string     `gorm:"type:varchar(255);not null"`
	Date         time.Time  `gorm:"not null;index"`
	Notes        string     `gorm:"type:text"`
	ProjectID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the VisitModel.
func (VisitModel) TableName() string {
	return "visits"
}

// ToEntity converts a VisitModel to a domain Visit entity.
func (m *VisitModel) ToEntity() *entity.Visit {
	return &entity.Visit{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Date:         m.Date,
		Notes:        m.Notes,
		ProjectID:    m.ProjectID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// VisitFromEntity creates a VisitModel from a domain Visit entity.
func VisitFromEntity(visit *entity.Visit) *VisitModel {
	return &VisitModel{
		ID:           visit.ID,
		CustomerName: visit.CustomerName,
		Date:         visit.Date,
		Notes:        visit.Notes,
		ProjectID:    visit.ProjectID,
		CreatedAt:    visit.CreatedAt,
		UpdatedAt:    visit.UpdatedAt,
	}
}
