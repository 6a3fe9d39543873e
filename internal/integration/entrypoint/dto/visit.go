package dto

import (
	"time"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// CreateVisitRequest represents the request body for visit creation.
type CreateVisitRequest struct {
	CustomerName string    `json:"customerName" binding:"required,min=1"`
	Date         time.Time `json:"date" binding:"required"`
	Notes        string    `json:"notes,omitempty"`
	ProjectID    *string   `json:"projectId,omitempty"`
}

// UpdateVisitRequest represents the request body for a visit update.
type UpdateVisitRequest struct {
	CustomerName string    `json:"customerName" binding:"required,min=1"`
	Date         time.Time `json:"date" binding:"required"`
	Notes        string    `json:"notes,omitempty"`
	ProjectID    *string   `json:"projectId,omitempty"`
}

// VisitResponse represents a single visit in API responses.
type VisitResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes,omitempty"`
	ProjectID    *string   `json:"projectId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VisitListResponse represents the response for listing visits.
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// ToVisitResponse converts a domain Visit entity to a response DTO.
func ToVisitResponse(visit *entity.Visit) VisitResponse {
	var projectID *string
	if visit.ProjectID != nil {
		id := visit.ProjectID.String()
		projectID = &id
	}
	return VisitResponse{
		ID:           visit.ID.String(),
		CustomerName: visit.CustomerName,
		Date:         visit.Date,
		Notes:        visit.Notes,
		ProjectID:    projectID,
		CreatedAt:    visit.CreatedAt,
		UpdatedAt:    visit.UpdatedAt,
	}
}

// ToVisitListResponse converts a list of visits to a list response.
func ToVisitListResponse(visits []*entity.Visit) VisitListResponse {
	out := VisitListResponse{Visits: make([]VisitResponse, 0, len(visits))}
	for _, visit := range visits {
		out.Visits = append(out.Visits, ToVisitResponse(visit))
	}
	return out
}
