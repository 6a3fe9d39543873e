package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/costing"
	"github.com/gestionpro/backend/internal/domain/entity"
)

// OvertimeRecordPayload represents an overtime line within a project item.
// Cost is the snapshotted value; it is echoed back as sent.
type OvertimeRecordPayload struct {
	EmployeeID   string  `json:"employeeId"`
	OvertimeType string  `json:"overtimeType"`
	Hours        float64 `json:"hours"`
	Cost         float64 `json:"cost"`
}

// ItemPayload represents a cost line within a project category.
type ItemPayload struct {
	Name            string                  `json:"name"`
	Unit            string                  `json:"unit,omitempty"`
	Quantity        float64                 `json:"quantity"`
	Cost            float64                 `json:"cost"`
	IVAAmount       float64                 `json:"ivaAmount"`
	OvertimeRecords []OvertimeRecordPayload `json:"overtimeRecords,omitempty"`
}

// CategoryPayload represents a cost category within a project.
type CategoryPayload struct {
	Name      string        `json:"name"`
	Items     []ItemPayload `json:"items"`
	Cost      float64       `json:"cost"`
	IVAAmount float64       `json:"ivaAmount"`
}

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name         string            `json:"name" binding:"required,min=1"`
	NumberID     string            `json:"numberId"`
	Status       string            `json:"status,omitempty"`
	InitialDate  *string           `json:"initialDate,omitempty"`
	FinalDate    *string           `json:"finalDate,omitempty"`
	Income       float64           `json:"income"`
	Categories   []CategoryPayload `json:"categories"`
	Observations string            `json:"observations,omitempty"`
}

// UpdateProjectRequest represents the request body for a full project update.
type UpdateProjectRequest struct {
	Name         string            `json:"name" binding:"required,min=1"`
	NumberID     string            `json:"numberId"`
	Status       string            `json:"status" binding:"required"`
	InitialDate  *string           `json:"initialDate,omitempty"`
	FinalDate    *string           `json:"finalDate,omitempty"`
	Income       float64           `json:"income"`
	Categories   []CategoryPayload `json:"categories"`
	Observations string            `json:"observations,omitempty"`
}

// QuoteFileResponse represents an attachment in API responses.
type QuoteFileResponse struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// MetricsResponse represents derived cost figures in API responses.
type MetricsResponse struct {
	TotalCost        float64 `json:"totalCost"`
	Margin           float64 `json:"margin"`
	MarginPercentage float64 `json:"marginPercentage"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	NumberID     string              `json:"numberId"`
	Status       string              `json:"status"`
	InitialDate  *string             `json:"initialDate"`
	FinalDate    *string             `json:"finalDate"`
	Income       float64             `json:"income"`
	Categories   []CategoryPayload   `json:"categories"`
	Observations string              `json:"observations,omitempty"`
	Quotes       []QuoteFileResponse `json:"quotes"`
	Metrics      MetricsResponse     `json:"metrics"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Loading  bool              `json:"loading"`
}

// SignedURLResponse represents a time-limited download link.
type SignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// dateFormat is the wire format for project dates.
const dateFormat = "2006-01-02"

// ParseDate parses an optional wire date.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateFormat, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateFormat)
	return &formatted
}

// ToEntityCategories converts request category payloads to domain categories.
// Kinds are left unset; the application layer classifies them.
func ToEntityCategories(payloads []CategoryPayload) []entity.Category {
	categories := make([]entity.Category, 0, len(payloads))
	for _, c := range payloads {
		items := make([]entity.Item, 0, len(c.Items))
		for _, item := range c.Items {
			records := make([]entity.OvertimeRecord, 0, len(item.OvertimeRecords))
			for _, record := range item.OvertimeRecords {
				// An unparseable employee reference degrades to the nil
				// UUID; the snapshotted cost is what matters for totals.
				employeeID, _ := uuid.Parse(record.EmployeeID)
				records = append(records, entity.OvertimeRecord{
					EmployeeID:   employeeID,
					OvertimeType: entity.OvertimeType(record.OvertimeType),
					Hours:        decimal.NewFromFloat(record.Hours),
					Cost:         decimal.NewFromFloat(record.Cost),
				})
			}
			items = append(items, entity.Item{
				Name:            item.Name,
				Unit:            item.Unit,
				Quantity:        decimal.NewFromFloat(item.Quantity),
				Cost:            decimal.NewFromFloat(item.Cost),
				IVAAmount:       decimal.NewFromFloat(item.IVAAmount),
				OvertimeRecords: records,
			})
		}
		categories = append(categories, entity.Category{
			Name:      c.Name,
			Items:     items,
			Cost:      decimal.NewFromFloat(c.Cost),
			IVAAmount: decimal.NewFromFloat(c.IVAAmount),
		})
	}
	return categories
}

func toCategoryPayloads(categories []entity.Category) []CategoryPayload {
	payloads := make([]CategoryPayload, 0, len(categories))
	for _, c := range categories {
		items := make([]ItemPayload, 0, len(c.Items))
		for _, item := range c.Items {
			var records []OvertimeRecordPayload
			for _, record := range item.OvertimeRecords {
				records = append(records, OvertimeRecordPayload{
					EmployeeID:   record.EmployeeID.String(),
					OvertimeType: string(record.OvertimeType),
					Hours:        record.Hours.InexactFloat64(),
					Cost:         record.Cost.InexactFloat64(),
				})
			}
			items = append(items, ItemPayload{
				Name:            item.Name,
				Unit:            item.Unit,
				Quantity:        item.Quantity.InexactFloat64(),
				Cost:            item.Cost.InexactFloat64(),
				IVAAmount:       item.IVAAmount.InexactFloat64(),
				OvertimeRecords: records,
			})
		}
		payloads = append(payloads, CategoryPayload{
			Name:      c.Name,
			Items:     items,
			Cost:      c.Cost.InexactFloat64(),
			IVAAmount: c.IVAAmount.InexactFloat64(),
		})
	}
	return payloads
}

// ToProjectResponse converts a domain Project with its metrics to a response DTO.
func ToProjectResponse(project *entity.Project, metrics costing.Summary) ProjectResponse {
	quotes := make([]QuoteFileResponse, 0, len(project.Quotes))
	for _, quote := range project.Quotes {
		quotes = append(quotes, QuoteFileResponse{
			Name:       quote.Name,
			Path:       quote.Path,
			Size:       quote.Size,
			UploadedAt: quote.UploadedAt,
		})
	}

	return ProjectResponse{
		ID:           project.ID.String(),
		Name:         project.Name,
		NumberID:     project.NumberID,
		Status:       string(project.Status),
		InitialDate:  formatDate(project.InitialDate),
		FinalDate:    formatDate(project.FinalDate),
		Income:       project.Income.InexactFloat64(),
		Categories:   toCategoryPayloads(project.Categories),
		Observations: project.Observations,
		Quotes:       quotes,
		Metrics: MetricsResponse{
			TotalCost:        metrics.TotalCost.InexactFloat64(),
			Margin:           metrics.Margin.InexactFloat64(),
			MarginPercentage: metrics.MarginPercentage,
		},
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}
