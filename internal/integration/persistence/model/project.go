// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// wireTime is the date serialization used on every boundary. Parsing and
// formatting share it so the canonical string comparison in the sync engine
// stays a valid no-op-save check.
const wireTime = time.RFC3339Nano

// ProjectRecord represents the projects table. Categories and quotes are
// embedded semi-structured documents stored as JSON-encoded text; dates ride
// as ISO-8601 strings or null, matching the hosted backend's row shape.
type ProjectRecord struct {
	ID           string          `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	NumberID     string          `gorm:"column:number_id;type:varchar(50)"`
	Status       string          `gorm:"type:varchar(20);not null"`
	InitialDate  *string         `gorm:"column:initial_date;type:text"`
	FinalDate    *string         `gorm:"column:final_date;type:text"`
	Income       decimal.Decimal `gorm:"type:numeric"`
	Categories   string          `gorm:"type:text"`
	Observations string          `gorm:"type:text"`
	Quotes       string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProjectRecord.
func (ProjectRecord) TableName() string {
	return "projects"
}

// Document shapes for the embedded JSON columns and the canonical
// serialization. Field names match the legacy wire format.

type projectDoc struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	NumberID     string          `json:"numberId"`
	Status       string          `json:"status"`
	InitialDate  *string         `json:"initialDate"`
	FinalDate    *string         `json:"finalDate"`
	Income       decimal.Decimal `json:"income"`
	Categories   []categoryDoc   `json:"categories"`
	Observations string          `json:"observations,omitempty"`
	Quotes       []quoteDoc      `json:"quotes"`
}

type categoryDoc struct {
	Name      string          `json:"name"`
	Items     []itemDoc       `json:"items"`
	Cost      decimal.Decimal `json:"cost,omitempty"`
	IVAAmount decimal.Decimal `json:"ivaAmount,omitempty"`
}

type itemDoc struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit,omitempty"`
	Quantity        decimal.Decimal `json:"quantity,omitempty"`
	Cost            decimal.Decimal `json:"cost,omitempty"`
	IVAAmount       decimal.Decimal `json:"ivaAmount,omitempty"`
	OvertimeRecords []overtimeDoc   `json:"overtimeRecords,omitempty"`
	Quotes          []quoteDoc      `json:"quotes,omitempty"`
}

type overtimeDoc struct {
	EmployeeID   string          `json:"employeeId"`
	OvertimeType string          `json:"overtimeType"`
	Hours        decimal.Decimal `json:"hours"`
	Cost         decimal.Decimal `json:"cost"`
}

type quoteDoc struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

// ToEntity converts a ProjectRecord to a domain Project, defaulting missing
// optional fields and normalizing the embedded documents. It never fails:
// malformed embedded JSON resolves to empty collections.
func (r *ProjectRecord) ToEntity() *entity.Project {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		id = uuid.Nil
	}

	return &entity.Project{
		ID:           id,
		Name:         r.Name,
		NumberID:     r.NumberID,
		Status:       entity.ProjectStatus(r.Status),
		InitialDate:  parseWireDate(r.InitialDate),
		FinalDate:    parseWireDate(r.FinalDate),
		Income:       r.Income,
		Categories:   ParseCategories(r.Categories),
		Observations: r.Observations,
		Quotes:       parseQuotes(r.Quotes),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// RecordFromEntity creates a ProjectRecord from a domain Project, stamping
// updated_at at serialization time.
func RecordFromEntity(p *entity.Project) *ProjectRecord {
	return &ProjectRecord{
		ID:           p.ID.String(),
		Name:         p.Name,
		NumberID:     p.NumberID,
		Status:       string(p.Status),
		InitialDate:  formatWireDate(p.InitialDate),
		FinalDate:    formatWireDate(p.FinalDate),
		Income:       p.Income,
		Categories:   EncodeCategories(p.Categories),
		Observations: p.Observations,
		Quotes:       encodeQuotes(p.Quotes),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
}

// ParseCategories normalizes the categories column into typed value objects.
// The column may hold a JSON array, a doubly-encoded JSON string, null, or
// garbage; anything unreadable resolves to an empty list. Kinds are assigned
// here so nothing downstream matches on raw names.
func ParseCategories(raw string) []entity.Category {
	if raw == "" || raw == "null" {
		return []entity.Category{}
	}

	var docs []categoryDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		// Legacy rows sometimes carry the array doubly encoded.
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			slog.Warn("Unreadable categories payload, defaulting to empty", "error", err)
			return []entity.Category{}
		}
		if err := json.Unmarshal([]byte(inner), &docs); err != nil {
			slog.Warn("Unreadable categories payload, defaulting to empty", "error", err)
			return []entity.Category{}
		}
	}

	categories := make([]entity.Category, len(docs))
	for i, d := range docs {
		categories[i] = d.toEntity()
	}
	return entity.AssignCategoryKinds(categories)
}

// EncodeCategories serializes categories to their string-encoded wire form.
func EncodeCategories(categories []entity.Category) string {
	docs := make([]categoryDoc, len(categories))
	for i := range categories {
		docs[i] = categoryDocFrom(&categories[i])
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// StringifyProjects produces the canonical serialization of the collection.
// It is used both as the local-cache payload and as the change-detection
// snapshot, and it deliberately excludes created/updated timestamps so a
// stamped write cannot look like a content change.
func StringifyProjects(projects []*entity.Project) string {
	docs := make([]projectDoc, len(projects))
	for i, p := range projects {
		docs[i] = projectDocFrom(p)
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseProjects is the inverse of StringifyProjects. Corrupt payloads yield
// an error; callers treat that as an empty collection.
func ParseProjects(raw string) ([]*entity.Project, error) {
	var docs []projectDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(docs))
	for i := range docs {
		projects[i] = docs[i].toEntity()
	}
	return projects, nil
}

func projectDocFrom(p *entity.Project) projectDoc {
	categories := make([]categoryDoc, len(p.Categories))
	for i := range p.Categories {
		categories[i] = categoryDocFrom(&p.Categories[i])
	}
	return projectDoc{
		ID:           p.ID.String(),
		Name:         p.Name,
		NumberID:     p.NumberID,
		Status:       string(p.Status),
		InitialDate:  formatWireDate(p.InitialDate),
		FinalDate:    formatWireDate(p.FinalDate),
		Income:       p.Income,
		Categories:   categories,
		Observations: p.Observations,
		Quotes:       quoteDocsFrom(p.Quotes),
	}
}

func (d *projectDoc) toEntity() *entity.Project {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		id = uuid.Nil
	}

	categories := make([]entity.Category, len(d.Categories))
	for i := range d.Categories {
		categories[i] = d.Categories[i].toEntity()
	}

	return &entity.Project{
		ID:           id,
		Name:         d.Name,
		NumberID:     d.NumberID,
		Status:       entity.ProjectStatus(d.Status),
		InitialDate:  parseWireDate(d.InitialDate),
		FinalDate:    parseWireDate(d.FinalDate),
		Income:       d.Income,
		Categories:   entity.AssignCategoryKinds(categories),
		Observations: d.Observations,
		Quotes:       quotesFromDocs(d.Quotes),
	}
}

func categoryDocFrom(c *entity.Category) categoryDoc {
	items := make([]itemDoc, len(c.Items))
	for i := range c.Items {
		items[i] = itemDocFrom(&c.Items[i])
	}
	return categoryDoc{
		Name:      c.Name,
		Items:     items,
		Cost:      c.Cost,
		IVAAmount: c.IVAAmount,
	}
}

func (d *categoryDoc) toEntity() entity.Category {
	items := make([]entity.Item, len(d.Items))
	for i := range d.Items {
		items[i] = d.Items[i].toEntity()
	}
	return entity.Category{
		Name:      d.Name,
		Items:     items,
		Cost:      d.Cost,
		IVAAmount: d.IVAAmount,
	}
}

func itemDocFrom(i *entity.Item) itemDoc {
	records := make([]overtimeDoc, len(i.OvertimeRecords))
	for j, r := range i.OvertimeRecords {
		records[j] = overtimeDoc{
			EmployeeID:   r.EmployeeID.String(),
			OvertimeType: string(r.OvertimeType),
			Hours:        r.Hours,
			Cost:         r.Cost,
		}
	}
	if len(records) == 0 {
		records = nil
	}
	return itemDoc{
		Name:            i.Name,
		Unit:            i.Unit,
		Quantity:        i.Quantity,
		Cost:            i.Cost,
		IVAAmount:       i.IVAAmount,
		OvertimeRecords: records,
		Quotes:          quoteDocsFrom(i.Quotes),
	}
}

func (d *itemDoc) toEntity() entity.Item {
	records := make([]entity.OvertimeRecord, 0, len(d.OvertimeRecords))
	for _, r := range d.OvertimeRecords {
		employeeID, err := uuid.Parse(r.EmployeeID)
		if err != nil {
			employeeID = uuid.Nil
		}
		records = append(records, entity.OvertimeRecord{
			EmployeeID:   employeeID,
			OvertimeType: entity.OvertimeType(r.OvertimeType),
			Hours:        r.Hours,
			Cost:         r.Cost,
		})
	}
	if len(records) == 0 {
		records = nil
	}
	return entity.Item{
		Name:            d.Name,
		Unit:            d.Unit,
		Quantity:        d.Quantity,
		Cost:            d.Cost,
		IVAAmount:       d.IVAAmount,
		OvertimeRecords: records,
		Quotes:          quotesFromDocs(d.Quotes),
	}
}

func quoteDocsFrom(quotes []entity.QuoteFile) []quoteDoc {
	if len(quotes) == 0 {
		return nil
	}
	docs := make([]quoteDoc, len(quotes))
	for i, q := range quotes {
		docs[i] = quoteDoc{
			Name:       q.Name,
			Path:       q.Path,
			Size:       q.Size,
			UploadedAt: q.UploadedAt.UTC().Format(wireTime),
		}
	}
	return docs
}

func quotesFromDocs(docs []quoteDoc) []entity.QuoteFile {
	quotes := make([]entity.QuoteFile, len(docs))
	for i, d := range docs {
		uploadedAt, err := time.Parse(wireTime, d.UploadedAt)
		if err != nil {
			uploadedAt = time.Time{}
		}
		quotes[i] = entity.QuoteFile{
			Name:       d.Name,
			Path:       d.Path,
			Size:       d.Size,
			UploadedAt: uploadedAt,
		}
	}
	return quotes
}

func parseQuotes(raw string) []entity.QuoteFile {
	if raw == "" || raw == "null" {
		return []entity.QuoteFile{}
	}
	var docs []quoteDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		slog.Warn("Unreadable quotes payload, defaulting to empty", "error", err)
		return []entity.QuoteFile{}
	}
	return quotesFromDocs(docs)
}

func encodeQuotes(quotes []entity.QuoteFile) string {
	docs := quoteDocsFrom(quotes)
	if docs == nil {
		return "[]"
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func parseWireDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(wireTime, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func formatWireDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(wireTime)
	return &s
}
