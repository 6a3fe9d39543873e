// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusInProcess ProjectStatus = "in-process"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPaused    ProjectStatus = "paused"
)

// CategoryKind classifies a category for cost aggregation purposes.
// The kind is decided once, when the category is constructed or normalized,
// instead of re-matching the category name at every computation site.
type CategoryKind string

const (
	// CategoryKindGeneric is the default aggregation rule.
	CategoryKindGeneric CategoryKind = "generic"
	// CategoryKindPersonnel aggregates overtime lines from their records
	// and never adds IVA on item lines.
	CategoryKindPersonnel CategoryKind = "personnel"
	// CategoryKindSupplies only changes the item-picker source in the UI;
	// it computes exactly like a generic category.
	CategoryKindSupplies CategoryKind = "supplies"
)

// LineKind classifies an item line within a category.
type LineKind string

const (
	LineKindStandard LineKind = "standard"
	// LineKindOvertime lines cost the sum of their overtime records;
	// the line's own cost and quantity fields are ignored.
	LineKindOvertime LineKind = "overtime"
)

// Reserved names carried over from the legacy data. They are only consulted
// at normalization time to assign kinds; computation never matches on them.
const (
	PersonnelCategoryName = "Personal"
	SuppliesCategoryName  = "Insumos"
	OvertimeItemName      = "Horas extras"
)

// Project is the root aggregate: a project together with its embedded
// categories, items and overtime records, persisted and mutated as one unit.
type Project struct {
	ID           uuid.UUID
	Name         string
	NumberID     string
	Status       ProjectStatus
	InitialDate  *time.Time
	FinalDate    *time.Time
	Income       decimal.Decimal
	Categories   []Category
	Observations string
	Quotes       []QuoteFile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category is a value object embedded in a Project. It has no identity or
// lifecycle outside its parent document.
type Category struct {
	Name      string
	Kind      CategoryKind
	Items     []Item
	Cost      decimal.Decimal // direct cost, used e.g. for flat fees
	IVAAmount decimal.Decimal // tax on the category's direct cost
}

// Item is a cost line inside a category.
type Item struct {
	Name            string
	Kind            LineKind
	Unit            string
	Quantity        decimal.Decimal
	Cost            decimal.Decimal // unit cost
	IVAAmount       decimal.Decimal // tax on this line's total
	OvertimeRecords []OvertimeRecord
	Quotes          []QuoteFile
}

// OvertimeRecord is a frozen snapshot of an employee overtime charge.
// Cost is fixed at creation time (hourly rate x multiplier x hours) and is
// never recomputed when the employee's rate changes, so personnel totals
// stay stable for auditing.
type OvertimeRecord struct {
	EmployeeID   uuid.UUID
	OvertimeType OvertimeType
	Hours        decimal.Decimal
	Cost         decimal.Decimal
}

// QuoteFile is attachment metadata; the binary lives in the blob store.
type QuoteFile struct {
	Name       string
	Path       string
	Size       int64
	UploadedAt time.Time
}

// NewProject creates a new Project aggregate with a client-generated ID.
func NewProject(
	name string,
	numberID string,
	status ProjectStatus,
	initialDate *time.Time,
	finalDate *time.Time,
	income decimal.Decimal,
	categories []Category,
	observations string,
) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:           uuid.New(),
		Name:         name,
		NumberID:     numberID,
		Status:       status,
		InitialDate:  initialDate,
		FinalDate:    finalDate,
		Income:       income,
		Categories:   categories,
		Observations: observations,
		Quotes:       []QuoteFile{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BillableQuantity returns the quantity used for cost computation. A zero,
// negative or unset quantity counts as one; the stored field may still
// display as entered.
func (i *Item) BillableQuantity() decimal.Decimal {
	one := decimal.NewFromInt(1)
	if i.Quantity.LessThan(one) {
		return one
	}
	return i.Quantity
}

// Clone returns a deep copy of the project. Mutations always operate on a
// fresh copy of the whole document; structural sharing is never relied upon.
func (p *Project) Clone() *Project {
	cp := *p
	if p.InitialDate != nil {
		d := *p.InitialDate
		cp.InitialDate = &d
	}
	if p.FinalDate != nil {
		d := *p.FinalDate
		cp.FinalDate = &d
	}
	cp.Categories = CloneCategories(p.Categories)
	cp.Quotes = append([]QuoteFile(nil), p.Quotes...)
	return &cp
}

// CloneCategories deep-copies a category slice.
func CloneCategories(categories []Category) []Category {
	if categories == nil {
		return []Category{}
	}
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c
		out[i].Items = make([]Item, len(c.Items))
		for j, item := range c.Items {
			out[i].Items[j] = item
			out[i].Items[j].OvertimeRecords = append([]OvertimeRecord(nil), item.OvertimeRecords...)
			out[i].Items[j].Quotes = append([]QuoteFile(nil), item.Quotes...)
		}
	}
	return out
}
