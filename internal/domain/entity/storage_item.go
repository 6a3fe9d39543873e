package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorageItem is a catalog entry with an independent lifecycle. It serves as
// a template for project items: selecting one copies its fields into the
// item, it is not a live link.
type StorageItem struct {
	ID           uuid.UUID
	CategoryName string
	Name         string
	Cost         decimal.Decimal
	Unit         string
	IVAAmount    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewStorageItem creates a new StorageItem catalog entry.
func NewStorageItem(categoryName, name string, cost decimal.Decimal, unit string, ivaAmount decimal.Decimal) *StorageItem {
	now := time.Now().UTC()

	return &StorageItem{
		ID:           uuid.New(),
		CategoryName: categoryName,
		Name:         name,
		Cost:         cost,
		Unit:         unit,
		IVAAmount:    ivaAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ToItem copies the catalog entry's fields into a standard project item.
func (s *StorageItem) ToItem(quantity decimal.Decimal) Item {
	return Item{
		Name:      s.Name,
		Kind:      LineKindStandard,
		Unit:      s.Unit,
		Quantity:  quantity,
		Cost:      s.Cost,
		IVAAmount: s.IVAAmount,
	}
}
