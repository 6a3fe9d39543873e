package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// StorageItemModel represents the storage_items catalog table.
type StorageItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryName string          `gorm:"type:varchar(100);not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Cost         decimal.Decimal `gorm:"type:numeric;not null"`
	Unit         string          `gorm:"type:varchar(50)"`
	IVAAmount    decimal.Decimal `gorm:"type:numeric"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the StorageItemModel.
func (StorageItemModel) TableName() string {
	return "storage_items"
}

// ToEntity converts a StorageItemModel to a domain StorageItem entity.
func (m *StorageItemModel) ToEntity() *entity.StorageItem {
	return &entity.StorageItem{
		ID:           m.ID,
		CategoryName: m.CategoryName,
		Name:         m.Name,
		Cost:         m.Cost,
		Unit:         m.Unit,
		IVAAmount:    m.IVAAmount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// StorageItemFromEntity creates a StorageItemModel from a domain StorageItem entity.
func StorageItemFromEntity(item *entity.StorageItem) *StorageItemModel {
	return &StorageItemModel{
		ID:           item.ID,
		CategoryName: item.CategoryName,
		Name:         item.Name,
		Cost:         item.Cost,
		Unit:         item.Unit,
		IVAAmount:    item.IVAAmount,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
