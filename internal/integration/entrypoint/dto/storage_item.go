package dto

import (
	"time"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// CreateStorageItemRequest represents the request body for catalog entry creation.
type CreateStorageItemRequest struct {
	CategoryName string  `json:"categoryName,omitempty"`
	Name         string  `json:"name" binding:"required,min=1"`
	Cost         float64 `json:"cost"`
	Unit         string  `json:"unit,omitempty"`
	IVAAmount    float64 `json:"ivaAmount"`
}

// UpdateStorageItemRequest represents the request body for a catalog entry update.
type UpdateStorageItemRequest struct {
	CategoryName string  `json:"categoryName,omitempty"`
	Name         string  `json:"name" binding:"required,min=1"`
	Cost         float64 `json:"cost"`
	Unit         string  `json:"unit,omitempty"`
	IVAAmount    float64 `json:"ivaAmount"`
}

// StorageItemResponse represents a single catalog entry in API responses.
type StorageItemResponse struct {
	ID           string    `json:"id"`
	CategoryName string    `json:"categoryName,omitempty"`
	Name         string    `json:"name"`
	Cost         float64   `json:"cost"`
	Unit         string    `json:"unit,omitempty"`
	IVAAmount    float64   `json:"ivaAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StorageItemListResponse represents the response for listing catalog entries.
type StorageItemListResponse struct {
	Items []StorageItemResponse `json:"items"`
}

// ToStorageItemResponse converts a domain StorageItem entity to a response DTO.
func ToStorageItemResponse(item *entity.StorageItem) StorageItemResponse {
	return StorageItemResponse{
		ID:           item.ID.String(),
		CategoryName: item.CategoryName,
		Name:         item.Name,
		Cost:         item.Cost.InexactFloat64(),
		Unit:         item.Unit,
		IVAAmount:    item.IVAAmount.InexactFloat64(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// ToStorageItemListResponse converts a list of catalog entries to a list response.
func ToStorageItemListResponse(items []*entity.StorageItem) StorageItemListResponse {
	out := StorageItemListResponse{Items: make([]StorageItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, ToStorageItemResponse(item))
	}
	return out
}
