package services

import (
	"context"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
)

// InventoryReaderSvc defines read operations for inventory metadata
type InventoryReaderSvc interface {
	// GetInventory retrieves one item by canonical identifier.
	GetInventory(ctx context.Context, id string) (*domain.InventoryItem, error)

	// ListInventory retrieves items matching the request filters, ordered by code.
	ListInventory(ctx context.Context, params filter.Params) ([]domain.InventoryItem, error)

	// ListInventoryIDs retrieves every inventory identifier.
	ListInventoryIDs(ctx context.Context) ([]binkey.Key, error)
}

// InventoryWriterSvc defines write operations for inventory metadata
type InventoryWriterSvc interface {
	// CreateInventory stamps the session enterprise on a new item and stores it.
	CreateInventory(ctx context.Context, session domain.Session, req dto.CreateInventoryRequest) (binkey.Key, error)

	// UpdateInventory applies a partial update and returns the refreshed item.
	UpdateInventory(ctx context.Context, id string, req dto.UpdateInventoryRequest) (*domain.InventoryItem, error)

	// DeleteInventory removes an item and returns the number of deleted rows.
	DeleteInventory(ctx context.Context, id string) (int64, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
