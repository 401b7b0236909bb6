package repositories

import (
	"context"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
)

// InventoryReader defines read operations for inventory metadata
type InventoryReader interface {
	// FindInventoryByID retrieves a single item joined with its group, unit and type.
	FindInventoryByID(ctx context.Context, id binkey.Key) (*domain.InventoryItem, error)

	// ListInventory retrieves the items matching f.
	ListInventory(ctx context.Context, f filter.Filter) ([]domain.InventoryItem, error)

	// ListInventoryIDs retrieves every inventory identifier.
	ListInventoryIDs(ctx context.Context) ([]binkey.Key, error)
}

// InventoryWriter defines write operations for inventory metadata
type InventoryWriter interface {
	// SaveInventory inserts a new item.
	SaveInventory(ctx context.Context, item domain.InventoryItem) error

	// UpdateInventory applies a non-empty partial update to an item.
	UpdateInventory(ctx context.Context, id binkey.Key, changes domain.InventoryChanges) error

	// DeleteInventory removes an item and reports how many rows were deleted.
	DeleteInventory(ctx context.Context, id binkey.Key) (int64, error)
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
