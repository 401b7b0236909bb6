package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_records_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
)

// DefaultInventoryLimit caps list responses when the caller sends a larger limit.
const DefaultInventoryLimit = 1000

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new inventory metadata service.
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: repo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// ListInventory retrieves items matching the request filters, ordered by code.
func (s *inventoryService) ListInventory(ctx context.Context, params filter.Params) ([]domain.InventoryItem, error) {
	params = params.Clone()
	if err := params.ConvertKeys("uuid", "group_uuid"); err != nil {
		return nil, err
	}
	if err := params.ConvertKeyLists("inventory_uuids"); err != nil {
		return nil, err
	}

	f := filter.New(params, filter.Options{TableAlias: "inventory", MaxLimit: DefaultInventoryLimit}).
		FullText("text", "text", "inventory").
		Equals("uuid").
		Equals("group_uuid").
		Equals("unit_id").
		Equals("type_id").
		Equals("code").
		Equals("price").
		Equals("consumable").
		Equals("locked").
		EqualsColumn("label", "inventory.text").
		Equals("is_broken").
		Equals("note").
		Custom("inventory_uuids", "inventory.uuid = ANY(?)", nil).
		SetOrder("ORDER BY inventory.code ASC").
		Limit("limit")

	items, err := s.inventoryRepo.ListInventory(ctx, f)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list inventory")
		return nil, err
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}

	s.LogDebug(ctx, "Inventory listed", slog.Int("count", len(items)))
	return items, nil
}

// GetInventory retrieves one item by canonical identifier.
func (s *inventoryService) GetInventory(ctx context.Context, id string) (*domain.InventoryItem, error) {
	key, err := parseKey(id, "uuid")
	if err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.FindInventoryByID(ctx, key)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get inventory item", slog.String("inventory_uuid", id))
		return nil, err
	}
	return item, nil
}

// ListInventoryIDs retrieves every inventory identifier.
func (s *inventoryService) ListInventoryIDs(ctx context.Context) ([]binkey.Key, error) {
	ids, err := s.inventoryRepo.ListInventoryIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory identifiers")
		return nil, err
	}
	if ids == nil {
		return []binkey.Key{}, nil
	}
	return ids, nil
}

// CreateInventory stamps the session enterprise on a new item and stores it.
func (s *inventoryService) CreateInventory(ctx context.Context, session domain.Session, req dto.CreateInventoryRequest) (binkey.Key, error) {
	id, err := keyOrNew(req.UUID, "uuid")
	if err != nil {
		return binkey.Nil, err
	}
	groupID, err := parseKey(req.GroupUUID, "group_uuid")
	if err != nil {
		return binkey.Nil, err
	}

	item := domain.InventoryItem{
		UUID:             id,
		EnterpriseID:     session.EnterpriseID,
		Code:             req.Code,
		Label:            req.Label,
		Price:            req.Price,
		DefaultQuantity:  req.DefaultQuantity,
		GroupUUID:        groupID,
		UnitID:           req.UnitID,
		TypeID:           req.TypeID,
		Consumable:       req.Consumable,
		Locked:           req.Locked,
		IsBroken:         req.IsBroken,
		StockMin:         req.StockMin,
		StockMax:         req.StockMax,
		UnitWeight:       req.UnitWeight,
		UnitVolume:       req.UnitVolume,
		AvgConsumption:   req.AvgConsumption,
		Delay:            req.Delay,
		PurchaseInterval: req.PurchaseInterval,
		Note:             req.Note,
	}

	if err := s.inventoryRepo.SaveInventory(ctx, item); err != nil {
		s.logFailure(ctx, err, "Failed to create inventory item", slog.String("inventory_uuid", id.String()))
		return binkey.Nil, err
	}

	s.LogInfo(ctx, "Inventory item created", slog.String("inventory_uuid", id.String()), slog.String("code", item.Code))
	return id, nil
}

// UpdateInventory applies a partial update and returns the refreshed item.
// The identifier in the body is ignored. An empty update only reads.
func (s *inventoryService) UpdateInventory(ctx context.Context, id string, req dto.UpdateInventoryRequest) (*domain.InventoryItem, error) {
	key, err := parseKey(id, "uuid")
	if err != nil {
		return nil, err
	}

	changes, err := toInventoryChanges(req)
	if err != nil {
		return nil, err
	}

	if !changes.IsEmpty() {
		if err := s.inventoryRepo.UpdateInventory(ctx, key, changes); err != nil {
			s.logFailure(ctx, err, "Failed to update inventory item", slog.String("inventory_uuid", id))
			return nil, err
		}
		s.LogInfo(ctx, "Inventory item updated", slog.String("inventory_uuid", id))
	}

	return s.GetInventory(ctx, id)
}

// DeleteInventory removes an item. Deleting a missing item is NotFound.
func (s *inventoryService) DeleteInventory(ctx context.Context, id string) (int64, error) {
	key, err := parseKey(id, "uuid")
	if err != nil {
		return 0, err
	}

	deleted, err := s.inventoryRepo.DeleteInventory(ctx, key)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete inventory item", slog.String("inventory_uuid", id))
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.ErrNoInventoryItem.With(id, nil)
	}

	s.LogInfo(ctx, "Inventory item deleted", slog.String("inventory_uuid", id))
	return deleted, nil
}

func toInventoryChanges(req dto.UpdateInventoryRequest) (domain.InventoryChanges, error) {
	changes := domain.InventoryChanges{
		Code:             req.Code,
		Label:            req.Label,
		Price:            req.Price,
		DefaultQuantity:  req.DefaultQuantity,
		UnitID:           req.UnitID,
		TypeID:           req.TypeID,
		Consumable:       req.Consumable,
		Locked:           req.Locked,
		IsBroken:         req.IsBroken,
		StockMin:         req.StockMin,
		StockMax:         req.StockMax,
		UnitWeight:       req.UnitWeight,
		UnitVolume:       req.UnitVolume,
		AvgConsumption:   req.AvgConsumption,
		Delay:            req.Delay,
		PurchaseInterval: req.PurchaseInterval,
		Note:             req.Note,
	}
	if req.GroupUUID != nil {
		groupID, err := parseKey(*req.GroupUUID, "group_uuid")
		if err != nil {
			return domain.InventoryChanges{}, err
		}
		changes.GroupUUID = &groupID
	}
	return changes, nil
}
