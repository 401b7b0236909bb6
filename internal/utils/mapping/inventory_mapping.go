package mapping

import (
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/models"
)

// ToModelInventory converts a domain InventoryItem to a model Inventory
func ToModelInventory(d domain.InventoryItem) models.Inventory {
	return models.Inventory{
		UUID:             d.UUID,
		EnterpriseID:     d.EnterpriseID,
		Code:             d.Code,
		Text:             d.Label,
		Price:            d.Price,
		DefaultQuantity:  d.DefaultQuantity,
		GroupUUID:        d.GroupUUID,
		UnitID:           d.UnitID,
		TypeID:           d.TypeID,
		Consumable:       d.Consumable,
		Locked:           d.Locked,
		IsBroken:         d.IsBroken,
		StockMin:         d.StockMin,
		StockMax:         d.StockMax,
		UnitWeight:       d.UnitWeight,
		UnitVolume:       d.UnitVolume,
		AvgConsumption:   d.AvgConsumption,
		Delay:            d.Delay,
		PurchaseInterval: d.PurchaseInterval,
		Note:             d.Note,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainInventory converts a joined inventory row to a domain InventoryItem
func ToDomainInventory(m models.InventoryDetail) domain.InventoryItem {
	return domain.InventoryItem{
		UUID:             m.UUID,
		EnterpriseID:     m.EnterpriseID,
		Code:             m.Code,
		Label:            m.Text,
		Price:            m.Price,
		DefaultQuantity:  m.DefaultQuantity,
		GroupUUID:        m.GroupUUID,
		UnitID:           m.UnitID,
		TypeID:           m.TypeID,
		Consumable:       m.Consumable,
		Locked:           m.Locked,
		IsBroken:         m.IsBroken,
		StockMin:         m.StockMin,
		StockMax:         m.StockMax,
		UnitWeight:       m.UnitWeight,
		UnitVolume:       m.UnitVolume,
		AvgConsumption:   m.AvgConsumption,
		Delay:            m.Delay,
		PurchaseInterval: m.PurchaseInterval,
		Note:             m.Note,
		CreatedAt:        m.CreatedAt,
		Group: domain.InventoryGroup{
			UUID:            m.GroupUUID,
			Name:            m.GroupName,
			Expires:         m.Expires,
			UniqueItem:      m.UniqueItem,
			SalesAccount:    m.SalesAccount,
			StockAccount:    m.StockAccount,
			CogsAccount:     m.CogsAccount,
			DonationAccount: m.DonationAccount,
		},
		Unit: m.UnitAbbr,
		Type: m.TypeText,
	}
}

// ToDomainInventorySlice converts joined inventory rows to domain items
func ToDomainInventorySlice(rows []models.InventoryDetail) []domain.InventoryItem {
	items := make([]domain.InventoryItem, len(rows))
	for i, row := range rows {
		items[i] = ToDomainInventory(row)
	}
	return items
}

// ToInventoryColumns converts a partial update to a column/value map.
// Only set fields appear in the result. An empty note maps to NULL.
func ToInventoryColumns(c domain.InventoryChanges) map[string]any {
	cols := make(map[string]any)
	set := func(column string, ok bool, v any) {
		if ok {
			cols[column] = v
		}
	}
	set("code", c.Code != nil, derefOr(c.Code))
	set("text", c.Label != nil, derefOr(c.Label))
	set("price", c.Price != nil, derefOr(c.Price))
	set("default_quantity", c.DefaultQuantity != nil, derefOr(c.DefaultQuantity))
	set("group_uuid", c.GroupUUID != nil, derefOr(c.GroupUUID))
	set("unit_id", c.UnitID != nil, derefOr(c.UnitID))
	set("type_id", c.TypeID != nil, derefOr(c.TypeID))
	set("consumable", c.Consumable != nil, derefOr(c.Consumable))
	set("locked", c.Locked != nil, derefOr(c.Locked))
	set("is_broken", c.IsBroken != nil, derefOr(c.IsBroken))
	set("stock_min", c.StockMin != nil, derefOr(c.StockMin))
	set("stock_max", c.StockMax != nil, derefOr(c.StockMax))
	set("unit_weight", c.UnitWeight != nil, derefOr(c.UnitWeight))
	set("unit_volume", c.UnitVolume != nil, derefOr(c.UnitVolume))
	set("avg_consumption", c.AvgConsumption != nil, derefOr(c.AvgConsumption))
	set("delay", c.Delay != nil, derefOr(c.Delay))
	set("purchase_interval", c.PurchaseInterval != nil, derefOr(c.PurchaseInterval))
	if c.Note != nil {
		// An empty note clears the column.
		if *c.Note == "" {
			cols["note"] = nil
		} else {
			cols["note"] = *c.Note
		}
	}
	return cols
}

func derefOr[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
