package dto

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryRequest defines the data needed to create an inventory item.
// The enterprise is taken from the session, never from the body.
type CreateInventoryRequest struct {
	UUID             string          `json:"uuid" binding:"omitempty,canonical_id"` // Optional, generated when empty
	Code             string          `json:"code" binding:"required"`
	Label            string          `json:"label" binding:"required"`
	Price            decimal.Decimal `json:"price"`
	DefaultQuantity  int32           `json:"default_quantity"`
	GroupUUID        string          `json:"group_uuid" binding:"required,canonical_id"`
	UnitID           int32           `json:"unit_id" binding:"required"`
	TypeID           int32           `json:"type_id" binding:"required"`
	Consumable       bool            `json:"consumable"`
	Locked           bool            `json:"locked"`
	IsBroken         bool            `json:"is_broken"`
	StockMin         int32           `json:"stock_min" binding:"gte=0"`
	StockMax         int32           `json:"stock_max" binding:"gte=0"`
	UnitWeight       decimal.Decimal `json:"unit_weight"`
	UnitVolume       decimal.Decimal `json:"unit_volume"`
	AvgConsumption   decimal.Decimal `json:"avg_consumption"`
	Delay            decimal.Decimal `json:"delay"`
	PurchaseInterval decimal.Decimal `json:"purchase_interval"`
	Note             *string         `json:"note"`
}

// UpdateInventoryRequest defines the fields allowed in a partial update.
// Pointers distinguish "not provided" from zero values. A uuid in the body is ignored.
type UpdateInventoryRequest struct {
	UUID             *string          `json:"uuid"`
	Code             *string          `json:"code" binding:"omitempty,min=1"`
	Label            *string          `json:"label" binding:"omitempty,min=1"`
	Price            *decimal.Decimal `json:"price"`
	DefaultQuantity  *int32           `json:"default_quantity"`
	GroupUUID        *string          `json:"group_uuid" binding:"omitempty,canonical_id"`
	UnitID           *int32           `json:"unit_id"`
	TypeID           *int32           `json:"type_id"`
	Consumable       *bool            `json:"consumable"`
	Locked           *bool            `json:"locked"`
	IsBroken         *bool            `json:"is_broken"`
	StockMin         *int32           `json:"stock_min" binding:"omitempty,gte=0"`
	StockMax         *int32           `json:"stock_max" binding:"omitempty,gte=0"`
	UnitWeight       *decimal.Decimal `json:"unit_weight"`
	UnitVolume       *decimal.Decimal `json:"unit_volume"`
	AvgConsumption   *decimal.Decimal `json:"avg_consumption"`
	Delay            *decimal.Decimal `json:"delay"`
	PurchaseInterval *decimal.Decimal `json:"purchase_interval"`
	Note             *string          `json:"note"` // Empty string clears the note
}

// InventoryResponse defines the data returned for an inventory item.
type InventoryResponse struct {
	UUID             string          `json:"uuid"`
	Code             string          `json:"code"`
	Label            string          `json:"label"`
	Price            decimal.Decimal `json:"price"`
	DefaultQuantity  int32           `json:"default_quantity"`
	GroupUUID        string          `json:"group_uuid"`
	GroupName        string          `json:"group_name"`
	UnitID           int32           `json:"unit_id"`
	Unit             string          `json:"unit"`
	TypeID           int32           `json:"type_id"`
	Type             string          `json:"type"`
	Consumable       bool            `json:"consumable"`
	Locked           bool            `json:"locked"`
	IsBroken         bool            `json:"is_broken"`
	StockMin         int32           `json:"stock_min"`
	StockMax         int32           `json:"stock_max"`
	UnitWeight       decimal.Decimal `json:"unit_weight"`
	UnitVolume       decimal.Decimal `json:"unit_volume"`
	AvgConsumption   decimal.Decimal `json:"avg_consumption"`
	Delay            decimal.Decimal `json:"delay"`
	PurchaseInterval decimal.Decimal `json:"purchase_interval"`
	Expires          bool            `json:"expires"`
	UniqueItem       bool            `json:"unique_item"`
	SalesAccount     *int64          `json:"sales_account"`
	StockAccount     *int64          `json:"stock_account"`
	CogsAccount      *int64          `json:"cogs_account"`
	DonationAccount  *int64          `json:"donation_account"`
	Note             *string         `json:"note"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToInventoryResponse converts a domain.InventoryItem to InventoryResponse DTO
func ToInventoryResponse(item *domain.InventoryItem) InventoryResponse {
	return InventoryResponse{
		UUID:             item.UUID.String(),
		Code:             item.Code,
		Label:            item.Label,
		Price:            item.Price,
		DefaultQuantity:  item.DefaultQuantity,
		GroupUUID:        item.GroupUUID.String(),
		GroupName:        item.Group.Name,
		UnitID:           item.UnitID,
		Unit:             item.Unit,
		TypeID:           item.TypeID,
		Type:             item.Type,
		Consumable:       item.Consumable,
		Locked:           item.Locked,
		IsBroken:         item.IsBroken,
		StockMin:         item.StockMin,
		StockMax:         item.StockMax,
		UnitWeight:       item.UnitWeight,
		UnitVolume:       item.UnitVolume,
		AvgConsumption:   item.AvgConsumption,
		Delay:            item.Delay,
		PurchaseInterval: item.PurchaseInterval,
		Expires:          item.Group.Expires,
		UniqueItem:       item.Group.UniqueItem,
		SalesAccount:     item.Group.SalesAccount,
		StockAccount:     item.Group.StockAccount,
		CogsAccount:      item.Group.CogsAccount,
		DonationAccount:  item.Group.DonationAccount,
		Note:             item.Note,
		CreatedAt:        item.CreatedAt,
	}
}

// ToListInventoryResponse converts a slice of domain.InventoryItem to InventoryResponse DTOs
func ToListInventoryResponse(items []domain.InventoryItem) []InventoryResponse {
	res := make([]InventoryResponse, len(items))
	for i := range items {
		res[i] = ToInventoryResponse(&items[i])
	}
	return res
}
