package domain

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/shopspring/decimal"
)

// InventoryItem is the metadata of a stockable article. Group, unit and type
// are resolved through their foreign keys on read.
type InventoryItem struct {
	UUID             binkey.Key
	EnterpriseID     int64
	Code             string
	Label            string
	Price            decimal.Decimal
	DefaultQuantity  int32
	GroupUUID        binkey.Key
	UnitID           int32
	TypeID           int32
	Consumable       bool
	Locked           bool
	IsBroken         bool
	StockMin         int32
	StockMax         int32
	UnitWeight       decimal.Decimal
	UnitVolume       decimal.Decimal
	AvgConsumption   decimal.Decimal
	Delay            decimal.Decimal
	PurchaseInterval decimal.Decimal
	Note             *string
	CreatedAt        time.Time

	Group InventoryGroup
	Unit  string // abbreviation
	Type  string
}

// InventoryGroup carries the accounting defaults shared by a family of items.
type InventoryGroup struct {
	UUID            binkey.Key
	Name            string
	Expires         bool
	UniqueItem      bool
	SalesAccount    *int64
	StockAccount    *int64
	CogsAccount     *int64
	DonationAccount *int64
}

// InventoryChanges is a partial update. Nil fields are left untouched and the
// identifier can never be changed through it.
type InventoryChanges struct {
	Code             *string
	Label            *string
	Price            *decimal.Decimal
	DefaultQuantity  *int32
	GroupUUID        *binkey.Key
	UnitID           *int32
	TypeID           *int32
	Consumable       *bool
	Locked           *bool
	IsBroken         *bool
	StockMin         *int32
	StockMax         *int32
	UnitWeight       *decimal.Decimal
	UnitVolume       *decimal.Decimal
	AvgConsumption   *decimal.Decimal
	Delay            *decimal.Decimal
	PurchaseInterval *decimal.Decimal
	Note             *string
}

// IsEmpty reports whether no field is set.
func (c InventoryChanges) IsEmpty() bool {
	return c == InventoryChanges{}
}
