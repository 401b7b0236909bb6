package models

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/shopspring/decimal"
)

// Inventory is a row of the inventory table.
type Inventory struct {
	UUID             binkey.Key      `db:"uuid"`
	EnterpriseID     int64           `db:"enterprise_id"`
	Code             string          `db:"code"`
	Text             string          `db:"text"`
	Price            decimal.Decimal `db:"price"`
	DefaultQuantity  int32           `db:"default_quantity"`
	GroupUUID        binkey.Key      `db:"group_uuid"`
	UnitID           int32           `db:"unit_id"`
	TypeID           int32           `db:"type_id"`
	Consumable       bool            `db:"consumable"`
	Locked           bool            `db:"locked"`
	IsBroken         bool            `db:"is_broken"`
	StockMin         int32           `db:"stock_min"`
	StockMax         int32           `db:"stock_max"`
	UnitWeight       decimal.Decimal `db:"unit_weight"`
	UnitVolume       decimal.Decimal `db:"unit_volume"`
	AvgConsumption   decimal.Decimal `db:"avg_consumption"`
	Delay            decimal.Decimal `db:"delay"`
	PurchaseInterval decimal.Decimal `db:"purchase_interval"`
	Note             *string         `db:"note"` // Nullable
	CreatedAt        time.Time       `db:"created_at"`
}

// InventoryDetail is an inventory row joined with its group, unit and type.
type InventoryDetail struct {
	Inventory
	UnitAbbr        string `db:"unit_abbr"`
	TypeText        string `db:"type_text"`
	GroupName       string `db:"group_name"`
	Expires         bool   `db:"expires"`
	UniqueItem      bool   `db:"unique_item"`
	SalesAccount    *int64 `db:"sales_account"`
	StockAccount    *int64 `db:"stock_account"`
	CogsAccount     *int64 `db:"cogs_account"`
	DonationAccount *int64 `db:"donation_account"`
}
