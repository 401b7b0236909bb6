package models

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/shopspring/decimal"
)

// Voucher is a row of the voucher table.
type Voucher struct {
	UUID         binkey.Key      `db:"uuid"`
	Date         time.Time       `db:"date"`
	ProjectID    int64           `db:"project_id"`
	Reference    string          `db:"reference"`
	CurrencyID   int64           `db:"currency_id"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	DocumentUUID *binkey.Key     `db:"document_uuid"` // Nullable
	UserID       int64           `db:"user_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

// VoucherItem is a row of the voucher_item table. LineNo keeps submission order.
type VoucherItem struct {
	UUID        binkey.Key      `db:"uuid"`
	VoucherUUID binkey.Key      `db:"voucher_uuid"`
	LineNo      int32           `db:"line_no"`
	AccountID   int64           `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
