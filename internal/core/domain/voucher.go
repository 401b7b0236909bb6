package domain

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/shopspring/decimal"
)

// MinVoucherItems is the fewest lines a double-entry voucher can carry.
const MinVoucherItems = 2

// Voucher is a ledger voucher: a dated header plus the ordered debit/credit
// lines posted with it. Vouchers are write-once.
type Voucher struct {
	UUID         binkey.Key
	Date         time.Time
	ProjectID    int64
	Reference    string
	CurrencyID   int64
	Amount       decimal.Decimal
	Description  string
	DocumentUUID *binkey.Key
	UserID       int64
	CreatedAt    time.Time
	Items        []VoucherItem
}

// VoucherItem is a single ledger line.
type VoucherItem struct {
	UUID        binkey.Key
	VoucherUUID binkey.Key
	AccountID   int64
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}
