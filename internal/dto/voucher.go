package dto

import (
	"time"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherItemRequest is one ledger line of a voucher submission.
// UUID is generated when empty; VoucherUUID is always replaced by the voucher's.
type VoucherItemRequest struct {
	UUID        string          `json:"uuid" binding:"omitempty,canonical_id"`
	VoucherUUID string          `json:"voucher_uuid" binding:"omitempty,canonical_id"`
	AccountID   int64           `json:"account_id" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// VoucherPayload carries the voucher header fields.
type VoucherPayload struct {
	UUID         string               `json:"uuid" binding:"omitempty,canonical_id"`
	Date         string               `json:"date"` // YYYY-MM-DD or RFC 3339, defaults to today
	ProjectID    int64                `json:"project_id"`
	Reference    string               `json:"reference"`
	CurrencyID   int64                `json:"currency_id" binding:"required"` // Mandatory, no default currency
	Amount       *decimal.Decimal     `json:"amount"`
	Description  string               `json:"description"`
	DocumentUUID string               `json:"document_uuid" binding:"omitempty,canonical_id"`
	UserID       *int64               `json:"user_id"`
	Items        []VoucherItemRequest `json:"items" binding:"dive"`
}

// CreateVoucherRequest accepts the items either nested in the voucher or at
// the top level next to it.
type CreateVoucherRequest struct {
	Voucher VoucherPayload       `json:"voucher"`
	Items   []VoucherItemRequest `json:"items" binding:"dive"`
}

// LedgerItems returns the submitted items, preferring the nested list.
func (r CreateVoucherRequest) LedgerItems() []VoucherItemRequest {
	if len(r.Voucher.Items) > 0 {
		return r.Voucher.Items
	}
	return r.Items
}

// VoucherItemResponse is one ledger line of a stored voucher.
type VoucherItemResponse struct {
	UUID        string          `json:"uuid"`
	VoucherUUID string          `json:"voucher_uuid"`
	AccountID   int64           `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// VoucherResponse mirrors domain.Voucher with canonical identifiers.
type VoucherResponse struct {
	UUID         string                `json:"uuid"`
	Date         time.Time             `json:"date"`
	ProjectID    int64                 `json:"project_id"`
	Reference    string                `json:"reference"`
	CurrencyID   int64                 `json:"currency_id"`
	Amount       decimal.Decimal       `json:"amount"`
	Description  string                `json:"description"`
	DocumentUUID *string               `json:"document_uuid"`
	UserID       int64                 `json:"user_id"`
	CreatedAt    time.Time             `json:"created_at"`
	Items        []VoucherItemResponse `json:"items"`
}

// ToVoucherResponse converts a domain.Voucher to a VoucherResponse DTO
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	var documentUUID *string
	if v.DocumentUUID != nil {
		s := v.DocumentUUID.String()
		documentUUID = &s
	}

	items := make([]VoucherItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = VoucherItemResponse{
			UUID:        item.UUID.String(),
			VoucherUUID: item.VoucherUUID.String(),
			AccountID:   item.AccountID,
			Debit:       item.Debit,
			Credit:      item.Credit,
		}
	}

	return VoucherResponse{
		UUID:         v.UUID.String(),
		Date:         v.Date,
		ProjectID:    v.ProjectID,
		Reference:    v.Reference,
		CurrencyID:   v.CurrencyID,
		Amount:       v.Amount,
		Description:  v.Description,
		DocumentUUID: documentUUID,
		UserID:       v.UserID,
		CreatedAt:    v.CreatedAt,
		Items:        items,
	}
}

// ToListVoucherResponse converts a slice of domain.Voucher to VoucherResponse DTOs
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToVoucherResponse(&vouchers[i])
	}
	return res
}
