package mapping

import (
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		UUID:         d.UUID,
		Date:         d.Date,
		ProjectID:    d.ProjectID,
		Reference:    d.Reference,
		CurrencyID:   d.CurrencyID,
		Amount:       d.Amount,
		Description:  d.Description,
		DocumentUUID: d.DocumentUUID,
		UserID:       d.UserID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainVoucher converts a model Voucher and its item rows to a domain Voucher
func ToDomainVoucher(m models.Voucher, items []models.VoucherItem) domain.Voucher {
	return domain.Voucher{
		UUID:         m.UUID,
		Date:         m.Date,
		ProjectID:    m.ProjectID,
		Reference:    m.Reference,
		CurrencyID:   m.CurrencyID,
		Amount:       m.Amount,
		Description:  m.Description,
		DocumentUUID: m.DocumentUUID,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		Items:        ToDomainVoucherItemSlice(items),
	}
}

// ToModelVoucherItems converts domain items to rows, numbering them in order
func ToModelVoucherItems(items []domain.VoucherItem) []models.VoucherItem {
	rows := make([]models.VoucherItem, len(items))
	for i, item := range items {
		rows[i] = models.VoucherItem{
			UUID:        item.UUID,
			VoucherUUID: item.VoucherUUID,
			LineNo:      int32(i + 1),
			AccountID:   item.AccountID,
			Debit:       item.Debit,
			Credit:      item.Credit,
		}
	}
	return rows
}

// ToDomainVoucherItemSlice converts item rows to domain items
func ToDomainVoucherItemSlice(rows []models.VoucherItem) []domain.VoucherItem {
	items := make([]domain.VoucherItem, len(rows))
	for i, row := range rows {
		items[i] = domain.VoucherItem{
			UUID:        row.UUID,
			VoucherUUID: row.VoucherUUID,
			AccountID:   row.AccountID,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	return items
}
