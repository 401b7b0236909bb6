package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumLines returns the summed debits and credits of voucher lines.
func SumLines(items []domain.VoucherItem) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, item := range items {
		debit = debit.Add(item.Debit)
		credit = credit.Add(item.Credit)
	}
	return debit, credit
}

// ValidateVoucherBalance checks that the debits of a voucher equal its credits
// and that no line carries a negative amount.
func ValidateVoucherBalance(items []domain.VoucherItem) error {
	for i, item := range items {
		if item.Debit.IsNegative() || item.Credit.IsNegative() {
			return apperrors.ErrUnbalancedVoucher.With(fmt.Sprintf("line %d has a negative amount", i+1), nil)
		}
	}

	debit, credit := SumLines(items)
	if !debit.Equal(credit) {
		return apperrors.ErrUnbalancedVoucher.With(
			fmt.Sprintf("debit %s, credit %s", debit.String(), credit.String()), nil)
	}
	return nil
}
