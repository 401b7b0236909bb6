package repositories

import (
	"context"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher and its items.
	FindVoucherByID(ctx context.Context, voucherID binkey.Key) (*domain.Voucher, error)

	// ListVouchers retrieves the vouchers matching f, each with its items.
	ListVouchers(ctx context.Context, f filter.Filter) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a voucher header and all of its items atomically.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
