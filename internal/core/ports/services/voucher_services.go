package services

import (
	"context"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
)

// VoucherReaderSvc defines read operations for vouchers
type VoucherReaderSvc interface {
	// GetVoucher retrieves a voucher with its items by canonical identifier.
	GetVoucher(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves vouchers matching the request filters.
	ListVouchers(ctx context.Context, params filter.Params) ([]domain.Voucher, error)
}

// VoucherWriterSvc defines write operations for vouchers
type VoucherWriterSvc interface {
	// CreateVoucher validates, normalizes and atomically persists a voucher
	// with its items, returning the voucher identifier.
	CreateVoucher(ctx context.Context, session domain.Session, req dto.CreateVoucherRequest) (binkey.Key, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
