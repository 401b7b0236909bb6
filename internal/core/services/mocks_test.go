package services_test

import (
	"context"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/stretchr/testify/mock"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID binkey.Key) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, f filter.Filter) ([]domain.Voucher, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindInventoryByID(ctx context.Context, id binkey.Key) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context, f filter.Filter) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListInventoryIDs(ctx context.Context) ([]binkey.Key, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]binkey.Key), args.Error(1)
}

func (m *MockInventoryRepository) SaveInventory(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateInventory(ctx context.Context, id binkey.Key, changes domain.InventoryChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteInventory(ctx context.Context, id binkey.Key) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)
