package services

import (
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_records_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_records_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var voucherOpts []VoucherServiceOption
	if cfg.EnforceVoucherBalance {
		voucherOpts = append(voucherOpts, WithVoucherChecks(BalancedVoucherCheck))
	}

	return &portssvc.ServiceContainer{
		Voucher:   NewVoucherService(repos.VoucherRepo, voucherOpts...),
		Inventory: NewInventoryService(repos.InventoryRepo),
	}
}
