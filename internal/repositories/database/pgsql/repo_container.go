package pgsql

import (
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to db.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo:   newPgxVoucherRepository(db),
		InventoryRepo: newPgxInventoryRepository(db),
	}
}
