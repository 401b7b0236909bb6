package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_records_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_records_backend/internal/models"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/SscSPs/erp_records_backend/internal/utils/mapping"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

const voucherColumns = `voucher.uuid, voucher.date, voucher.project_id, voucher.reference, voucher.currency_id,
	voucher.amount, voucher.description, voucher.document_uuid, voucher.user_id, voucher.created_at`

const voucherItemColumns = `voucher_item.uuid, voucher_item.voucher_uuid, voucher_item.line_no,
	voucher_item.account_id, voucher_item.debit, voucher_item.credit`

// VoucherListBase is the query the voucher list filter is applied to.
const VoucherListBase = `SELECT ` + voucherColumns + ` FROM voucher`

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for vouchers and their items.
func newPgxVoucherRepository(db DB) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

// SaveVoucher inserts the voucher header and one multi-row insert of its
// items as a single transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	header := psql.Insert("voucher").
		Columns("uuid", "date", "project_id", "reference", "currency_id", "amount", "description", "document_uuid", "user_id").
		Values(m.UUID, m.Date, m.ProjectID, m.Reference, m.CurrencyID, m.Amount, m.Description, m.DocumentUUID, m.UserID)

	lines := psql.Insert("voucher_item").
		Columns("uuid", "voucher_uuid", "line_no", "account_id", "debit", "credit")
	for _, item := range mapping.ToModelVoucherItems(voucher.Items) {
		lines = lines.Values(item.UUID, item.VoucherUUID, item.LineNo, item.AccountID, item.Debit, item.Credit)
	}

	_, err := r.Executor.BeginTransaction().
		AddStatement(header).
		AddStatement(lines).
		Execute(ctx)
	if err != nil {
		return mapError(err, "failed to save voucher "+voucher.UUID.String())
	}
	return nil
}

// FindVoucherByID retrieves a voucher and its items.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID binkey.Key) (*domain.Voucher, error) {
	var row models.Voucher
	err := pgxscan.Get(ctx, r.DB, &row, VoucherListBase+` WHERE voucher.uuid = $1`, voucherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoVoucher.With(voucherID.String(), err)
		}
		return nil, mapError(err, "failed to find voucher "+voucherID.String())
	}

	items, err := r.findItems(ctx, []binkey.Key{voucherID})
	if err != nil {
		return nil, err
	}

	v := mapping.ToDomainVoucher(row, items[voucherID])
	return &v, nil
}

// ListVouchers retrieves the vouchers matching f. Items are fetched with one
// extra query for the whole page.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, f filter.Filter) ([]domain.Voucher, error) {
	query, args, err := f.Apply(VoucherListBase)
	if err != nil {
		return nil, err
	}

	var rows []models.Voucher
	if err := pgxscan.Select(ctx, r.DB, &rows, query, args...); err != nil {
		return nil, mapError(err, "failed to list vouchers")
	}
	if len(rows) == 0 {
		return []domain.Voucher{}, nil
	}

	ids := make([]binkey.Key, len(rows))
	for i, row := range rows {
		ids[i] = row.UUID
	}
	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	vouchers := make([]domain.Voucher, len(rows))
	for i, row := range rows {
		vouchers[i] = mapping.ToDomainVoucher(row, items[row.UUID])
	}
	return vouchers, nil
}

func (r *PgxVoucherRepository) findItems(ctx context.Context, voucherIDs []binkey.Key) (map[binkey.Key][]models.VoucherItem, error) {
	query := `SELECT ` + voucherItemColumns + ` FROM voucher_item
		WHERE voucher_item.voucher_uuid = ANY($1)
		ORDER BY voucher_item.voucher_uuid, voucher_item.line_no`

	var rows []models.VoucherItem
	if err := pgxscan.Select(ctx, r.DB, &rows, query, voucherIDs); err != nil {
		return nil, mapError(err, "failed to load voucher items")
	}

	grouped := make(map[binkey.Key][]models.VoucherItem, len(voucherIDs))
	for _, row := range rows {
		grouped[row.VoucherUUID] = append(grouped[row.VoucherUUID], row)
	}
	return grouped, nil
}
