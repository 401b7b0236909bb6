package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/core/services"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_records_backend/internal/repositories/database/pgsql/testhelper"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = domain.Session{EnterpriseID: 1, UserID: 7}

func countVouchers(t *testing.T, pool *pgxpool.Pool, id binkey.Key) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT count(*) FROM voucher WHERE uuid = $1`, id).Scan(&n))
	return n
}

func TestIntegration_VoucherRoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repos := pgsql.NewRepositoryProvider(pool)
	svc := services.NewVoucherService(repos.VoucherRepo)

	reference := "INT-" + binkey.New().String()
	req := dto.CreateVoucherRequest{
		Voucher: dto.VoucherPayload{
			Date:        "2024-03-01",
			Reference:   reference,
			CurrencyID:  2,
			Description: "office rent",
		},
		Items: []dto.VoucherItemRequest{
			{AccountID: 300, Debit: decimal.RequireFromString("120.50")},
			{AccountID: 100, Credit: decimal.RequireFromString("100")},
			{AccountID: 200, Credit: decimal.RequireFromString("20.50")},
		},
	}

	id, err := svc.CreateVoucher(ctx, testSession, req)
	require.NoError(t, err)

	got, err := svc.GetVoucher(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, reference, got.Reference)
	assert.Equal(t, testSession.UserID, got.UserID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("120.50")), got.Amount.String())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.Date.UTC())
	require.Len(t, got.Items, 3)
	assert.Equal(t, []int64{300, 100, 200}, []int64{got.Items[0].AccountID, got.Items[1].AccountID, got.Items[2].AccountID})
	for _, item := range got.Items {
		assert.Equal(t, id, item.VoucherUUID)
	}

	listed, err := svc.ListVouchers(ctx, filter.Params{"reference": reference, "account_id": "100"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].UUID)
	assert.Len(t, listed[0].Items, 3)

	none, err := svc.ListVouchers(ctx, filter.Params{"reference": reference, "account_id": "999"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIntegration_VoucherSaveIsAtomic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repos := pgsql.NewRepositoryProvider(pool)

	id := binkey.New()
	voucher := domain.Voucher{
		UUID:       id,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CurrencyID: 1,
		Amount:     decimal.NewFromInt(10),
		UserID:     testSession.UserID,
		Items: []domain.VoucherItem{
			{UUID: binkey.New(), VoucherUUID: id, AccountID: 1, Debit: decimal.NewFromInt(10)},
			{UUID: binkey.New(), VoucherUUID: id, AccountID: 2, Debit: decimal.NewFromInt(-10)},
		},
	}

	err := repos.VoucherRepo.SaveVoucher(ctx, voucher)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConstraint)
	assert.Equal(t, 0, countVouchers(t, pool, id))

	_, err = repos.VoucherRepo.FindVoucherByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNoVoucher)
}

func TestIntegration_VoucherDateRangeNeedsBothBounds(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	svc := services.NewVoucherService(pgsql.NewRepositoryProvider(pool).VoucherRepo)

	_, err := svc.ListVouchers(context.Background(), filter.Params{"dateFrom": "2024-01-01"})
	assert.ErrorIs(t, err, apperrors.ErrMissingParameters)
}

func seedGroup(t *testing.T, pool *pgxpool.Pool) binkey.Key {
	t.Helper()
	id := binkey.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO inventory_group (uuid, name, expires, sales_account) VALUES ($1, $2, TRUE, 4000)`,
		id, "Medicines "+id.String())
	require.NoError(t, err)
	return id
}

func TestIntegration_InventoryLifecycle(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	svc := services.NewInventoryService(pgsql.NewRepositoryProvider(pool).InventoryRepo)
	groupID := seedGroup(t, pool)

	code := "INV-" + binkey.New().String()
	id, err := svc.CreateInventory(ctx, testSession, dto.CreateInventoryRequest{
		Code:      code,
		Label:     "Paracetamol 500mg",
		Price:     decimal.RequireFromString("2.75"),
		GroupUUID: groupID.String(),
		UnitID:    1,
		TypeID:    1,
		StockMax:  100,
	})
	require.NoError(t, err)

	item, err := svc.GetInventory(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, code, item.Code)
	assert.Equal(t, testSession.EnterpriseID, item.EnterpriseID)
	assert.Equal(t, "pcs", item.Unit)
	assert.Equal(t, "Article", item.Type)
	assert.True(t, item.Group.Expires)
	require.NotNil(t, item.Group.SalesAccount)
	assert.Equal(t, int64(4000), *item.Group.SalesAccount)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("2.75")))

	// duplicate code
	_, err = svc.CreateInventory(ctx, testSession, dto.CreateInventoryRequest{
		Code: code, Label: "Copy", GroupUUID: groupID.String(), UnitID: 1, TypeID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraint)

	listed, err := svc.ListInventory(ctx, filter.Params{"text": "paracetamol", "group_uuid": groupID.String()})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].UUID)

	locked := true
	label := "Paracetamol 1g"
	updated, err := svc.UpdateInventory(ctx, id.String(), dto.UpdateInventoryRequest{Locked: &locked, Label: &label})
	require.NoError(t, err)
	assert.True(t, updated.Locked)
	assert.Equal(t, label, updated.Label)
	assert.Equal(t, code, updated.Code)

	ids, err := svc.ListInventoryIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, id)

	deleted, err := svc.DeleteInventory(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = svc.GetInventory(ctx, id.String())
	assert.ErrorIs(t, err, apperrors.ErrNoInventoryItem)

	_, err = svc.DeleteInventory(ctx, id.String())
	assert.ErrorIs(t, err, apperrors.ErrNoInventoryItem)
}

func TestIntegration_InventoryUnknownGroupIsConstraint(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	svc := services.NewInventoryService(pgsql.NewRepositoryProvider(pool).InventoryRepo)

	_, err := svc.CreateInventory(context.Background(), testSession, dto.CreateInventoryRequest{
		Code:      "INV-" + binkey.New().String(),
		Label:     "Orphan",
		GroupUUID: binkey.New().String(),
		UnitID:    1,
		TypeID:    1,
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraint)
}

func TestIntegration_InventoryFilterByCodeReturnsOnlyMatch(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	svc := services.NewInventoryService(pgsql.NewRepositoryProvider(pool).InventoryRepo)
	groupID := seedGroup(t, pool)

	note := "keep dry"
	wanted, err := svc.CreateInventory(ctx, testSession, dto.CreateInventoryRequest{
		Code: "A100-" + binkey.New().String(), Label: "Bandage", GroupUUID: groupID.String(), UnitID: 1, TypeID: 1, Note: &note,
	})
	require.NoError(t, err)
	other, err := svc.CreateInventory(ctx, testSession, dto.CreateInventoryRequest{
		Code: "B200-" + binkey.New().String(), Label: "Bandage", GroupUUID: groupID.String(), UnitID: 1, TypeID: 1,
	})
	require.NoError(t, err)
	require.NotEqual(t, wanted, other)

	item, err := svc.GetInventory(ctx, wanted.String())
	require.NoError(t, err)

	listed, err := svc.ListInventory(ctx, filter.Params{"code": item.Code})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, wanted, listed[0].UUID)

	listed, err = svc.ListInventory(ctx, filter.Params{"group_uuid": groupID.String()})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	// an empty note clears the stored value
	empty := ""
	updated, err := svc.UpdateInventory(ctx, wanted.String(), dto.UpdateInventoryRequest{Note: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Note)
}
