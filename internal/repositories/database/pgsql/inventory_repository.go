package pgsql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
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

// InventoryListBase joins each item with its type, unit and group. Filters
// address the item table through the "inventory" alias.
const InventoryListBase = `SELECT inventory.uuid, inventory.enterprise_id, inventory.code, inventory.text,
	inventory.price, inventory.default_quantity, inventory.group_uuid, inventory.unit_id, inventory.type_id,
	inventory.consumable, inventory.locked, inventory.is_broken, inventory.stock_min, inventory.stock_max,
	inventory.unit_weight, inventory.unit_volume, inventory.avg_consumption, inventory.delay,
	inventory.purchase_interval, inventory.note, inventory.created_at,
	iu.abbr AS unit_abbr, it.text AS type_text, ig.name AS group_name, ig.expires, ig.unique_item,
	ig.sales_account, ig.stock_account, ig.cogs_account, ig.donation_account
FROM inventory
	JOIN inventory_type AS it ON it.id = inventory.type_id
	JOIN inventory_unit AS iu ON iu.id = inventory.unit_id
	JOIN inventory_group AS ig ON ig.uuid = inventory.group_uuid`

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory metadata.
func newPgxInventoryRepository(db DB) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// FindInventoryByID retrieves a single joined inventory row.
func (r *PgxInventoryRepository) FindInventoryByID(ctx context.Context, id binkey.Key) (*domain.InventoryItem, error) {
	var row models.InventoryDetail
	err := pgxscan.Get(ctx, r.DB, &row, InventoryListBase+` WHERE inventory.uuid = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoInventoryItem.With(id.String(), err)
		}
		return nil, mapError(err, "failed to find inventory item "+id.String())
	}
	item := mapping.ToDomainInventory(row)
	return &item, nil
}

// ListInventory retrieves the joined rows matching f.
func (r *PgxInventoryRepository) ListInventory(ctx context.Context, f filter.Filter) ([]domain.InventoryItem, error) {
	query, args, err := f.Apply(InventoryListBase)
	if err != nil {
		return nil, err
	}

	var rows []models.InventoryDetail
	if err := pgxscan.Select(ctx, r.DB, &rows, query, args...); err != nil {
		return nil, mapError(err, "failed to list inventory")
	}
	return mapping.ToDomainInventorySlice(rows), nil
}

// ListInventoryIDs retrieves every inventory identifier ordered by code.
func (r *PgxInventoryRepository) ListInventoryIDs(ctx context.Context) ([]binkey.Key, error) {
	ids := []binkey.Key{}
	if err := pgxscan.Select(ctx, r.DB, &ids, `SELECT inventory.uuid FROM inventory ORDER BY inventory.code`); err != nil {
		return nil, mapError(err, "failed to list inventory identifiers")
	}
	return ids, nil
}

// SaveInventory inserts a new item.
func (r *PgxInventoryRepository) SaveInventory(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventory(item)
	query, args, err := psql.Insert("inventory").
		Columns("uuid", "enterprise_id", "code", "text", "price", "default_quantity", "group_uuid",
			"unit_id", "type_id", "consumable", "locked", "is_broken", "stock_min", "stock_max",
			"unit_weight", "unit_volume", "avg_consumption", "delay", "purchase_interval", "note").
		Values(m.UUID, m.EnterpriseID, m.Code, m.Text, m.Price, m.DefaultQuantity, m.GroupUUID,
			m.UnitID, m.TypeID, m.Consumable, m.Locked, m.IsBroken, m.StockMin, m.StockMax,
			m.UnitWeight, m.UnitVolume, m.AvgConsumption, m.Delay, m.PurchaseInterval, m.Note).
		ToSql()
	if err != nil {
		return mapError(err, "failed to build inventory insert")
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return mapError(err, "failed to insert inventory item "+item.UUID.String())
	}
	return nil
}

// UpdateInventory applies the set fields of changes. Callers skip the call
// for an empty change set.
func (r *PgxInventoryRepository) UpdateInventory(ctx context.Context, id binkey.Key, changes domain.InventoryChanges) error {
	cols := mapping.ToInventoryColumns(changes)
	if len(cols) == 0 {
		return nil
	}

	query, args, err := psql.Update("inventory").
		SetMap(cols).
		Where(sq.Expr("uuid = ?", id)).
		ToSql()
	if err != nil {
		return mapError(err, "failed to build inventory update")
	}

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "failed to update inventory item "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoInventoryItem.With(id.String(), nil)
	}
	return nil
}

// DeleteInventory removes an item and reports the number of deleted rows.
func (r *PgxInventoryRepository) DeleteInventory(ctx context.Context, id binkey.Key) (int64, error) {
	query, args, err := psql.Delete("inventory").
		Where(sq.Expr("uuid = ?", id)).
		ToSql()
	if err != nil {
		return 0, mapError(err, "failed to build inventory delete")
	}

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "failed to delete inventory item "+id.String())
	}
	return tag.RowsAffected(), nil
}
