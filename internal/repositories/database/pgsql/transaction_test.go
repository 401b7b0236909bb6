package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// anyArgs matches n bound arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestTransaction_ExecutesInOrderAndCommits(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO voucher (uuid)")).
		WithArgs("v1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO voucher_item (uuid)")).
		WithArgs("i1", "i2").
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	tags, err := NewTransactionExecutor(mock).BeginTransaction().
		AddQuery("INSERT INTO voucher (uuid) VALUES ($1)", "v1").
		AddQuery("INSERT INTO voucher_item (uuid) VALUES ($1), ($2)", "i1", "i2").
		Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.EqualValues(t, 1, tags[0].RowsAffected())
	assert.EqualValues(t, 2, tags[1].RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_RollsBackWhenAStatementFails(t *testing.T) {
	mock := newMockPool(t)
	fkErr := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "voucher_item_voucher_uuid_fkey"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO voucher (uuid)")).
		WithArgs("v1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO voucher_item (uuid)")).
		WithArgs("i1").
		WillReturnError(fkErr)
	mock.ExpectRollback()

	tags, err := NewTransactionExecutor(mock).BeginTransaction().
		AddQuery("INSERT INTO voucher (uuid) VALUES ($1)", "v1").
		AddQuery("INSERT INTO voucher_item (uuid) VALUES ($1)", "i1").
		Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, tags)
	assert.ErrorIs(t, err, apperrors.ErrConstraint)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgForeignKeyViolation, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_BeginFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin().WillReturnError(context.DeadlineExceeded)

	_, err := NewTransactionExecutor(mock).BeginTransaction().
		AddQuery("SELECT 1").
		Execute(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_CommitFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM inventory").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	_, err := NewTransactionExecutor(mock).BeginTransaction().
		AddQuery("DELETE FROM inventory").
		Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_EmptyIsNoOp(t *testing.T) {
	mock := newMockPool(t)

	tags, err := NewTransactionExecutor(mock).BeginTransaction().Execute(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_BuildErrorSkipsDatabase(t *testing.T) {
	mock := newMockPool(t)

	txn := NewTransactionExecutor(mock).BeginTransaction().
		AddStatement(psql.Insert("voucher").Columns("uuid")).
		AddQuery("SELECT 1")

	_, err := txn.Execute(context.Background())
	assert.Error(t, err)
	assert.Len(t, txn.Statements(), 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_AddStatementRendersDollarPlaceholders(t *testing.T) {
	txn := NewTransactionExecutor(nil).BeginTransaction().
		AddStatement(psql.Insert("voucher_item").Columns("uuid", "debit").Values("a", 1).Values("b", 2)).
		AddStatement(sq.Expr("SELECT 1"))

	stmts := txn.Statements()
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO voucher_item (uuid,debit) VALUES ($1,$2),($3,$4)", stmts[0].SQL)
	assert.Equal(t, []any{"a", 1, "b", 2}, stmts[0].Args)
}

type panickingTx struct {
	pgx.Tx
	rolledBack bool
}

func (tx *panickingTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("driver exploded")
}

func (tx *panickingTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx pgx.Tx
}

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

func TestTransaction_PanicRollsBackAndRepanics(t *testing.T) {
	tx := &panickingTx{}
	txn := NewTransactionExecutor(fakeBeginner{tx: tx}).BeginTransaction().AddQuery("SELECT 1")

	assert.PanicsWithValue(t, "driver exploded", func() {
		_, _ = txn.Execute(context.Background())
	})
	assert.True(t, tx.rolledBack)
}
