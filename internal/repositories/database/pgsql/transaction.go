package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Beginner starts database transactions.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionExecutor runs ordered statement lists as single all-or-nothing units.
type TransactionExecutor struct {
	db Beginner
}

// NewTransactionExecutor creates an executor over db.
func NewTransactionExecutor(db Beginner) *TransactionExecutor {
	return &TransactionExecutor{db: db}
}

// BeginTransaction returns an empty statement list. Nothing touches the
// database until Execute is called.
func (e *TransactionExecutor) BeginTransaction() *Transaction {
	return &Transaction{db: e.db}
}

// Statement is one parameterized statement queued in a Transaction.
type Statement struct {
	SQL  string
	Args []any
}

// Transaction accumulates statements for one operation. It is not safe for
// concurrent use.
type Transaction struct {
	db         Beginner
	statements []Statement
	err        error
}

// AddQuery queues a statement.
func (t *Transaction) AddQuery(sql string, args ...any) *Transaction {
	t.statements = append(t.statements, Statement{SQL: sql, Args: args})
	return t
}

// AddStatement renders a squirrel builder and queues it. A render error is
// reported by Execute.
func (t *Transaction) AddStatement(b sq.Sqlizer) *Transaction {
	if t.err != nil {
		return t
	}
	sql, args, err := b.ToSql()
	if err != nil {
		t.err = fmt.Errorf("build statement %d: %w", len(t.statements)+1, err)
		return t
	}
	return t.AddQuery(sql, args...)
}

// Statements returns a copy of the queued statements.
func (t *Transaction) Statements() []Statement {
	return append([]Statement(nil), t.statements...)
}

// Execute runs the queued statements in order inside one database
// transaction and commits. On any failure, including a panic, the
// transaction is rolled back and no statement takes effect. An empty
// transaction succeeds without contacting the database.
func (t *Transaction) Execute(ctx context.Context) (results []pgconn.CommandTag, err error) {
	if t.err != nil {
		return nil, t.err
	}
	if len(t.statements) == 0 {
		return nil, nil
	}

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return nil, mapError(err, "begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
	}()

	results = make([]pgconn.CommandTag, 0, len(t.statements))
	for i, stmt := range t.statements {
		tag, err := tx.Exec(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			rollback(ctx, tx)
			return nil, mapError(err, fmt.Sprintf("execute statement %d of %d", i+1, len(t.statements)))
		}
		results = append(results, tag)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError(err, "commit transaction")
	}
	return results, nil
}

// rollback ignores the caller's cancellation so a timed-out request still
// releases its transaction.
func rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(context.WithoutCancel(ctx))
}
