package pgsql

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB       DB
	Executor *TransactionExecutor
}

func newBaseRepository(db DB) BaseRepository {
	return BaseRepository{DB: db, Executor: NewTransactionExecutor(db)}
}
