package store_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock's
// pool implements it too, which keeps driver tests off a live database.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

// StoreRepository is the record store driver: favorites, history,
// comments and user profiles.
type StoreRepository struct {
	pool DBPool
}

func NewStoreRepository(pool DBPool) *StoreRepository {
	return &StoreRepository{pool: pool}
}
