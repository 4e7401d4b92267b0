// Package db is the PostgreSQL access layer for links.
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier lists every query the link table supports.
type Querier interface {
	NextLinkID(ctx context.Context) (int64, error)
	CreateLink(ctx context.Context, arg CreateLinkParams) (Link, error)
	ShortExists(ctx context.Context, short string) (bool, error)
	GetLinkByShort(ctx context.Context, short string) (Link, error)
	IncrementClicks(ctx context.Context, short string) (Link, error)
	ListRecentLinks(ctx context.Context, limit int32) ([]Link, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Store runs queries either directly on the pool or inside a transaction.
type Store struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx runs fn in a single transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including on panic.
func (s *Store) ExecTx(ctx context.Context, fn func(Querier) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(s.WithTx(tx))
	})
}

var _ Querier = (*Queries)(nil)
