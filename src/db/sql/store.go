package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps the pool with the queries the handlers need. It is built once
// in main and passed explicitly; handlers depend on the narrow interfaces
// they declare, so tests can substitute fakes.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
