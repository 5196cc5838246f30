package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the pool against the managed Postgres instance. The pool is
// created once at process start and injected into the store; there is no
// other client to the external service.
func Connect(url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
