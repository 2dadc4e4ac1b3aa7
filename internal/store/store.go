// Package store executes parameterized statements against PostgreSQL and
// hands the results back as column-name keyed records.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is one result row keyed by column name.
type Record = map[string]any

type Result struct {
	Rows     []Record
	RowCount int64
}

// Handle is the only way the services reach the database.
type Handle interface {
	// Execute runs statement with the positional args bound to $1..$n and
	// returns every row it produced together with the affected-row count.
	//
	// Any failure is returned as *Error.
	Execute(ctx context.Context, statement string, args ...any) (*Result, error)

	Ping(ctx context.Context) error
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresHandle struct {
	querier Querier
	ping    func(ctx context.Context) error
}

func NewPostgres(pool *pgxpool.Pool) Handle {
	return New(pool, pool.Ping)
}

func New(querier Querier, ping func(ctx context.Context) error) Handle {
	return &postgresHandle{
		querier: querier,
		ping:    ping,
	}
}

func (h *postgresHandle) Execute(ctx context.Context, statement string, args ...any) (*Result, error) {
	rows, err := h.querier.Query(ctx, statement, args...)
	if err != nil {
		return nil, newError("query", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, newError("collect rows", err)
	}
	if records == nil {
		records = []Record{}
	}

	return &Result{
		Rows:     records,
		RowCount: rows.CommandTag().RowsAffected(),
	}, nil
}

func (h *postgresHandle) Ping(ctx context.Context) error {
	err := h.ping(ctx)
	if err != nil {
		return newError("ping", err)
	}
	return nil
}
