package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthState describes the connection state of the pool. Request handlers
// receive an explicit *DB handle; there is no process-wide connected flag.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthConnected
	HealthUnreachable
)

func (s HealthState) String() string {
	switch s {
	case HealthConnected:
		return "connected"
	case HealthUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

// Health pings the pool and reports a typed state.
func (db *DB) Health(ctx context.Context) HealthState {
	if db == nil || db.Pool == nil {
		return HealthUnknown
	}
	if err := db.Ping(ctx); err != nil {
		return HealthUnreachable
	}
	return HealthConnected
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
