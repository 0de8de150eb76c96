package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gokatarajesh/trivia-api/internal/config"
)

// Conn bundles the pgx pool with the gorm handle built on top of it.
type Conn struct {
	Pool *pgxpool.Pool
	SQL  *sql.DB
	Gorm *gorm.DB
}

// Open connects to Postgres through a pgx pool and layers gorm on the same pool.
func Open(ctx context.Context, pg config.Postgres, dbCfg config.Database, logger zerolog.Logger) (*Conn, error) {
	poolCfg, err := pgxpool.ParseConfig(pg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if pg.MaxConns > 0 {
		poolCfg.MaxConns = int32(pg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 NewGormLogger(logger, dbCfg.SlowQueryThreshold),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &Conn{Pool: pool, SQL: sqlDB, Gorm: gormDB}, nil
}

// Ping checks the pool can reach the server.
func (c *Conn) Ping(ctx context.Context) error {
	return c.Pool.Ping(ctx)
}

// Close releases the sql.DB wrapper and then the pool underneath it.
func (c *Conn) Close() {
	_ = c.SQL.Close()
	c.Pool.Close()
}
