package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// pingTimeout bounds the connectivity check at startup. A DSN pointing at an
// unreachable host fails the bootstrap instead of hanging it.
const pingTimeout = 5 * time.Second

// Postgres owns the gorm handle for the process. Repositories borrow DB and
// run their own transactions; Close tears down the underlying pool.
type Postgres struct {
	DB *gorm.DB
}

func Connect(dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}
	if err := ping(conn); err != nil {
		return nil, err
	}
	return &Postgres{DB: conn}, nil
}

func ping(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("resolve postgres sql db handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
