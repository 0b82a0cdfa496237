package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/ninebudget/ninebudget/internal/config"
	"github.com/ninebudget/ninebudget/internal/storage/account"
	"github.com/ninebudget/ninebudget/internal/storage/budget"
	"github.com/ninebudget/ninebudget/internal/storage/category"
	"github.com/ninebudget/ninebudget/internal/storage/transaction"
)

type Storage struct {
	sqlDB        *sql.DB
	DB           bob.DB
	Accounts     account.IReader
	Budgets      budget.IReader
	Transactions transaction.IReader
	Categories   category.IReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return newStorageFromDB(db), nil
}

func newStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	reader := NewReader(bobDB)

	return &Storage{
		sqlDB:        db,
		DB:           bobDB,
		Accounts:     reader.Accounts,
		Budgets:      reader.Budgets,
		Transactions: reader.Transactions,
		Categories:   reader.Categories,
	}
}

// Write opens a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
