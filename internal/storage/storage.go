package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Storage is the read side of the database plus the entry point for
// transactional writes.
type Storage struct {
	DB         *sql.DB
	Expenses   sqlconfig.IExpenseTable
	Categories sqlconfig.ICategoryTable
	Users      sqlconfig.IUserTable

	bobDB bob.DB
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return NewStorage(db), nil
}

func NewStorage(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)

	return &Storage{
		DB:         db,
		Expenses:   sqlconfig.NewExpensesTable(bobDB),
		Categories: sqlconfig.NewCategoriesTable(bobDB),
		Users:      sqlconfig.NewUsersTable(bobDB),
		bobDB:      bobDB,
	}
}

// Write begins a transaction and returns tables bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

// Ping reports whether the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
