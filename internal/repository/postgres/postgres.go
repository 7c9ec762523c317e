package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same repository code
// runs standalone or inside an atomic unit.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.WalletRepository
	repository.LedgerRepository
	repository.TopUpRepository
	repository.JobRepository
	repository.ProviderRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		WalletRepository:   NewWalletRepository(db),
		LedgerRepository:   NewLedgerRepository(db),
		TopUpRepository:    NewTopUpRepository(db),
		JobRepository:      NewJobRepository(db),
		ProviderRepository: NewProviderRepository(db),
	}
}

// InTx runs fn inside one database transaction. Every repository in the
// Repos handed to fn is bound to that transaction: either all writes commit
// or none do. Errors returned by fn abort the unit and propagate unchanged;
// begin/commit failures surface as ErrTransactionFailed.
func (s *Store) InTx(ctx context.Context, fn func(repository.Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	repos := repository.Repos{
		Wallets:   NewWalletRepository(tx),
		Ledger:    NewLedgerRepository(tx),
		TopUps:    NewTopUpRepository(tx),
		Jobs:      NewJobRepository(tx),
		Providers: NewProviderRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	return nil
}
