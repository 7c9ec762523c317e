package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type walletRepository struct {
	db DBTX
}

func NewWalletRepository(db DBTX) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetByProviderID(ctx context.Context, providerID int64) (*domain.Wallet, error) {
	query := `SELECT id, provider_id, balance_cents, status, updated_on FROM wallets WHERE provider_id = $1`
	return r.scanWallet(r.db.QueryRowContext(ctx, query, providerID))
}

func (r *walletRepository) GetByProviderIDForUpdate(ctx context.Context, providerID int64) (*domain.Wallet, error) {
	// Row lock: concurrent debits/credits on the same wallet queue up here
	// instead of computing the balance off stale reads.
	query := `SELECT id, provider_id, balance_cents, status, updated_on FROM wallets WHERE provider_id = $1 FOR UPDATE`
	return r.scanWallet(r.db.QueryRowContext(ctx, query, providerID))
}

func (r *walletRepository) scanWallet(row *sql.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(&w.ID, &w.ProviderID, &w.BalanceCents, &w.Status, &w.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *walletRepository) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET balance_cents = $1, status = $2, updated_on = $3 WHERE id = $4`
	now := time.Now()
	if _, err := r.db.ExecContext(ctx, query, w.BalanceCents, w.Status, now, w.ID); err != nil {
		return err
	}
	w.UpdatedOn = now
	return nil
}

func (r *walletRepository) List(ctx context.Context) ([]domain.Wallet, error) {
	query := `SELECT id, provider_id, balance_cents, status, updated_on FROM wallets ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.ProviderID, &w.BalanceCents, &w.Status, &w.UpdatedOn); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
