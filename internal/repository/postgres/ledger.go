package postgres

import (
	"context"
	"time"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type ledgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (wallet_id, source_id, kind, amount_cents, description, payment_channel, recorded_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, e.WalletID, e.SourceID, e.Kind, e.AmountCents, e.Description, e.Channel, now).Scan(&e.ID)
	if err != nil {
		return err
	}
	e.RecordedOn = now
	return nil
}

func (r *ledgerRepository) ListByWallet(ctx context.Context, walletID int64) ([]domain.LedgerEntry, error) {
	query := `SELECT id, wallet_id, source_id, kind, amount_cents, COALESCE(description, ''), payment_channel, recorded_on
	          FROM ledger_entries WHERE wallet_id = $1 ORDER BY recorded_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.WalletID, &e.SourceID, &e.Kind, &e.AmountCents, &e.Description, &e.Channel, &e.RecordedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ledgerRepository) SumByWallet(ctx context.Context, walletID int64) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(CASE WHEN kind = 'CREDIT' THEN amount_cents ELSE -amount_cents END), 0)
	          FROM ledger_entries WHERE wallet_id = $1`
	err := r.db.QueryRowContext(ctx, query, walletID).Scan(&sum)
	return sum, err
}
