package service

import (
	"context"

	"fixerhub-backend/internal/domain"
)

type WalletService interface {
	// TopUp credits a provider's wallet from an external payment and
	// returns the recorded top-up plus the new balance.
	TopUp(ctx context.Context, payerName, detail string, amountCents int64, email, phone, documentType, documentNumber string) (*domain.TopUp, int64, error)
	// SettleCommission debits the platform commission for a completed job,
	// at most once per job.
	SettleCommission(ctx context.Context, jobID int64) (*domain.Job, error)
	// GetWallet returns a provider's wallet, correcting any status drift
	// against the stored balance before returning.
	GetWallet(ctx context.Context, username string) (*domain.Wallet, error)
	// GetLedgerEntries lists a provider's balance movements, newest first.
	// Providers without a wallet get an empty list.
	GetLedgerEntries(ctx context.Context, username string) ([]domain.LedgerEntry, error)
	ListTopUps(ctx context.Context) ([]domain.TopUp, error)
}

type ProviderService interface {
	GetProvider(ctx context.Context, username string) (*domain.Provider, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ListProviderJobs(ctx context.Context, username string) ([]domain.Job, error)
}

// NotificationService delivers best-effort messages to providers. Failures
// are logged by callers and never roll back a committed operation.
type NotificationService interface {
	SendTopUpReceipt(ctx context.Context, email, name string, amountCents, newBalanceCents int64) error
	SendWalletBlockedNotice(ctx context.Context, email, name string, balanceCents int64) error
}
