package repository

import (
	"context"

	"fixerhub-backend/internal/domain"
)

type WalletRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.Wallet, error)
	// GetByProviderIDForUpdate locks the wallet row for the duration of the
	// surrounding transaction, serializing concurrent balance mutations.
	GetByProviderIDForUpdate(ctx context.Context, providerID int64) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
	List(ctx context.Context) ([]domain.Wallet, error)
}

type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListByWallet(ctx context.Context, walletID int64) ([]domain.LedgerEntry, error)
	// SumByWallet returns credits minus debits for a wallet.
	SumByWallet(ctx context.Context, walletID int64) (int64, error)
}

type TopUpRepository interface {
	Create(ctx context.Context, topUp *domain.TopUp) error
	List(ctx context.Context) ([]domain.TopUp, error)
}

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Job, error)
}

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	GetByUsername(ctx context.Context, username string) (*domain.Provider, error)
	// GetByContact resolves a provider by email or phone; either argument
	// may be empty, not both.
	GetByContact(ctx context.Context, email, phone string) (*domain.Provider, error)
	List(ctx context.Context) ([]domain.Provider, error)
}

// Repos bundles the repositories bound to one database handle. Inside
// TxRunner.InTx the bundle is bound to the transaction, so every access
// through it shares the atomic unit.
type Repos struct {
	Wallets   WalletRepository
	Ledger    LedgerRepository
	TopUps    TopUpRepository
	Jobs      JobRepository
	Providers ProviderRepository
}

// TxRunner executes fn as a single all-or-nothing unit. Any error returned
// by fn rolls back every write made through the supplied Repos before the
// error is handed back to the caller.
type TxRunner interface {
	InTx(ctx context.Context, fn func(Repos) error) error
}
