package service

import (
	"context"
	"fmt"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) GetByProviderID(ctx context.Context, providerID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) GetByProviderIDForUpdate(ctx context.Context, providerID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) Update(ctx context.Context, wallet *domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) List(ctx context.Context) ([]domain.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepo) ListByWallet(ctx context.Context, walletID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepo) SumByWallet(ctx context.Context, walletID int64) (int64, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTopUpRepo struct {
	mock.Mock
}

func (m *MockTopUpRepo) Create(ctx context.Context, topUp *domain.TopUp) error {
	args := m.Called(ctx, topUp)
	return args.Error(0)
}

func (m *MockTopUpRepo) List(ctx context.Context) ([]domain.TopUp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopUp), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepo) ListByProvider(ctx context.Context, providerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepo) GetByUsername(ctx context.Context, username string) (*domain.Provider, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepo) GetByContact(ctx context.Context, email, phone string) (*domain.Provider, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepo) List(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendTopUpReceipt(ctx context.Context, email, name string, amountCents, newBalanceCents int64) error {
	args := m.Called(ctx, email, name, amountCents, newBalanceCents)
	return args.Error(0)
}

func (m *MockNotifier) SendWalletBlockedNotice(ctx context.Context, email, name string, balanceCents int64) error {
	args := m.Called(ctx, email, name, balanceCents)
	return args.Error(0)
}

// fakeTxRunner runs the unit body against the supplied mock repositories.
// Rollback semantics are the database's job; here an error from fn simply
// propagates, which is all the service layer observes.
type fakeTxRunner struct {
	repos     repository.Repos
	beginErr  error
	commitErr error
}

func (f *fakeTxRunner) InTx(ctx context.Context, fn func(repository.Repos) error) error {
	if f.beginErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, f.beginErr)
	}
	if err := fn(f.repos); err != nil {
		return err
	}
	if f.commitErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, f.commitErr)
	}
	return nil
}
