package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWalletServiceForTest(t *testing.T) (WalletService, *MockWalletRepo, *MockLedgerRepo, *MockTopUpRepo, *MockJobRepo, *MockProviderRepo, *MockNotifier) {
	t.Helper()
	walletRepo := new(MockWalletRepo)
	ledgerRepo := new(MockLedgerRepo)
	topUpRepo := new(MockTopUpRepo)
	jobRepo := new(MockJobRepo)
	providerRepo := new(MockProviderRepo)
	notifier := new(MockNotifier)

	txr := &fakeTxRunner{repos: repository.Repos{
		Wallets:   walletRepo,
		Ledger:    ledgerRepo,
		TopUps:    topUpRepo,
		Jobs:      jobRepo,
		Providers: providerRepo,
	}}
	svc := NewWalletService(txr, walletRepo, ledgerRepo, topUpRepo, providerRepo, notifier, decimal.RequireFromString("0.05"))
	return svc, walletRepo, ledgerRepo, topUpRepo, jobRepo, providerRepo, notifier
}

func TestWalletService_TopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("credits wallet and reactivates blocked status", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, topUpRepo, _, providerRepo, notifier := newWalletServiceForTest(t)

		provider := &domain.Provider{ID: 7, Username: "maria", Name: "Maria", Email: "maria@test.com"}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 0, Status: domain.WalletStatusBlocked}

		providerRepo.On("GetByContact", ctx, "maria@test.com", "").Return(provider, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)
		topUpRepo.On("Create", ctx, mock.MatchedBy(func(tu *domain.TopUp) bool {
			return tu.AmountCents == 50000 && tu.Reference != ""
		})).Return(nil)
		walletRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Wallet) bool {
			return w.BalanceCents == 50000 && w.Status == domain.WalletStatusActive
		})).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.WalletID == 3 &&
				e.Kind == domain.EntryKindCredit &&
				e.AmountCents == 50000 &&
				e.Channel == domain.PaymentChannelExternalGateway
		})).Return(nil)
		notifier.On("SendTopUpReceipt", ctx, "maria@test.com", "Maria", int64(50000), int64(50000)).Return(nil)

		topUp, newBalance, err := svc.TopUp(ctx, "Maria", "August recharge", 50000, "maria@test.com", "", "ID", "123")
		assert.NoError(t, err)
		assert.Equal(t, int64(50000), newBalance)
		assert.NotEmpty(t, topUp.Reference)

		walletRepo.AssertExpectations(t)
		ledgerRepo.AssertExpectations(t)
		topUpRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("rejects non-positive amounts before touching storage", func(t *testing.T) {
		svc, walletRepo, _, topUpRepo, _, providerRepo, _ := newWalletServiceForTest(t)

		_, _, err := svc.TopUp(ctx, "Maria", "bad", 0, "maria@test.com", "", "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.True(t, domain.IsValidation(err))

		_, _, err = svc.TopUp(ctx, "Maria", "bad", -100, "maria@test.com", "", "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		providerRepo.AssertNotCalled(t, "GetByContact", mock.Anything, mock.Anything, mock.Anything)
		walletRepo.AssertNotCalled(t, "GetByProviderIDForUpdate", mock.Anything, mock.Anything)
		topUpRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects top-ups without any contact reference", func(t *testing.T) {
		svc, _, _, _, _, providerRepo, _ := newWalletServiceForTest(t)

		_, _, err := svc.TopUp(ctx, "Maria", "no contact", 1000, "", "", "", "")
		assert.ErrorIs(t, err, domain.ErrMissingContact)
		providerRepo.AssertNotCalled(t, "GetByContact", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolves provider by phone when email is empty", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, topUpRepo, _, providerRepo, _ := newWalletServiceForTest(t)

		provider := &domain.Provider{ID: 9, Username: "jose", Name: "Jose"}
		wallet := &domain.Wallet{ID: 4, ProviderID: 9, BalanceCents: 2000, Status: domain.WalletStatusActive}

		providerRepo.On("GetByContact", ctx, "", "+59170000000").Return(provider, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(9)).Return(wallet, nil)
		topUpRepo.On("Create", ctx, mock.Anything).Return(nil)
		walletRepo.On("Update", ctx, mock.Anything).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.Anything).Return(nil)

		_, newBalance, err := svc.TopUp(ctx, "Jose", "cash deposit", 3000, "", "+59170000000", "", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(5000), newBalance)
		providerRepo.AssertExpectations(t)
	})

	t.Run("unknown contact aborts the unit", func(t *testing.T) {
		svc, walletRepo, _, topUpRepo, _, providerRepo, notifier := newWalletServiceForTest(t)

		providerRepo.On("GetByContact", ctx, "ghost@test.com", "").Return(nil, domain.ErrProviderNotFound)

		_, _, err := svc.TopUp(ctx, "Ghost", "who", 1000, "ghost@test.com", "", "", "")
		assert.ErrorIs(t, err, domain.ErrProviderNotFound)
		assert.True(t, domain.IsNotFound(err))

		walletRepo.AssertNotCalled(t, "GetByProviderIDForUpdate", mock.Anything, mock.Anything)
		topUpRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "SendTopUpReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger write failure aborts the unit without a receipt", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, topUpRepo, _, providerRepo, notifier := newWalletServiceForTest(t)

		provider := &domain.Provider{ID: 7, Name: "Maria", Email: "maria@test.com"}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 100, Status: domain.WalletStatusActive}
		boom := errors.New("disk full")

		providerRepo.On("GetByContact", ctx, "maria@test.com", "").Return(provider, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)
		topUpRepo.On("Create", ctx, mock.Anything).Return(nil)
		walletRepo.On("Update", ctx, mock.Anything).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.Anything).Return(boom)

		_, _, err := svc.TopUp(ctx, "Maria", "recharge", 1000, "maria@test.com", "", "", "")
		assert.ErrorIs(t, err, boom)
		notifier.AssertNotCalled(t, "SendTopUpReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("receipt failure does not fail the committed top-up", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, topUpRepo, _, providerRepo, notifier := newWalletServiceForTest(t)

		provider := &domain.Provider{ID: 7, Name: "Maria", Email: "maria@test.com"}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 0, Status: domain.WalletStatusBlocked}

		providerRepo.On("GetByContact", ctx, "maria@test.com", "").Return(provider, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)
		topUpRepo.On("Create", ctx, mock.Anything).Return(nil)
		walletRepo.On("Update", ctx, mock.Anything).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.Anything).Return(nil)
		notifier.On("SendTopUpReceipt", ctx, "maria@test.com", "Maria", int64(1000), int64(1000)).Return(errors.New("sendgrid down"))

		_, newBalance, err := svc.TopUp(ctx, "Maria", "recharge", 1000, "maria@test.com", "", "", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), newBalance)
	})
}

func TestWalletService_SettleCommission(t *testing.T) {
	ctx := context.Background()

	t.Run("debits five percent of the job total once", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, jobRepo, _, _ := newWalletServiceForTest(t)

		job := &domain.Job{ID: 11, ProviderID: 7, Description: "Kitchen sink repair and pipe replacement", TotalCents: 20000, Status: domain.JobStatusCompleted}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 100000, Status: domain.WalletStatusActive}

		jobRepo.On("GetByIDForUpdate", ctx, int64(11)).Return(job, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)
		walletRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Wallet) bool {
			return w.BalanceCents == 99000 && w.Status == domain.WalletStatusActive
		})).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Kind == domain.EntryKindDebit &&
				e.AmountCents == 1000 &&
				e.SourceID == 11 &&
				e.Channel == domain.PaymentChannelInternalBalance &&
				e.Description == "Commission (5%) for job: Kitchen sink repair ..."
		})).Return(nil)
		jobRepo.On("Update", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.SettledOn != nil
		})).Return(nil)

		settled, err := svc.SettleCommission(ctx, 11)
		assert.NoError(t, err)
		assert.NotNil(t, settled.SettledOn)

		walletRepo.AssertExpectations(t)
		ledgerRepo.AssertExpectations(t)
		jobRepo.AssertExpectations(t)
	})

	t.Run("second settlement is rejected", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, jobRepo, _, _ := newWalletServiceForTest(t)

		now := time.Now()
		job := &domain.Job{ID: 11, ProviderID: 7, TotalCents: 20000, Status: domain.JobStatusCompleted, SettledOn: &now}
		jobRepo.On("GetByIDForUpdate", ctx, int64(11)).Return(job, nil)

		_, err := svc.SettleCommission(ctx, 11)
		assert.ErrorIs(t, err, domain.ErrAlreadySettled)
		assert.True(t, domain.IsBusinessRule(err))

		walletRepo.AssertNotCalled(t, "GetByProviderIDForUpdate", mock.Anything, mock.Anything)
		ledgerRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("only completed jobs settle", func(t *testing.T) {
		svc, walletRepo, _, _, jobRepo, _, _ := newWalletServiceForTest(t)

		job := &domain.Job{ID: 12, ProviderID: 7, TotalCents: 20000, Status: domain.JobStatusInProgress}
		jobRepo.On("GetByIDForUpdate", ctx, int64(12)).Return(job, nil)

		_, err := svc.SettleCommission(ctx, 12)
		assert.ErrorIs(t, err, domain.ErrJobNotCompleted)
		walletRepo.AssertNotCalled(t, "GetByProviderIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("empty wallet cannot be debited", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, jobRepo, _, _ := newWalletServiceForTest(t)

		job := &domain.Job{ID: 13, ProviderID: 7, TotalCents: 20000, Status: domain.JobStatusCompleted}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 0, Status: domain.WalletStatusBlocked}

		jobRepo.On("GetByIDForUpdate", ctx, int64(13)).Return(job, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)

		_, err := svc.SettleCommission(ctx, 13)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		ledgerRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("a small positive balance may be pushed negative and blocks the wallet", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, jobRepo, providerRepo, notifier := newWalletServiceForTest(t)

		job := &domain.Job{ID: 14, ProviderID: 7, Description: "Painting", TotalCents: 20000, Status: domain.JobStatusCompleted}
		wallet := &domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 500, Status: domain.WalletStatusActive}

		jobRepo.On("GetByIDForUpdate", ctx, int64(14)).Return(job, nil)
		walletRepo.On("GetByProviderIDForUpdate", ctx, int64(7)).Return(wallet, nil)
		walletRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Wallet) bool {
			return w.BalanceCents == -500 && w.Status == domain.WalletStatusBlocked
		})).Return(nil)
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Kind == domain.EntryKindDebit && e.AmountCents == 1000
		})).Return(nil)
		jobRepo.On("Update", ctx, mock.Anything).Return(nil)
		providerRepo.On("GetByID", ctx, int64(7)).Return(&domain.Provider{ID: 7, Name: "Maria", Email: "maria@test.com"}, nil)
		notifier.On("SendWalletBlockedNotice", ctx, "maria@test.com", "Maria", int64(-500)).Return(nil)

		settled, err := svc.SettleCommission(ctx, 14)
		assert.NoError(t, err)
		assert.NotNil(t, settled.SettledOn)

		walletRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("missing job surfaces as not found", func(t *testing.T) {
		svc, _, _, _, jobRepo, _, _ := newWalletServiceForTest(t)

		jobRepo.On("GetByIDForUpdate", ctx, int64(99)).Return(nil, domain.ErrJobNotFound)

		_, err := svc.SettleCommission(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})
}

func TestWalletService_GetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the wallet unchanged when status matches balance", func(t *testing.T) {
		svc, walletRepo, _, _, _, providerRepo, _ := newWalletServiceForTest(t)

		providerRepo.On("GetByUsername", ctx, "maria").Return(&domain.Provider{ID: 7, Username: "maria"}, nil)
		walletRepo.On("GetByProviderID", ctx, int64(7)).Return(&domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 5000, Status: domain.WalletStatusActive}, nil)

		wallet, err := svc.GetWallet(ctx, "maria")
		assert.NoError(t, err)
		assert.Equal(t, domain.WalletStatusActive, wallet.Status)
		walletRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("corrects status drift on read", func(t *testing.T) {
		svc, walletRepo, _, _, _, providerRepo, _ := newWalletServiceForTest(t)

		providerRepo.On("GetByUsername", ctx, "maria").Return(&domain.Provider{ID: 7, Username: "maria"}, nil)
		walletRepo.On("GetByProviderID", ctx, int64(7)).Return(&domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 0, Status: domain.WalletStatusActive}, nil)
		walletRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Wallet) bool {
			return w.Status == domain.WalletStatusBlocked
		})).Return(nil)

		wallet, err := svc.GetWallet(ctx, "maria")
		assert.NoError(t, err)
		assert.Equal(t, domain.WalletStatusBlocked, wallet.Status)
		walletRepo.AssertExpectations(t)
	})

	t.Run("unknown provider surfaces as not found", func(t *testing.T) {
		svc, _, _, _, _, providerRepo, _ := newWalletServiceForTest(t)

		providerRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrProviderNotFound)

		_, err := svc.GetWallet(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrProviderNotFound)
	})
}

func TestWalletService_GetLedgerEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("lists entries newest first", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, _, providerRepo, _ := newWalletServiceForTest(t)

		providerRepo.On("GetByUsername", ctx, "maria").Return(&domain.Provider{ID: 7, Username: "maria"}, nil)
		walletRepo.On("GetByProviderID", ctx, int64(7)).Return(&domain.Wallet{ID: 3, ProviderID: 7, BalanceCents: 4000}, nil)
		ledgerRepo.On("ListByWallet", ctx, int64(3)).Return([]domain.LedgerEntry{
			{ID: 2, Kind: domain.EntryKindDebit, AmountCents: 1000},
			{ID: 1, Kind: domain.EntryKindCredit, AmountCents: 5000},
		}, nil)

		entries, err := svc.GetLedgerEntries(ctx, "maria")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[0].ID)
	})

	t.Run("provider without a wallet gets an empty list", func(t *testing.T) {
		svc, walletRepo, ledgerRepo, _, _, providerRepo, _ := newWalletServiceForTest(t)

		providerRepo.On("GetByUsername", ctx, "newbie").Return(&domain.Provider{ID: 8, Username: "newbie"}, nil)
		walletRepo.On("GetByProviderID", ctx, int64(8)).Return(nil, domain.ErrWalletNotFound)

		entries, err := svc.GetLedgerEntries(ctx, "newbie")
		assert.NoError(t, err)
		assert.Empty(t, entries)
		ledgerRepo.AssertNotCalled(t, "ListByWallet", mock.Anything, mock.Anything)
	})
}

func TestWalletService_ListTopUps(t *testing.T) {
	svc, _, _, topUpRepo, _, _, _ := newWalletServiceForTest(t)
	ctx := context.Background()

	topUpRepo.On("List", ctx).Return([]domain.TopUp{{ID: 2}, {ID: 1}}, nil)

	topUps, err := svc.ListTopUps(ctx)
	assert.NoError(t, err)
	assert.Len(t, topUps, 2)
	assert.Equal(t, int64(2), topUps[0].ID)
}
