package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/logger"
	"fixerhub-backend/internal/repository"
	"fixerhub-backend/internal/utils"

	"github.com/shopspring/decimal"
)

type walletService struct {
	txr       repository.TxRunner
	wallets   repository.WalletRepository
	ledger    repository.LedgerRepository
	topUps    repository.TopUpRepository
	providers repository.ProviderRepository
	notifier  NotificationService
	rate      decimal.Decimal
}

func NewWalletService(
	txr repository.TxRunner,
	wallets repository.WalletRepository,
	ledger repository.LedgerRepository,
	topUps repository.TopUpRepository,
	providers repository.ProviderRepository,
	notifier NotificationService,
	commissionRate decimal.Decimal,
) WalletService {
	return &walletService{
		txr:       txr,
		wallets:   wallets,
		ledger:    ledger,
		topUps:    topUps,
		providers: providers,
		notifier:  notifier,
		rate:      commissionRate,
	}
}

func (s *walletService) TopUp(ctx context.Context, payerName, detail string, amountCents int64, email, phone, documentType, documentNumber string) (*domain.TopUp, int64, error) {
	topUp, err := domain.NewTopUp(payerName, detail, amountCents, email, phone, documentType, documentNumber)
	if err != nil {
		return nil, 0, err
	}

	var (
		provider   *domain.Provider
		newBalance int64
	)
	err = s.txr.InTx(ctx, func(repos repository.Repos) error {
		var err error
		provider, err = repos.Providers.GetByContact(ctx, email, phone)
		if err != nil {
			return err
		}

		wallet, err := repos.Wallets.GetByProviderIDForUpdate(ctx, provider.ID)
		if err != nil {
			return err
		}

		if err := repos.TopUps.Create(ctx, topUp); err != nil {
			return err
		}

		prior := wallet.Status
		wallet.BalanceCents += topUp.AmountCents
		wallet.Status = domain.StatusForBalance(wallet.BalanceCents)
		if err := repos.Wallets.Update(ctx, wallet); err != nil {
			return err
		}
		if prior == domain.WalletStatusBlocked && wallet.Status == domain.WalletStatusActive {
			logger.Info("wallet reactivated by top-up", "provider_id", provider.ID, "balance_cents", wallet.BalanceCents)
		}

		entry := &domain.LedgerEntry{
			WalletID:    wallet.ID,
			SourceID:    topUp.ID,
			Kind:        domain.EntryKindCredit,
			AmountCents: topUp.AmountCents,
			Description: fmt.Sprintf("Balance top-up: %s", topUp.Detail),
			Channel:     domain.PaymentChannelExternalGateway,
		}
		if err := repos.Ledger.CreateEntry(ctx, entry); err != nil {
			return err
		}

		newBalance = wallet.BalanceCents
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	logger.Info("top-up committed", "provider_id", provider.ID, "amount_cents", topUp.AmountCents, "new_balance_cents", newBalance)

	// Best effort, after commit. A failed receipt never unwinds the top-up.
	if provider.Email != "" {
		if err := s.notifier.SendTopUpReceipt(ctx, provider.Email, provider.Name, topUp.AmountCents, newBalance); err != nil {
			logger.Warn("failed to send top-up receipt", "provider_id", provider.ID, "error", err)
		}
	}

	return topUp, newBalance, nil
}

func (s *walletService) SettleCommission(ctx context.Context, jobID int64) (*domain.Job, error) {
	var (
		job          *domain.Job
		blocked      bool
		balanceAfter int64
	)
	err := s.txr.InTx(ctx, func(repos repository.Repos) error {
		var err error
		job, err = repos.Jobs.GetByIDForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		if job.SettledOn != nil {
			return domain.ErrAlreadySettled
		}
		if job.Status != domain.JobStatusCompleted {
			return domain.ErrJobNotCompleted
		}

		wallet, err := repos.Wallets.GetByProviderIDForUpdate(ctx, job.ProviderID)
		if err != nil {
			return err
		}
		// The guard is on the pre-debit balance only: a positive balance may
		// still be pushed negative by the commission. Intended policy, do
		// not tighten to balance < commission.
		if wallet.BalanceCents <= 0 {
			return domain.ErrInsufficientBalance
		}

		commission := utils.CommissionCents(job.TotalCents, s.rate)
		prior := wallet.Status
		wallet.BalanceCents -= commission
		wallet.Status = domain.StatusForBalance(wallet.BalanceCents)
		if err := repos.Wallets.Update(ctx, wallet); err != nil {
			return err
		}
		if prior == domain.WalletStatusActive && wallet.Status == domain.WalletStatusBlocked {
			blocked = true
			logger.Warn("wallet blocked by commission debit", "provider_id", job.ProviderID, "balance_cents", wallet.BalanceCents)
		}

		entry := &domain.LedgerEntry{
			WalletID:    wallet.ID,
			SourceID:    job.ID,
			Kind:        domain.EntryKindDebit,
			AmountCents: commission,
			Description: fmt.Sprintf("Commission (%s%%) for job: %s", utils.RatePercent(s.rate), utils.TruncateLabel(job.Description, 20)),
			Channel:     domain.PaymentChannelInternalBalance,
		}
		if err := repos.Ledger.CreateEntry(ctx, entry); err != nil {
			return err
		}

		now := time.Now()
		job.SettledOn = &now
		balanceAfter = wallet.BalanceCents
		return repos.Jobs.Update(ctx, job)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("commission settled", "job_id", job.ID, "provider_id", job.ProviderID, "balance_cents", balanceAfter)

	if blocked {
		if provider, err := s.providers.GetByID(ctx, job.ProviderID); err == nil && provider.Email != "" {
			if err := s.notifier.SendWalletBlockedNotice(ctx, provider.Email, provider.Name, balanceAfter); err != nil {
				logger.Warn("failed to send wallet blocked notice", "provider_id", job.ProviderID, "error", err)
			}
		}
	}

	return job, nil
}

func (s *walletService) GetWallet(ctx context.Context, username string) (*domain.Wallet, error) {
	provider, err := s.providers.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByProviderID(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	// Self-heal drift introduced by out-of-band balance edits.
	if want := domain.StatusForBalance(wallet.BalanceCents); want != wallet.Status {
		wallet.Status = want
		if err := s.wallets.Update(ctx, wallet); err != nil {
			return nil, err
		}
		logger.Info("wallet status corrected", "provider_id", provider.ID, "status", want)
	}
	return wallet, nil
}

func (s *walletService) GetLedgerEntries(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	provider, err := s.providers.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByProviderID(ctx, provider.ID)
	if errors.Is(err, domain.ErrWalletNotFound) {
		return []domain.LedgerEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.ledger.ListByWallet(ctx, wallet.ID)
}

func (s *walletService) ListTopUps(ctx context.Context) ([]domain.TopUp, error) {
	return s.topUps.List(ctx)
}
