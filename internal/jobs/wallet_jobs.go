package jobs

import (
	"context"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/logger"
)

// ReconcileWallets walks every wallet, repairs status drift against the
// stored balance, and reports wallets whose balance disagrees with the sum
// of their ledger entries. Balance mismatches are never auto-corrected; the
// ledger is the record an operator investigates from.
func (jr *JobRunner) ReconcileWallets() {
	jr.runWithRecovery("ReconcileWallets", func() {
		ctx := context.Background()

		wallets, err := jr.store.WalletRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list wallets for reconciliation", "error", err)
			return
		}

		var corrected, mismatched int
		for i := range wallets {
			wallet := &wallets[i]

			if want := domain.StatusForBalance(wallet.BalanceCents); want != wallet.Status {
				wallet.Status = want
				if err := jr.store.WalletRepository.Update(ctx, wallet); err != nil {
					logger.Error("Failed to correct wallet status", "wallet_id", wallet.ID, "error", err)
					continue
				}
				corrected++
				logger.Info("Corrected wallet status", "wallet_id", wallet.ID, "provider_id", wallet.ProviderID, "status", want)
			}

			ledgerSum, err := jr.store.LedgerRepository.SumByWallet(ctx, wallet.ID)
			if err != nil {
				logger.Error("Failed to sum ledger entries", "wallet_id", wallet.ID, "error", err)
				continue
			}
			if ledgerSum != wallet.BalanceCents {
				mismatched++
				logger.Warn("wallet balance out of sync with ledger",
					"wallet_id", wallet.ID,
					"provider_id", wallet.ProviderID,
					"balance_cents", wallet.BalanceCents,
					"ledger_sum_cents", ledgerSum)
			}
		}

		logger.Info("Wallet reconciliation finished",
			"wallets", len(wallets),
			"statuses_corrected", corrected,
			"balance_mismatches", mismatched)
	})
}
