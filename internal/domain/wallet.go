package domain

import "time"

type WalletStatus string

const (
	WalletStatusActive  WalletStatus = "ACTIVE"
	WalletStatusBlocked WalletStatus = "BLOCKED"
)

// Wallet holds a provider's prepaid balance. Status is a projection of the
// balance and must be recomputed with StatusForBalance after every balance
// change; it is never maintained independently.
type Wallet struct {
	ID           int64        `json:"id"`
	ProviderID   int64        `json:"provider_id"`
	BalanceCents int64        `json:"balance_cents"`
	Status       WalletStatus `json:"status"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

// StatusForBalance derives the operational status from a balance. A wallet
// with no funds (or a negative balance) is blocked.
func StatusForBalance(balanceCents int64) WalletStatus {
	if balanceCents > 0 {
		return WalletStatusActive
	}
	return WalletStatusBlocked
}
