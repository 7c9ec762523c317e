package domain

import "time"

type EntryKind string

const (
	EntryKindCredit EntryKind = "CREDIT"
	EntryKindDebit  EntryKind = "DEBIT"
)

type PaymentChannel string

const (
	PaymentChannelExternalGateway PaymentChannel = "EXTERNAL_GATEWAY"
	PaymentChannelInternalBalance PaymentChannel = "INTERNAL_BALANCE"
)

// LedgerEntry is one immutable balance movement. Entries are append-only:
// the sum of credits minus debits for a wallet equals its balance.
type LedgerEntry struct {
	ID          int64          `json:"id"`
	WalletID    int64          `json:"wallet_id"`
	SourceID    int64          `json:"source_id"` // originating top-up or job
	Kind        EntryKind      `json:"kind"`
	AmountCents int64          `json:"amount_cents"` // always positive, direction carried by Kind
	Description string         `json:"description"`
	Channel     PaymentChannel `json:"payment_channel"`
	RecordedOn  time.Time      `json:"recorded_on"`
}
