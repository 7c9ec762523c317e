package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopUp is the audit record of an external balance recharge. Exactly one
// CREDIT ledger entry references each top-up.
type TopUp struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	PayerName      string    `json:"payer_name"`
	Detail         string    `json:"detail"`
	AmountCents    int64     `json:"amount_cents"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
}

// NewTopUp validates the payer-supplied fields before any write happens.
// The amount must be positive and at least one contact reference is needed
// to resolve the provider.
func NewTopUp(payerName, detail string, amountCents int64, email, phone, documentType, documentNumber string) (*TopUp, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if email == "" && phone == "" {
		return nil, ErrMissingContact
	}
	return &TopUp{
		Reference:      uuid.New().String(),
		PayerName:      payerName,
		Detail:         detail,
		AmountCents:    amountCents,
		Email:          email,
		Phone:          phone,
		DocumentType:   documentType,
		DocumentNumber: documentNumber,
	}, nil
}
