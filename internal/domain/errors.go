package domain

import "errors"

// Domain errors are grouped into categories so the HTTP layer can map them
// to status codes without string matching. The sentinels below are the only
// instances the services return; wrap with %w when adding context.

// ValidationError rejects bad input before any write happens.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// NotFoundError signals a missing provider, wallet or job.
type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

// BusinessError rejects an operation that violates a ledger rule. It always
// aborts the surrounding atomic unit.
type BusinessError struct{ msg string }

func (e *BusinessError) Error() string { return e.msg }

var (
	ErrInvalidAmount  = &ValidationError{"amount must be greater than zero"}
	ErrMissingContact = &ValidationError{"an email or phone number is required to identify the provider"}

	ErrProviderNotFound = &NotFoundError{"no provider registered with that contact"}
	ErrWalletNotFound   = &NotFoundError{"provider has no active wallet"}
	ErrJobNotFound      = &NotFoundError{"job not found"}

	ErrAlreadySettled      = &BusinessError{"job commission has already been settled"}
	ErrJobNotCompleted     = &BusinessError{"job must be completed before its commission can be settled"}
	ErrInsufficientBalance = &BusinessError{"balance must be greater than zero to settle a commission"}

	// ErrTransactionFailed wraps begin/commit failures of the underlying
	// store. Errors raised inside an atomic unit propagate unwrapped so
	// their category survives.
	ErrTransactionFailed = errors.New("ledger transaction failed")
)

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsBusinessRule(err error) bool {
	var b *BusinessError
	return errors.As(err, &b)
}
