package domain

import "time"

// Provider is a directory record for a service provider ("fixer"). Accounts
// are created and managed by the platform's user service; this backend only
// reads them to resolve wallets.
type Provider struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
