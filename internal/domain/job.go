package domain

import "time"

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Job is a unit of work performed by a provider. SettledOn doubles as the
// idempotency guard for commission settlement: nil means the platform has
// not charged its commission yet.
type Job struct {
	ID          int64      `json:"id"`
	ProviderID  int64      `json:"provider_id"`
	Description string     `json:"description"`
	TotalCents  int64      `json:"total_cents"`
	Status      JobStatus  `json:"status"`
	SettledOn   *time.Time `json:"settled_on,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
}
