package model

import "time"

const (
	SubmissionAccepted = "accepted"
	SubmissionRejected = "rejected"
)

// Submission is a ledger row describing one processed upload.
// It records what was received and whether it was accepted, never the score.
type Submission struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	StoredName   string    `json:"stored_name"`
	Size         int64     `json:"size"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
