package model

import "time"

// UploadedDocument is an answer sheet persisted by the document store.
// OriginalName is client supplied and untrusted; StoredPath always lives inside the upload directory.
type UploadedDocument struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	SafeName     string    `json:"safe_name"`
	StoredPath   string    `json:"stored_path"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidationOutcome is the result of checking a stored document.
// Reason is only set when Acceptable is false.
type ValidationOutcome struct {
	Acceptable bool   `json:"acceptable"`
	Reason     string `json:"reason,omitempty"`
	Pages      int    `json:"pages"`
}

// Accept returns an acceptable outcome for a document with the given page count.
func Accept(pages int) ValidationOutcome {
	return ValidationOutcome{Acceptable: true, Pages: pages}
}

// Reject returns an unacceptable outcome with a human readable reason.
func Reject(reason string) ValidationOutcome {
	return ValidationOutcome{Reason: reason}
}

// ScoreRecord is the simulated result for one answer sheet. It is built per request and never stored.
type ScoreRecord struct {
	TestName string `json:"test_name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}
