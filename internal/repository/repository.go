package repository

import (
	"context"

	"gradescan/internal/model"
)

// SubmissionRepository records processed uploads. Implementations hold no business logic.
type SubmissionRepository interface {
	// Create inserts a new submission row and returns the stored record.
	Create(ctx context.Context, s *model.Submission) (*model.Submission, error)

	// List returns a page of submissions, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Submission], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
