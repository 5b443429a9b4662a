package service

import (
	"context"

	"gradescan/internal/model"
	"gradescan/internal/repository"
)

// SubmissionListResult is the service-level DTO for paginated ledger rows.
type SubmissionListResult struct {
	Items []model.Submission `json:"items"`
	Total int                `json:"total"`
}

// SubmissionService exposes the upload ledger.
type SubmissionService interface {
	List(ctx context.Context, limit, offset int) (*SubmissionListResult, error)
}

type submissionService struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

// List returns a page of submissions. Limit defaults to 10 and is capped at 100.
func (s *submissionService) List(ctx context.Context, limit, offset int) (*SubmissionListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SubmissionListResult{Items: res.Items, Total: res.Total}, nil
}
