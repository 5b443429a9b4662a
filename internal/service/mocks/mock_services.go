package mocks

import (
	"context"
	"io"

	"gradescan/internal/model"
	"gradescan/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Process(ctx context.Context, r io.Reader, filename string) (*model.ScoreRecord, error) {
	args := m.Called(ctx, r, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScoreRecord), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) List(ctx context.Context, limit, offset int) (*service.SubmissionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionListResult), args.Error(1)
}
