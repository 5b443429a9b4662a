package mocks

import (
	"context"
	"io"

	"gradescan/internal/model"
	"gradescan/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, r io.Reader, clientFilename string) (*model.UploadedDocument, error) {
	args := m.Called(ctx, r, clientFilename)
	if f, ok := args.Get(0).(func(context.Context, io.Reader, string) *model.UploadedDocument); ok {
		return f(ctx, r, clientFilename), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadedDocument), args.Error(1)
}

func (m *MockDocumentStore) Remove(ctx context.Context, storedPath string) error {
	args := m.Called(ctx, storedPath)
	return args.Error(0)
}

func (m *MockDocumentStore) Dir() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDocumentStore) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, storage.PutObjectOptions) storage.ObjectInfo); ok {
		return f(ctx, key, r, opt), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
