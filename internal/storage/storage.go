package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"gradescan/internal/model"
)

// Package storage persists uploaded answer sheets.
// DocumentStore writes to a local directory; ObjectStore is an S3-compatible archive target.

var (
	ErrFilenameRequired = errors.New("filename is required")
	ErrReaderNil        = errors.New("reader is nil")
	ErrPathEscape       = errors.New("path escapes the upload directory")
	ErrStorage          = errors.New("storage failure")
)

// DocumentStore owns the on-disk copy of uploaded documents.
type DocumentStore interface {
	// Save writes r under a sanitized, collision-free name derived from clientFilename.
	Save(ctx context.Context, r io.Reader, clientFilename string) (*model.UploadedDocument, error)
	// Remove deletes a previously saved file. Missing files are not an error.
	Remove(ctx context.Context, storedPath string) error
	// Dir returns the absolute upload directory.
	Dir() string
	// Check reports whether the upload directory accepts new files.
	Check(ctx context.Context) error
}

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// ObjectStore is an S3-compatible object storage client used to archive answer sheets.
type ObjectStore interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
