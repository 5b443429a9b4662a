package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gradescan/internal/config"
	"gradescan/internal/logging"
	"gradescan/internal/model"
)

// LocalStore implements DocumentStore on a local directory.
// Every upload gets a fresh "<uuid>_<safe name>" so concurrent uploads of the same name never overwrite each other.
type LocalStore struct {
	dir    string
	logger *slog.Logger
}

var _ DocumentStore = (*LocalStore)(nil)

// NewLocalStore resolves the upload directory to an absolute path and creates it if missing.
func NewLocalStore(cfg config.UploadConfig, logger *slog.Logger) (*LocalStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	s := &LocalStore{dir: dir, logger: logger}
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the absolute upload directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save streams r to disk. A partially written file is removed before an error is returned.
func (s *LocalStore) Save(ctx context.Context, r io.Reader, clientFilename string) (*model.UploadedDocument, error) {
	if strings.TrimSpace(clientFilename) == "" {
		return nil, ErrFilenameRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	safe := SanitizeFilename(clientFilename)
	dst, err := s.resolve(id + "_" + safe)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: create file: %w", ErrStorage, err)
	}
	n, err := io.Copy(f, r)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("%w: write file: %w", ErrStorage, err)
	}

	s.logger.Debug("upload_stored", "stored_path", dst, "size", n)

	return &model.UploadedDocument{
		ID:           id,
		OriginalName: clientFilename,
		SafeName:     safe,
		StoredPath:   dst,
		Size:         n,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Remove deletes a stored file. Paths outside the upload directory are refused.
func (s *LocalStore) Remove(_ context.Context, storedPath string) error {
	rel, err := filepath.Rel(s.dir, filepath.Clean(storedPath))
	if err != nil {
		return ErrPathEscape
	}
	p, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove file: %w", ErrStorage, err)
	}
	return nil
}

// Check creates and removes a probe file in the upload directory.
func (s *LocalStore) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.CreateTemp(s.dir, ".health-*")
	if err != nil {
		return fmt.Errorf("%w: upload dir not writable: %w", ErrStorage, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func (s *LocalStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create upload dir: %w", ErrStorage, err)
	}
	return nil
}

// resolve joins name onto the upload directory and checks the result stays inside it.
func (s *LocalStore) resolve(name string) (string, error) {
	p := filepath.Join(s.dir, name)
	rel, err := filepath.Rel(s.dir, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", ErrPathEscape
	}
	return p, nil
}
