package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradescan/internal/config"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(config.UploadConfig{Dir: filepath.Join(t.TempDir(), "uploads")}, nil)
	require.NoError(t, err)
	return s
}

func TestNewLocalStore(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		s, err := NewLocalStore(config.UploadConfig{Dir: dir}, nil)
		require.NoError(t, err)

		info, err := os.Stat(s.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.True(t, filepath.IsAbs(s.Dir()))
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := NewLocalStore(config.UploadConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestLocalStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		s := newTestStore(t)

		doc, err := s.Save(ctx, strings.NewReader("%PDF-1.4"), "Midterm Sheet.pdf")
		require.NoError(t, err)

		assert.Equal(t, "Midterm Sheet.pdf", doc.OriginalName)
		assert.Equal(t, "Midterm_Sheet.pdf", doc.SafeName)
		assert.Equal(t, int64(8), doc.Size)
		assert.Equal(t, s.Dir(), filepath.Dir(doc.StoredPath))
		assert.Equal(t, doc.ID+"_Midterm_Sheet.pdf", filepath.Base(doc.StoredPath))

		data, err := os.ReadFile(doc.StoredPath)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
	})

	t.Run("traversal stays inside dir", func(t *testing.T) {
		s := newTestStore(t)

		doc, err := s.Save(ctx, strings.NewReader("x"), "../../../tmp/evil.pdf")
		require.NoError(t, err)
		assert.Equal(t, s.Dir(), filepath.Dir(doc.StoredPath))
	})

	t.Run("same name twice does not overwrite", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.Save(ctx, strings.NewReader("one"), "quiz.pdf")
		require.NoError(t, err)
		second, err := s.Save(ctx, strings.NewReader("two"), "quiz.pdf")
		require.NoError(t, err)

		assert.NotEqual(t, first.StoredPath, second.StoredPath)
		data, err := os.ReadFile(first.StoredPath)
		require.NoError(t, err)
		assert.Equal(t, "one", string(data))
	})

	t.Run("recreates removed directory", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, os.RemoveAll(s.Dir()))

		_, err := s.Save(ctx, strings.NewReader("x"), "a.pdf")
		assert.NoError(t, err)
	})

	t.Run("empty filename", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Save(ctx, strings.NewReader("x"), "  ")
		assert.ErrorIs(t, err, ErrFilenameRequired)
	})

	t.Run("nil reader", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Save(ctx, nil, "a.pdf")
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("read failure removes partial file", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Save(ctx, failingReader{}, "a.pdf")
		assert.ErrorIs(t, err, ErrStorage)

		entries, err := os.ReadDir(s.Dir())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := newTestStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Save(cctx, strings.NewReader("x"), "a.pdf")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Save(ctx, strings.NewReader("x"), "a.pdf")
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, doc.StoredPath))
	_, err = os.Stat(doc.StoredPath)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(ctx, doc.StoredPath), "missing file is not an error")

	outside := filepath.Join(filepath.Dir(s.Dir()), "outside.pdf")
	assert.ErrorIs(t, s.Remove(ctx, outside), ErrPathEscape)
	assert.ErrorIs(t, s.Remove(ctx, s.Dir()), ErrPathEscape)
}

func TestLocalStore_resolve(t *testing.T) {
	s := newTestStore(t)

	_, err := s.resolve("../x")
	assert.ErrorIs(t, err, ErrPathEscape)

	_, err = s.resolve(".")
	assert.ErrorIs(t, err, ErrPathEscape)

	p, err := s.resolve("ok.pdf")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "ok.pdf"), p)
}

func TestLocalStore_Check(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Check(context.Background()))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file is removed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Check(ctx), context.Canceled)
}
