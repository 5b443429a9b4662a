package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradescan/internal/config"
	"gradescan/internal/http/middleware"
	"gradescan/internal/logging"
	"gradescan/internal/pdftest"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func runRoot(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	var res map[string]any
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	}
	return res, err
}

func TestScoreCommand(t *testing.T) {
	t.Setenv("DB_HOST", "")

	t.Run("valid pdf", func(t *testing.T) {
		res, err := runRoot(t, "score", "--max-score", "20", writeFile(t, "chem_quiz.pdf", pdftest.Document(1)))

		require.NoError(t, err)
		assert.Equal(t, true, res["success"])
		data := res["data"].(map[string]any)
		assert.Equal(t, float64(20), data["max_score"])
		assert.True(t, strings.HasPrefix(data["test_name"].(string), "Science Quiz ("))
		assert.GreaterOrEqual(t, data["score"].(float64), float64(12))
	})

	t.Run("wrong extension", func(t *testing.T) {
		res, err := runRoot(t, "score", writeFile(t, "notes.txt", []byte("hello")))

		require.Error(t, err)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "Allowed file type is PDF (.pdf) only", res["message"])
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		res, err := runRoot(t, "score", writeFile(t, "broken.pdf", pdftest.Truncated()))

		require.Error(t, err)
		assert.Equal(t, false, res["success"])
		assert.Contains(t, res["message"], "It might be corrupt or empty.")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runRoot(t, "score", filepath.Join(t.TempDir(), "nope.pdf"))

		assert.Error(t, err)
	})

	t.Run("requires one argument", func(t *testing.T) {
		_, err := runRoot(t, "score")

		assert.Error(t, err)
	})
}

func TestNewApp(t *testing.T) {
	cfg := &config.AppConfig{
		Port: "0",
		Upload: config.UploadConfig{
			Dir:               t.TempDir(),
			AllowedExtensions: []string{"pdf"},
			MaxBytes:          1 << 20,
			Retention:         config.RetentionDelete,
		},
		Scoring: config.ScoringConfig{MaxScore: 50},
		CORS:    config.CORSConfig{AllowOrigins: "*"},
	}
	logger := logging.New(io.Discard, "error", nil)

	c, err := buildComponents(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer c.Close()
	assert.Nil(t, c.submissions)
	assert.Nil(t, c.pinger())

	app, err := newApp(cfg, c, logger, false)
	require.NoError(t, err)

	t.Run("cors and request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_student_dashboard", nil)
		req.Header.Set("Origin", "http://frontend.example")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("upload metrics exposed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/generate_timetable", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		b, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(b), "http_requests_total")
		assert.Contains(t, string(b), "http_request_duration_seconds")
	})

	t.Run("oversize body", func(t *testing.T) {
		srv, err := newApp(cfg, c, logger, false)
		require.NoError(t, err)
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		go func() { _ = srv.Listener(ln) }()
		defer func() { _ = srv.Shutdown() }()

		conn, err := net.Dial("tcp", ln.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		_, err = fmt.Fprintf(conn, "POST /upload_and_score HTTP/1.1\r\nHost: localhost\r\nContent-Type: application/octet-stream\r\nContent-Length: %d\r\n\r\n", cfg.Upload.MaxBytes*2)
		require.NoError(t, err)

		resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Message)
	})

	t.Run("swagger", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestBuildComponents_ArchiveNeedsMinIO(t *testing.T) {
	cfg := &config.AppConfig{
		Upload: config.UploadConfig{Dir: t.TempDir(), Retention: config.RetentionArchive},
	}

	_, err := buildComponents(context.Background(), cfg, logging.Nop())

	assert.ErrorContains(t, err, "init archive storage")
}
