package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gradescan/internal/config"
	"gradescan/internal/logging"
	"gradescan/internal/scoring"
	"gradescan/internal/service"
	"gradescan/internal/storage"
	"gradescan/internal/validator"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <file.pdf>",
		Short: "Run the upload pipeline on a local file and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE:  runScore,
	}
	f := cmd.Flags()
	f.Int("max-score", 0, "Maximum score (overrides SCORING_MAX_SCORE)")
	f.String("upload-dir", "", "Working directory for the stored copy (defaults to a temp dir)")
	return cmd
}

// scoreOutput mirrors the HTTP response envelope.
type scoreOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetInt("max-score"); v > 0 {
		cfg.Scoring.MaxScore = v
	}

	dir, _ := cmd.Flags().GetString("upload-dir")
	if dir == "" {
		tmp, err := os.MkdirTemp("", "gradescan-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	cfg.Upload.Dir = dir

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, logging.Location(cfg.Log.TimeZone))

	store, err := storage.NewLocalStore(cfg.Upload, logger)
	if err != nil {
		return err
	}
	svc := service.NewUploadService(
		store,
		validator.NewPDFValidator(cfg.Upload.AllowedExtensions, logger),
		scoring.NewRandomSimulator(cfg.Scoring.MaxScore, nil),
		service.WithLogger(logger),
	)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	out := scoreOutput{Success: true}
	rec, err := svc.Process(cmd.Context(), f, filepath.Base(args[0]))
	if err != nil {
		out = scoreOutput{Success: false, Message: service.MessageOf(err)}
	} else {
		out.Data = rec
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(out); encErr != nil {
		return encErr
	}
	if err != nil {
		return fmt.Errorf("%s: %s", service.KindOf(err), service.MessageOf(err))
	}
	return nil
}
