package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gradescan/internal/config"
	"gradescan/internal/logging"
	"gradescan/internal/model"
	"gradescan/internal/repository"
	"gradescan/internal/scoring"
	"gradescan/internal/storage"
	"gradescan/internal/validator"
)

const archivePrefix = "answer-sheets/"

// UploadService runs the answer sheet pipeline: store, validate, score.
type UploadService interface {
	// Process consumes r as the content of filename and returns a simulated score.
	// Every failure is a *Error whose Kind tells the caller how to respond.
	Process(ctx context.Context, r io.Reader, filename string) (*model.ScoreRecord, error)
}

// Option configures an upload service.
type Option func(*uploadService)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *uploadService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRetention sets what happens to the stored file once the request is answered.
// The archive policy needs a non-nil object store; without one it degrades to keep.
func WithRetention(policy string, archive storage.ObjectStore) Option {
	return func(s *uploadService) {
		s.retention = policy
		s.archive = archive
	}
}

// WithLedger records every stored upload in repo.
func WithLedger(repo repository.SubmissionRepository) Option {
	return func(s *uploadService) {
		s.ledger = repo
	}
}

// WithMetrics counts outcomes.
func WithMetrics(m *Metrics) Option {
	return func(s *uploadService) {
		s.metrics = m
	}
}

type uploadService struct {
	store     storage.DocumentStore
	validator validator.DocumentValidator
	simulator scoring.Simulator

	retention string
	archive   storage.ObjectStore
	ledger    repository.SubmissionRepository
	metrics   *Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewUploadService wires the pipeline stages together.
func NewUploadService(store storage.DocumentStore, v validator.DocumentValidator, sim scoring.Simulator, opts ...Option) UploadService {
	s := &uploadService{
		store:     store,
		validator: v,
		simulator: sim,
		retention: config.RetentionKeep,
		logger:    logging.Nop(),
		tracer:    otel.Tracer("gradescan/internal/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *uploadService) Process(ctx context.Context, r io.Reader, filename string) (rec *model.ScoreRecord, err error) {
	ctx, span := s.tracer.Start(ctx, "upload.process",
		trace.WithAttributes(attribute.String("upload.filename", filename)))
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("upload_panic", "filename", filename, "panic", fmt.Sprint(p))
			rec, err = nil, internal(p)
		}
		s.metrics.observe(err)
		if err != nil {
			span.SetAttributes(attribute.String("upload.failure_kind", KindOf(err).String()))
			span.RecordError(err)
			span.SetStatus(codes.Error, MessageOf(err))
		}
		span.End()
	}()

	// Received
	if strings.TrimSpace(filename) == "" {
		return nil, clientInput(MsgNoFileSelected)
	}
	if !s.validator.Allowed(filename) {
		return nil, clientInput(disallowedMessage(s.validator.AllowedExtensions()))
	}

	// Stored
	doc, err := s.store.Save(ctx, r, filename)
	if err != nil {
		if errors.Is(err, storage.ErrFilenameRequired) {
			return nil, clientInput(MsgNoFileSelected)
		}
		s.logger.Error("upload_store_failed", "filename", filename, "error", err.Error())
		return nil, storageFailure(err)
	}
	defer s.retain(ctx, doc)
	span.SetAttributes(attribute.String("upload.stored_name", filepath.Base(doc.StoredPath)))

	// Validated
	outcome := s.validator.Verify(ctx, doc.StoredPath)
	if !outcome.Acceptable {
		s.logger.Warn("upload_rejected", "stored_path", doc.StoredPath, "reason", outcome.Reason)
		s.record(ctx, doc, model.SubmissionRejected, outcome.Reason)
		return nil, formatFailure(outcome.Reason)
	}

	// Scored
	score := s.simulator.Score(ctx, doc)
	s.record(ctx, doc, model.SubmissionAccepted, "")

	s.logger.Info("upload_scored",
		"stored_path", doc.StoredPath,
		"pages", outcome.Pages,
		"test_name", score.TestName,
		"score", score.Score,
		"max_score", score.MaxScore,
	)
	return &score, nil
}

// retain applies the retention policy. Failures are logged; the response is already decided.
func (s *uploadService) retain(ctx context.Context, doc *model.UploadedDocument) {
	ctx = context.WithoutCancel(ctx)

	switch s.retention {
	case config.RetentionDelete:
		s.remove(ctx, doc)
	case config.RetentionArchive:
		if s.archive == nil {
			s.logger.Warn("upload_archive_unavailable", "stored_path", doc.StoredPath)
			return
		}
		if err := s.archiveDocument(ctx, doc); err != nil {
			s.logger.Error("upload_archive_failed", "stored_path", doc.StoredPath, "error", err.Error())
			return
		}
		s.remove(ctx, doc)
	}
}

func (s *uploadService) archiveDocument(ctx context.Context, doc *model.UploadedDocument) error {
	f, err := os.Open(doc.StoredPath)
	if err != nil {
		return fmt.Errorf("open stored file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat stored file: %w", err)
	}

	key := archivePrefix + filepath.Base(doc.StoredPath)
	_, err = s.archive.Put(ctx, key, f, storage.PutObjectOptions{
		Size:        st.Size(),
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"original-filename": doc.OriginalName,
		},
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *uploadService) remove(ctx context.Context, doc *model.UploadedDocument) {
	if err := s.store.Remove(ctx, doc.StoredPath); err != nil {
		s.logger.Error("upload_remove_failed", "stored_path", doc.StoredPath, "error", err.Error())
	}
}

// record writes a ledger row. A ledger outage never fails an upload.
func (s *uploadService) record(ctx context.Context, doc *model.UploadedDocument, status, reason string) {
	if s.ledger == nil {
		return
	}
	_, err := s.ledger.Create(ctx, &model.Submission{
		ID:           doc.ID,
		OriginalName: doc.OriginalName,
		StoredName:   filepath.Base(doc.StoredPath),
		Size:         doc.Size,
		Status:       status,
		Reason:       reason,
		CreatedAt:    doc.CreatedAt,
	})
	if err != nil {
		s.logger.Error("ledger_write_failed", "submission_id", doc.ID, "error", err.Error())
	}
}

// disallowedMessage names the accepted extensions.
func disallowedMessage(exts []string) string {
	if len(exts) == 1 && exts[0] == "pdf" {
		return "Allowed file type is PDF (.pdf) only"
	}
	dotted := make([]string, len(exts))
	for i, e := range exts {
		dotted[i] = "." + e
	}
	return "Allowed file types are " + strings.Join(dotted, ", ") + " only"
}
