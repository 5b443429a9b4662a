package postgres

import (
	"context"
	"database/sql"

	"gradescan/internal/model"
	"gradescan/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

const submissionColumns = `id, original_name, stored_name, size, status, reason, created_at`

// Create inserts a new submission row and returns the stored record.
func (r *SubmissionPostgres) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	const q = `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + submissionColumns

	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.OriginalName,
		s.StoredName,
		s.Size,
		s.Status,
		s.Reason,
		s.CreatedAt,
	)
	out, err := scanSubmission(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns submissions using LIMIT/OFFSET pagination and a total count.
func (r *SubmissionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Submission], error) {
	const qCount = `SELECT COUNT(*) FROM submissions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + submissionColumns + `
		FROM submissions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Submission]{
		Items: items,
		Total: total,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*model.Submission, error) {
	var s model.Submission
	if err := row.Scan(
		&s.ID,
		&s.OriginalName,
		&s.StoredName,
		&s.Size,
		&s.Status,
		&s.Reason,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
