package runs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new run.
func (r *PGRepo) Create(ctx context.Context, run Run) error {
	const query = `
INSERT INTO runs (
    id,
    company,
    job_title,
    job_desc_key,
    resume_json_key,
    docx_key,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	status := run.Status
	if status == "" {
		status = StatusCompleted
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		run.ID,
		run.Company,
		run.JobTitle,
		run.JobDescKey,
		run.ResumeJSONKey,
		run.DocxKey,
		status,
		run.CreatedAt,
	)
	return err
}

// GetByID fetches a run by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Run, error) {
	const query = `
SELECT id, company, job_title, job_desc_key, resume_json_key, docx_key, status, created_at
FROM runs
WHERE id = $1
LIMIT 1`

	var run Run
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.Company,
		&run.JobTitle,
		&run.JobDescKey,
		&run.ResumeJSONKey,
		&run.DocxKey,
		&run.Status,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, err
	}
	return run, nil
}

// List returns runs, newest first, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Run, error) {
	const query = `
SELECT id, company, job_title, job_desc_key, resume_json_key, docx_key, status, created_at
FROM runs
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Company,
			&run.JobTitle,
			&run.JobDescKey,
			&run.ResumeJSONKey,
			&run.DocxKey,
			&run.Status,
			&run.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
