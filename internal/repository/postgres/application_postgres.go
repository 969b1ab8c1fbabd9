package postgres

import (
	"context"
	"database/sql"

	"careers/internal/model"
	"careers/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

const applicationColumns = `id, application_id, fullname, age, graduation_year, experience, skills,
		cv_original_name, cv_stored_name, cv_size, cv_content_type, cv_path, submitted_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (*model.ApplicationSubmission, error) {
	var (
		a  model.ApplicationSubmission
		cv model.UploadedFile
	)
	if err := s.Scan(
		&a.ID,
		&a.ApplicationID,
		&a.FullName,
		&a.Age,
		&a.GraduationYear,
		&a.Experience,
		&a.Skills,
		&cv.OriginalName,
		&cv.StoredName,
		&cv.Size,
		&cv.ContentType,
		&cv.StoragePath,
		&a.SubmittedAt,
	); err != nil {
		return nil, err
	}
	cv.CreatedAt = a.SubmittedAt
	a.CV = &cv
	return &a, nil
}

// Create inserts a submission row and returns the stored record.
func (r *ApplicationPostgres) Create(ctx context.Context, app *model.ApplicationSubmission) (*model.ApplicationSubmission, error) {
	const q = `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + applicationColumns

	cv := app.CV
	if cv == nil {
		cv = &model.UploadedFile{}
	}
	row := r.db.QueryRowContext(ctx, q,
		app.ID,
		app.ApplicationID,
		app.FullName,
		app.Age,
		app.GraduationYear,
		app.Experience,
		app.Skills,
		cv.OriginalName,
		cv.StoredName,
		cv.Size,
		cv.ContentType,
		cv.StoragePath,
		app.SubmittedAt,
	)
	return scanApplication(row)
}

// List returns submissions using LIMIT/OFFSET pagination and a total count.
func (r *ApplicationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ApplicationSubmission], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + applicationColumns + `
		FROM applications
		ORDER BY submitted_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ApplicationSubmission, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ApplicationSubmission]{
		Items: items,
		Total: total,
	}, nil
}
