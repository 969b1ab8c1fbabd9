package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"careers/internal/model"
	"careers/internal/repository"
)

const uniqueViolation = "23505"

// SignupPostgres stores signup accounts. Uniqueness of the email is enforced
// by the uq_signup_accounts_email index, not by a read-then-write.
type SignupPostgres struct {
	db *sql.DB
}

func NewSignupPostgres(db *sql.DB) *SignupPostgres {
	return &SignupPostgres{db: db}
}

var _ repository.SignupRepository = (*SignupPostgres)(nil)

func (r *SignupPostgres) Create(ctx context.Context, acc *model.SignupAccount) (*model.SignupAccount, error) {
	const q = `
		INSERT INTO signup_accounts (id, fullname, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fullname, email, password_hash, created_at
	`
	var out model.SignupAccount
	err := r.db.QueryRowContext(ctx, q, acc.ID, acc.FullName, acc.Email, acc.PasswordHash, acc.CreatedAt).
		Scan(&out.ID, &out.FullName, &out.Email, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	return &out, nil
}
