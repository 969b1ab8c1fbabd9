// Package repository contains data access abstractions for submissions and
// signups. Implementations live in subpackages (postgres, redis); the Discard
// types are the default when no backend is configured.
package repository

import (
	"context"
	"errors"

	"careers/internal/model"
)

// ErrDuplicateEmail is returned by SignupRepository.Create when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// ApplicationRepository persists accepted job applications.
// No business logic here, strictly persistence operations.
type ApplicationRepository interface {
	// Create stores a submission and returns the stored record.
	Create(ctx context.Context, app *model.ApplicationSubmission) (*model.ApplicationSubmission, error)

	// List returns a page of submissions, newest first, and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ApplicationSubmission], error)
}

// SignupRepository persists signup accounts.
type SignupRepository interface {
	// Create stores an account. Emails compare case-insensitively; a taken
	// email yields ErrDuplicateEmail.
	Create(ctx context.Context, acc *model.SignupAccount) (*model.SignupAccount, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// DiscardApplications accepts every submission and remembers nothing, so
// the intake only logs. List is always empty.
type DiscardApplications struct{}

// DiscardSignups accepts every account; no email is ever reported taken.
type DiscardSignups struct{}

var (
	_ ApplicationRepository = DiscardApplications{}
	_ SignupRepository      = DiscardSignups{}
)

func (DiscardApplications) Create(_ context.Context, app *model.ApplicationSubmission) (*model.ApplicationSubmission, error) {
	return app, nil
}

func (DiscardApplications) List(context.Context, PageQuery) (*PageResult[model.ApplicationSubmission], error) {
	return &PageResult[model.ApplicationSubmission]{Items: []model.ApplicationSubmission{}}, nil
}

func (DiscardSignups) Create(_ context.Context, acc *model.SignupAccount) (*model.SignupAccount, error) {
	return acc, nil
}
