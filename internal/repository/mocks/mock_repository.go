package mocks

import (
	"context"

	"careers/internal/model"
	"careers/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *model.ApplicationSubmission) (*model.ApplicationSubmission, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ApplicationSubmission), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ApplicationSubmission], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ApplicationSubmission]), args.Error(1)
}

type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, acc *model.SignupAccount) (*model.SignupAccount, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignupAccount), args.Error(1)
}
