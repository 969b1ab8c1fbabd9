package mocks

import (
	"context"

	"careers/internal/locale"
	"careers/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, l locale.Locale, in service.ApplicationInput) (*service.SubmissionAck, error) {
	args := m.Called(ctx, l, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionAck), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, limit, offset int) (*service.ApplicationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApplicationListResult), args.Error(1)
}

type MockSignupService struct {
	mock.Mock
}

func (m *MockSignupService) Register(ctx context.Context, l locale.Locale, in service.SignupInput) (*service.SignupAck, error) {
	args := m.Called(ctx, l, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignupAck), args.Error(1)
}
