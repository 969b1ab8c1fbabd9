package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"careers/internal/locale"
	"careers/internal/metrics"
	"careers/internal/model"
	"careers/internal/repository"
)

// ApplicationPath is where a new account continues.
const ApplicationPath = "/application"

// SignupInput is one submitted signup form.
type SignupInput struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupData echoes the account back without the password.
type SignupData struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// SignupAck is the success response of a signup.
type SignupAck struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	Data     SignupData `json:"data"`
	Redirect string     `json:"redirect"`
}

// SignupService registers accounts.
type SignupService interface {
	Register(ctx context.Context, l locale.Locale, in SignupInput) (*SignupAck, error)
}

// ValidateSignup checks name length, email format and password length.
// bcrypt reads at most 72 bytes, so longer passwords are refused.
func ValidateSignup(in SignupInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Required, validation.RuneLength(2, 100)),
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 72)),
	)
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for field, ferr := range verrs {
		out.add(field, ferr.Error())
	}
	return out.orNil()
}

// SignupDeps are the collaborators of the signup service.
type SignupDeps struct {
	Repo     repository.SignupRepository
	Metrics  *metrics.Intake
	Log      *zap.Logger
	Validate bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	Now        func() time.Time
}

type signupService struct {
	repo     repository.SignupRepository
	metrics  *metrics.Intake
	log      *zap.Logger
	validate bool
	cost     int
	now      func() time.Time
}

func NewSignupService(d SignupDeps) SignupService {
	s := &signupService{
		repo:     d.Repo,
		metrics:  d.Metrics,
		log:      d.Log,
		validate: d.Validate,
		cost:     d.BcryptCost,
		now:      d.Now,
	}
	if s.repo == nil {
		s.repo = repository.DiscardSignups{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *signupService) Register(ctx context.Context, l locale.Locale, in SignupInput) (*SignupAck, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if s.validate {
		if err := ValidateSignup(in); err != nil {
			s.metrics.Signup("invalid")
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			s.metrics.Signup("invalid")
			v := &ValidationError{}
			v.add("password", "the length must be no more than 72")
			return nil, v
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := &model.SignupAccount{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if _, err := s.repo.Create(ctx, acc); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.metrics.Signup("duplicate")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("save account: %w", err)
	}

	s.log.Info("signup_registered",
		zap.String("account_id", acc.ID),
		zap.String("fullname", acc.FullName),
		zap.String("email", acc.Email),
		zap.String("lang", l.Code),
	)
	s.metrics.Signup("created")

	return &SignupAck{
		Success:  true,
		Message:  locale.Message(l.Code, locale.MsgAccountCreated),
		Data:     SignupData{FullName: acc.FullName, Email: acc.Email},
		Redirect: ApplicationPath,
	}, nil
}
