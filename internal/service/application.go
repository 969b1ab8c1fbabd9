package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careers/internal/events"
	"careers/internal/locale"
	"careers/internal/metrics"
	"careers/internal/model"
	"careers/internal/repository"
	"careers/internal/upload"
)

// TimestampLayout is ISO-8601 in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// CVFile is the file part of an application form.
type CVFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ApplicationInput is one submitted application form. Numeric fields are
// kept as the raw form strings and parsed during validation.
type ApplicationInput struct {
	FullName       string
	Age            string
	GraduationYear string
	Experience     string
	Skills         string
	CV             *CVFile
}

// ApplicationData echoes the accepted fields back to the applicant.
type ApplicationData struct {
	FullName       string `json:"fullname"`
	Age            int    `json:"age"`
	GraduationYear int    `json:"graduation_year"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	CVFileName     string `json:"cvFileName"`
	CVPath         string `json:"cvPath"`
}

// SubmissionAck is the success response of an application.
type SubmissionAck struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	Data          ApplicationData `json:"data"`
	ApplicationID string          `json:"applicationId"`
	Timestamp     string          `json:"timestamp"`
}

// ApplicationListResult is the service-level DTO for paginated submissions.
type ApplicationListResult struct {
	Items []model.ApplicationSubmission `json:"data"`
	Total int                           `json:"total"`
}

// ApplicationService handles job applications.
type ApplicationService interface {
	// Submit validates the form, stores the CV and hands the submission to
	// the repository. No identifier is minted unless every check passed.
	Submit(ctx context.Context, l locale.Locale, in ApplicationInput) (*SubmissionAck, error)

	// List returns submissions using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ApplicationListResult, error)
}

// ApplicationDeps are the collaborators of the application service.
// Repo, Events and Metrics may be nil.
type ApplicationDeps struct {
	Acceptor *upload.Acceptor
	Repo     repository.ApplicationRepository
	Events   events.Publisher
	Metrics  *metrics.Intake
	Log      *zap.Logger
	Now      func() time.Time
}

type applicationService struct {
	acceptor *upload.Acceptor
	repo     repository.ApplicationRepository
	events   events.Publisher
	metrics  *metrics.Intake
	log      *zap.Logger
	now      func() time.Time
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(d ApplicationDeps) ApplicationService {
	s := &applicationService{
		acceptor: d.Acceptor,
		repo:     d.Repo,
		events:   d.Events,
		metrics:  d.Metrics,
		log:      d.Log,
		now:      d.Now,
	}
	if s.repo == nil {
		s.repo = repository.DiscardApplications{}
	}
	if s.events == nil {
		s.events = events.Nop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ApplicationID formats the human reference for a submission made at t:
// "APP-" and the last eight digits of its epoch milliseconds.
func ApplicationID(t time.Time) string {
	return fmt.Sprintf("APP-%08d", t.UnixMilli()%100_000_000)
}

func (s *applicationService) Submit(ctx context.Context, l locale.Locale, in ApplicationInput) (*SubmissionAck, error) {
	if err := validateApplication(in, s.now()); err != nil {
		if errors.Is(err, ErrValidation) {
			s.metrics.Rejected("ValidationError")
		}
		return nil, err
	}
	if in.CV == nil || in.CV.Body == nil {
		s.metrics.Rejected("CVRequired")
		return nil, ErrCVRequired
	}

	cv, err := s.acceptor.Accept(ctx, upload.Candidate{
		OriginalName: in.CV.Name,
		ContentType:  in.CV.ContentType,
		Size:         in.CV.Size,
	}, in.CV.Body)
	if err != nil {
		if reason, ok := upload.RejectionReason(err); ok {
			s.metrics.Rejected(string(reason))
			return nil, err
		}
		return nil, fmt.Errorf("accept cv: %w", err)
	}

	// validateApplication guarantees these parse.
	age, _ := strconv.Atoi(strings.TrimSpace(in.Age))
	year, _ := strconv.Atoi(strings.TrimSpace(in.GraduationYear))

	now := s.now().UTC()
	app := &model.ApplicationSubmission{
		ID:             uuid.NewString(),
		ApplicationID:  ApplicationID(now),
		FullName:       strings.TrimSpace(in.FullName),
		Age:            age,
		GraduationYear: year,
		Experience:     strings.TrimSpace(in.Experience),
		Skills:         strings.TrimSpace(in.Skills),
		CV:             cv,
		SubmittedAt:    now,
	}

	if _, err := s.repo.Create(ctx, app); err != nil {
		// Rollback: the CV must not outlive a submission nobody recorded.
		if delErr := s.acceptor.Discard(context.WithoutCancel(ctx), cv); delErr != nil {
			return nil, fmt.Errorf("save application failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("save application failed: %w", err)
	}

	s.log.Info("application_submitted",
		zap.String("application_id", app.ApplicationID),
		zap.String("fullname", app.FullName),
		zap.Int("age", app.Age),
		zap.Int("graduation_year", app.GraduationYear),
		zap.String("experience", app.Experience),
		zap.String("skills", app.Skills),
		zap.String("cv_original_name", cv.OriginalName),
		zap.String("cv_stored_name", cv.StoredName),
		zap.Int64("cv_size", cv.Size),
		zap.String("lang", l.Code),
	)
	s.metrics.Submitted(cv.Size)

	if err := s.events.PublishApplicationSubmitted(ctx, events.ApplicationSubmitted{
		ApplicationID:  app.ApplicationID,
		FullName:       app.FullName,
		GraduationYear: app.GraduationYear,
		Experience:     app.Experience,
		CVFileName:     cv.StoredName,
		Locale:         l.Code,
		SubmittedAt:    now,
	}); err != nil {
		s.log.Warn("application_event_publish_failed",
			zap.String("application_id", app.ApplicationID),
			zap.Error(err),
		)
	}

	return &SubmissionAck{
		Success: true,
		Message: locale.Message(l.Code, locale.MsgApplicationReceived),
		Data: ApplicationData{
			FullName:       app.FullName,
			Age:            app.Age,
			GraduationYear: app.GraduationYear,
			Experience:     app.Experience,
			Skills:         app.Skills,
			CVFileName:     cv.StoredName,
			CVPath:         cv.StoragePath,
		},
		ApplicationID: app.ApplicationID,
		Timestamp:     now.Format(TimestampLayout),
	}, nil
}

// List returns paginated submissions without exposing repository types.
func (s *applicationService) List(ctx context.Context, limit, offset int) (*ApplicationListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ApplicationListResult{Items: res.Items, Total: res.Total}, nil
}
