// Package events announces accepted submissions to other systems. Publishing
// is best effort: the intake never fails because a broker is down.
package events

import (
	"context"
	"time"
)

// ApplicationSubmitted is published once per accepted application.
type ApplicationSubmitted struct {
	ApplicationID  string    `json:"applicationId"`
	FullName       string    `json:"fullname"`
	GraduationYear int       `json:"graduation_year"`
	Experience     string    `json:"experience"`
	CVFileName     string    `json:"cvFileName"`
	Locale         string    `json:"locale"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Publisher delivers events.
type Publisher interface {
	PublishApplicationSubmitted(ctx context.Context, ev ApplicationSubmitted) error
	Close() error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishApplicationSubmitted(context.Context, ApplicationSubmitted) error { return nil }
func (Nop) Close() error                                                          { return nil }
