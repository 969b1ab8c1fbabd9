package model

import "time"

// ApplicationSubmission is one accepted job application.
// ID is the storage key; ApplicationID is the human reference handed back to the applicant.
type ApplicationSubmission struct {
	ID             string        `json:"id"`
	ApplicationID  string        `json:"application_id"`
	FullName       string        `json:"fullname"`
	Age            int           `json:"age"`
	GraduationYear int           `json:"graduation_year"`
	Experience     string        `json:"experience"`
	Skills         string        `json:"skills"`
	CV             *UploadedFile `json:"cv,omitempty"`
	SubmittedAt    time.Time     `json:"submitted_at"`
}
