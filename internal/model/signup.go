package model

import "time"

// SignupAccount is a registered user. PasswordHash is a bcrypt digest; the
// plaintext never reaches this type.
type SignupAccount struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
