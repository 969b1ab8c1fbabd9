package middleware

import (
	"net/http"

	"careers/internal/locale"
)

func newCookie(code string) *http.Cookie {
	return &http.Cookie{Name: locale.CookieName, Value: code}
}
