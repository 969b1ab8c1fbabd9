package service

import (
	"net/url"
	"time"

	"careers/internal/locale"
	"careers/internal/metrics"
)

// LanguageCookieMaxAge is how long a language choice is remembered.
const LanguageCookieMaxAge = 30 * 24 * time.Hour

// CookieDirective tells the transport to set one cookie.
type CookieDirective struct {
	Name     string
	Value    string
	MaxAge   time.Duration
	HTTPOnly bool
	Path     string
}

// ChangeResult is the outcome of a language change. Cookies is empty when
// the change was refused.
type ChangeResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Lang     string            `json:"lang,omitempty"`
	LangName string            `json:"langName,omitempty"`
	Cookies  []CookieDirective `json:"-"`
}

// LanguageService validates language changes.
type LanguageService interface {
	// Change accepts code when it is supported. The reply is worded in the
	// current locale, the one the page was showing when the user switched.
	Change(current locale.Locale, code, displayName string) ChangeResult
}

type languageService struct {
	table   *locale.Table
	metrics *metrics.Intake
}

func NewLanguageService(table *locale.Table, m *metrics.Intake) LanguageService {
	return &languageService{table: table, metrics: m}
}

func (s *languageService) Change(current locale.Locale, code, _ string) ChangeResult {
	target, ok := s.table.Lookup(code)
	if !ok {
		return ChangeResult{
			Success: false,
			Message: locale.Message(current.Code, locale.MsgLanguageNotSupported),
		}
	}
	s.metrics.LanguageChanged(target.Code)

	return ChangeResult{
		Success:  true,
		Message:  locale.Message(current.Code, locale.MsgLanguageChanged),
		Lang:     target.Code,
		LangName: target.Name,
		Cookies: []CookieDirective{
			{Name: locale.CookieName, Value: target.Code, MaxAge: LanguageCookieMaxAge, HTTPOnly: true, Path: "/"},
			// Cookie values must be ASCII; the display name is percent-encoded.
			{Name: locale.NameCookieName, Value: url.QueryEscape(target.Name), MaxAge: LanguageCookieMaxAge, HTTPOnly: true, Path: "/"},
		},
	}
}
