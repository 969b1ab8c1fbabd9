package middleware

import (
	"github.com/gofiber/fiber/v2"

	"careers/internal/locale"
)

// LocaleLocalKey is the key the resolved locale.Locale is stored under.
const LocaleLocalKey = "locale"

var fallbackResolver = locale.NewResolver(locale.NewTable())

// Locale resolves the request language from the lang cookie once per request
// and advertises it in Content-Language.
func Locale(r *locale.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := r.Resolve(c.Cookies(locale.CookieName))
		c.Locals(LocaleLocalKey, l)
		c.Set(fiber.HeaderContentLanguage, l.Code)
		return c.Next()
	}
}

// LocaleFrom returns the locale resolved for this request. When the Locale
// middleware did not run, the lang cookie is resolved directly.
func LocaleFrom(c *fiber.Ctx) locale.Locale {
	if l, ok := localeFromLocals(c); ok {
		return l
	}
	return fallbackResolver.Resolve(c.Cookies(locale.CookieName))
}

func localeFromLocals(c *fiber.Ctx) (locale.Locale, bool) {
	l, ok := c.Locals(LocaleLocalKey).(locale.Locale)
	return l, ok
}
