package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"careers/internal/http/middleware"
	"careers/internal/service"
)

type changeLanguageRequest struct {
	Lang     string `json:"lang" form:"lang"`
	LangName string `json:"langName" form:"langName"`
}

// ChangeLanguage handles POST /change-language. An unsupported code is not
// an HTTP error: the reply is 200 with success false and no cookie.
func ChangeLanguage(svc service.LanguageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req changeLanguageRequest
		// An unparsable body is treated as an empty, unsupported code.
		_ = c.BodyParser(&req)

		res := svc.Change(middleware.LocaleFrom(c), req.Lang, req.LangName)
		for _, d := range res.Cookies {
			c.Cookie(&fiber.Cookie{
				Name:     d.Name,
				Value:    d.Value,
				Path:     d.Path,
				MaxAge:   int(d.MaxAge / time.Second),
				Expires:  time.Now().Add(d.MaxAge),
				HTTPOnly: d.HTTPOnly,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		return c.JSON(res)
	}
}
