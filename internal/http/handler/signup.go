package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careers/internal/http/middleware"
	"careers/internal/locale"
	"careers/internal/service"
)

// signupRequest accepts JSON and url-encoded or multipart forms alike.
type signupRequest struct {
	FullName string `json:"fullname" form:"fullname"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func parseSignup(c *fiber.Ctx) (service.SignupInput, error) {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return service.SignupInput{}, err
	}
	return service.SignupInput{FullName: req.FullName, Email: req.Email, Password: req.Password}, nil
}

// Signup handles POST /signup. In html mode a successful signup redirects to
// the application form; in json mode it answers like SignupProcess.
func Signup(svc service.SignupService, pages *Pages, log *zap.Logger) fiber.Handler {
	process := SignupProcess(svc, log)
	return func(c *fiber.Ctx) error {
		if pages.JSONMode() {
			return process(c)
		}
		in, err := parseSignup(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeBadRequest, locale.Message(middleware.LocaleFrom(c).Code, locale.MsgBadRequest))
		}
		ack, err := svc.Register(c.UserContext(), middleware.LocaleFrom(c), in)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.Redirect(ack.Redirect, fiber.StatusFound)
	}
}

// SignupProcess handles POST /signup-process and always answers JSON.
func SignupProcess(svc service.SignupService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseSignup(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeBadRequest, locale.Message(middleware.LocaleFrom(c).Code, locale.MsgBadRequest))
		}
		ack, err := svc.Register(c.UserContext(), middleware.LocaleFrom(c), in)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.Status(fiber.StatusOK).JSON(ack)
	}
}
