package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careers/internal/http/middleware"
	"careers/internal/locale"
	"careers/internal/service"
	"careers/internal/upload"
)

// Error codes carried in the error envelope.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeCVRequired          = "CV_REQUIRED"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeBadRequest          = "BAD_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeUnavailable         = "SERVICE_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
	CodeInvalidLimit        = "INVALID_LIMIT"
	CodeInvalidOffset       = "INVALID_OFFSET"
)

// errorPayload defines the standardized error response body. Success is
// always false; Message is localized for the page that sent the request.
type errorPayload struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorFields(c, status, code, message, nil)
}

func writeErrorFields(c *fiber.Ctx, status int, code, message string, fields []service.FieldError) error {
	res := errorPayload{
		Success:   false,
		Message:   message,
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps a service error to the envelope. Anything that is
// not a user-correctable rejection is logged and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	l := middleware.LocaleFrom(c)
	msg := func(k locale.Key) string { return locale.Message(l.Code, k) }

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeErrorFields(c, fiber.StatusBadRequest, CodeValidation, msg(locale.MsgInvalidFields), verr.Fields)
	case errors.Is(err, service.ErrCVRequired):
		return writeError(c, fiber.StatusBadRequest, CodeCVRequired, msg(locale.MsgCVRequired))
	case errors.Is(err, upload.ErrUnsupportedType):
		return writeError(c, fiber.StatusBadRequest, CodeUnsupportedFileType, msg(locale.MsgUnsupportedFileType))
	case errors.Is(err, upload.ErrTooLarge):
		return writeError(c, fiber.StatusBadRequest, CodeFileTooLarge, msg(locale.MsgFileTooLarge))
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusConflict, CodeEmailTaken, msg(locale.MsgEmailTaken))
	}

	log.Error("request_failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, CodeInternal, msg(locale.MsgServerError))
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// A request body over the limit is an oversized upload and answers 400 like
// any other rejected file.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		l := middleware.LocaleFrom(c)
		switch status {
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fiber.StatusBadRequest, CodeFileTooLarge, locale.Message(l.Code, locale.MsgFileTooLarge))
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return writeError(c, fiber.StatusBadRequest, CodeBadRequest, locale.Message(l.Code, locale.MsgBadRequest))
		case fiber.StatusNotFound:
			return writeError(c, status, CodeNotFound, locale.Message(l.Code, locale.MsgNotFoundTitle))
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, CodeMethodNotAllowed, "method not allowed")
		default:
			log.Error("unhandled_error",
				zap.String("request_id", middleware.RequestIDFrom(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return writeError(c, status, CodeInternal, locale.Message(l.Code, locale.MsgServerError))
		}
	}
}
