package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careers/internal/http/middleware"
	"careers/internal/service"
)

// CVField is the multipart field carrying the CV.
const CVField = "cv"

// SubmitApplication handles POST /submit-application (multipart/form-data).
// A missing cv part is not a transport error: the service reports it as
// CV_REQUIRED so no identifier is minted.
func SubmitApplication(svc service.ApplicationService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ApplicationInput{
			FullName:       c.FormValue("fullname"),
			Age:            c.FormValue("age"),
			GraduationYear: c.FormValue("graduation_year"),
			Experience:     c.FormValue("experience"),
			Skills:         c.FormValue("skills"),
		}

		if fh, err := c.FormFile(CVField); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeServiceError(c, log, err)
			}
			defer f.Close()

			ct := fh.Header.Get(fiber.HeaderContentType)
			if ct == "" {
				ct = "application/octet-stream"
			}
			in.CV = &service.CVFile{
				Name:        fh.Filename,
				ContentType: ct,
				Size:        fh.Size,
				Body:        f,
			}
		}

		ack, err := svc.Submit(c.UserContext(), middleware.LocaleFrom(c), in)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.Status(fiber.StatusOK).JSON(ack)
	}
}

// ListApplications handles GET /admin/applications with limit & offset.
func ListApplications(svc service.ApplicationService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidLimit, "invalid limit")
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidOffset, "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, log, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"count":   len(res.Items),
			"total":   res.Total,
			"data":    res.Items,
		})
	}
}
