package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"careers/docs"
	"careers/internal/service"
	"careers/internal/storage"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Applications service.ApplicationService
	Signups      service.SignupService
	Languages    service.LanguageService
	Pages        *Pages
	Uploads      storage.Storage
	Checks       []Dependency
	Gatherer     prometheus.Gatherer
	Log          *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; the services own the rules.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/", d.Pages.Page(PageHome))
	app.Get("/signup", d.Pages.Page(PageSignup))
	app.Get("/application", d.Pages.Page(PageApplication))
	app.Get("/success", d.Pages.Page(PageSuccess))
	app.Get("/confirmation", d.Pages.Page(PageConfirmation))

	app.Post("/signup", Signup(d.Signups, d.Pages, log))
	app.Post("/signup-process", SignupProcess(d.Signups, log))
	app.Post("/submit-application", SubmitApplication(d.Applications, log))
	app.Post("/change-language", ChangeLanguage(d.Languages))

	app.Get("/admin/applications", ListApplications(d.Applications, log))
	app.Get("/uploads/:name", ServeUpload(d.Uploads, log))

	app.Get("/health", HealthCheck(d.Checks...))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	app.Use(d.Pages.NotFound())
}
