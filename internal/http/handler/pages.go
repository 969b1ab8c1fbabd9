package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"careers/internal/config"
	"careers/internal/http/middleware"
	"careers/internal/locale"
	"careers/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageHome         = "home"
	PageSignup       = "signup"
	PageApplication  = "application"
	PageSuccess      = "success"
	PageConfirmation = "confirmation"
	PageNotFound     = "notfound"
)

var pageTitles = map[string]locale.Key{
	PageHome:         locale.MsgHomeTitle,
	PageSignup:       locale.MsgSignupTitle,
	PageApplication:  locale.MsgApplicationTitle,
	PageSuccess:      locale.MsgSuccessTitle,
	PageConfirmation: locale.MsgSuccessTitle,
	PageNotFound:     locale.MsgNotFoundTitle,
}

// pageView is what a page is rendered from. In json render mode it is the
// response body.
type pageView struct {
	Page      string              `json:"page"`
	Title     string              `json:"title"`
	Lang      locale.Locale       `json:"lang"`
	Locales   []locale.Locale     `json:"locales"`
	Years     []int               `json:"years,omitempty"`
	Reference string              `json:"reference,omitempty"`
	T         func(string) string `json:"-"`
}

// Pages renders the site's pages in the configured mode.
type Pages struct {
	table     *locale.Table
	mode      string
	tmpl      map[string]*template.Template
	now       func() time.Time
	reference func() string
}

// NewPages parses the embedded templates. mode is config.RenderHTML or
// config.RenderJSON.
func NewPages(table *locale.Table, mode string) (*Pages, error) {
	p := &Pages{
		table:     table,
		mode:      mode,
		tmpl:      make(map[string]*template.Template, len(pageTitles)),
		now:       time.Now,
		reference: func() string { return strconv.Itoa(100_000 + rand.IntN(900_000)) },
	}
	for name := range pageTitles {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p.tmpl[name] = t
	}
	return p, nil
}

// JSONMode reports whether pages answer with JSON descriptors.
func (p *Pages) JSONMode() bool { return p.mode == config.RenderJSON }

// GraduationYears lists the selectable years, current first, down to 2000.
func GraduationYears(current int) []int {
	if current < service.MinGraduationYear {
		return nil
	}
	years := make([]int, 0, current-service.MinGraduationYear+1)
	for y := current; y >= service.MinGraduationYear; y-- {
		years = append(years, y)
	}
	return years
}

func (p *Pages) view(c *fiber.Ctx, name string) pageView {
	l := middleware.LocaleFrom(c)
	v := pageView{
		Page:    name,
		Title:   locale.Message(l.Code, pageTitles[name]),
		Lang:    l,
		Locales: p.table.All(),
		T:       locale.Translator(l.Code),
	}
	switch name {
	case PageApplication:
		v.Years = GraduationYears(p.now().Year())
	case PageConfirmation:
		v.Reference = p.reference()
	}
	return v
}

// Render writes page name with status.
func (p *Pages) Render(c *fiber.Ctx, name string, status int) error {
	v := p.view(c, name)
	if p.JSONMode() {
		return c.Status(status).JSON(v)
	}

	t, ok := p.tmpl[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// Page returns a handler rendering name with 200.
func (p *Pages) Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return p.Render(c, name, fiber.StatusOK)
	}
}

// NotFound is the catch-all handler: a localized 404 page.
func (p *Pages) NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return p.Render(c, PageNotFound, fiber.StatusNotFound)
	}
}
