package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"careers/internal/config"
	"careers/internal/http/middleware"
	"careers/internal/locale"
	"careers/internal/metrics"
	"careers/internal/model"
	"careers/internal/service"
	serviceMocks "careers/internal/service/mocks"
	"careers/internal/storage"
	"careers/internal/upload"
)

type testApp struct {
	app   *fiber.App
	store storage.Storage
	reg   *prometheus.Registry
}

type appOption func(*Deps)

func withChecks(checks ...Dependency) appOption {
	return func(d *Deps) { d.Checks = checks }
}

func withApplications(svc service.ApplicationService) appOption {
	return func(d *Deps) { d.Applications = svc }
}

func withSignups(svc service.SignupService) appOption {
	return func(d *Deps) { d.Signups = svc }
}

func newTestApp(t *testing.T, mode string, opts ...appOption) *testApp {
	t.Helper()

	table := locale.NewTable()
	store, err := storage.NewDisk(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m, err := metrics.NewIntake(reg)
	require.NoError(t, err)

	pages, err := NewPages(table, mode)
	require.NoError(t, err)

	d := Deps{
		Applications: service.NewApplicationService(service.ApplicationDeps{
			Acceptor: upload.NewAcceptor(store),
			Metrics:  m,
		}),
		Signups: service.NewSignupService(service.SignupDeps{
			Metrics:    m,
			Validate:   true,
			BcryptCost: bcrypt.MinCost,
		}),
		Languages: service.NewLanguageService(table, m),
		Pages:     pages,
		Uploads:   store,
		Gatherer:  reg,
		Log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(&d)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    int(upload.DefaultMaxBytes) + 1<<20,
		ErrorHandler: ErrorHandler(zap.NewNop()),
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.Locale(locale.NewResolver(table)))
	RegisterRoutes(app, d)

	return &testApp{app: app, store: store, reg: reg}
}

func (a *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

type filePart struct {
	name        string
	contentType string
	body        []byte
}

// multipartRequest builds a submission; CreateFormFile would force
// application/octet-stream, so the part header is written by hand.
func multipartRequest(t *testing.T, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, CVField, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit-application", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func saraAli() map[string]string {
	return map[string]string{
		"fullname":        "Sara Ali",
		"age":             "24",
		"graduation_year": "2022",
		"experience":      "1-3",
		"skills":          "Go, SQL",
	}
}

func withLang(req *http.Request, code string) *http.Request {
	req.AddCookie(&http.Cookie{Name: locale.CookieName, Value: code})
	return req
}

func TestSubmitApplication(t *testing.T) {
	pdf := &filePart{name: "cv.pdf", contentType: "application/pdf", body: []byte("%PDF-1.4 test")}

	t.Run("accepted", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, withLang(multipartRequest(t, saraAli(), pdf), "en"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		ack := decode[service.SubmissionAck](t, resp)
		assert.True(t, ack.Success)
		assert.Equal(t, "Application submitted successfully!", ack.Message)
		assert.Regexp(t, `^APP-\d{8}$`, ack.ApplicationID)
		assert.Regexp(t, `^\d+-\d+\.pdf$`, ack.Data.CVFileName)
		assert.Equal(t, upload.PublicPrefix+ack.Data.CVFileName, ack.Data.CVPath)
		assert.Equal(t, "Sara Ali", ack.Data.FullName)
		assert.Equal(t, 24, ack.Data.Age)
		assert.Equal(t, 2022, ack.Data.GraduationYear)
		_, err := time.Parse(service.TimestampLayout, ack.Timestamp)
		assert.NoError(t, err)

		rc, info, err := ta.store.Get(context.Background(), ack.Data.CVFileName)
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, int64(len(pdf.body)), info.Size)
	})

	t.Run("arabic by default", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, multipartRequest(t, saraAli(), pdf))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		ack := decode[service.SubmissionAck](t, resp)
		assert.Equal(t, "تم استلام طلبك بنجاح!", ack.Message)
		assert.Equal(t, "ar", resp.Header.Get(fiber.HeaderContentLanguage))
	})

	t.Run("missing cv", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, withLang(multipartRequest(t, saraAli(), nil), "en"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.False(t, body.Success)
		assert.Equal(t, CodeCVRequired, body.Error.Code)
		assert.Equal(t, "Please upload your résumé", body.Message)
	})

	t.Run("unsupported type", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		exe := &filePart{name: "cv.exe", contentType: "application/pdf", body: []byte("MZ")}
		resp := ta.do(t, multipartRequest(t, saraAli(), exe))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeUnsupportedFileType, body.Error.Code)
	})

	t.Run("too large", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		big := &filePart{name: "cv.pdf", contentType: "application/pdf", body: make([]byte, upload.DefaultMaxBytes+1)}
		resp := ta.do(t, multipartRequest(t, saraAli(), big))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeFileTooLarge, body.Error.Code)
	})

	t.Run("invalid fields", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		fields := saraAli()
		fields["age"] = "abc"
		delete(fields, "fullname")
		resp := ta.do(t, multipartRequest(t, fields, pdf))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeValidation, body.Error.Code)
		var names []string
		for _, f := range body.Error.Fields {
			names = append(names, f.Field)
		}
		assert.Contains(t, names, "fullname")
		assert.Contains(t, names, "age")
	})

	t.Run("internal error", func(t *testing.T) {
		svc := new(serviceMocks.MockApplicationService)
		svc.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		ta := newTestApp(t, config.RenderHTML, withApplications(svc))
		resp := ta.do(t, multipartRequest(t, saraAli(), pdf))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeInternal, body.Error.Code)
		assert.NotContains(t, body.Message, "db down")
		assert.NotEmpty(t, body.RequestID)
		svc.AssertExpectations(t)
	})
}

func TestListApplications(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(serviceMocks.MockApplicationService)
		svc.On("List", mock.Anything, 5, 10).Return(&service.ApplicationListResult{
			Items: []model.ApplicationSubmission{{ApplicationID: "APP-00000001", FullName: "Sara Ali"}},
			Total: 11,
		}, nil).Once()

		ta := newTestApp(t, config.RenderHTML, withApplications(svc))
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/admin/applications?limit=5&offset=10", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[map[string]any](t, resp)
		assert.Equal(t, true, body["success"])
		assert.EqualValues(t, 1, body["count"])
		assert.EqualValues(t, 11, body["total"])
		assert.Len(t, body["data"], 1)
		svc.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		svc := new(serviceMocks.MockApplicationService)
		svc.On("List", mock.Anything, 10, 0).Return(&service.ApplicationListResult{Items: []model.ApplicationSubmission{}}, nil).Once()

		ta := newTestApp(t, config.RenderHTML, withApplications(svc))
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/admin/applications", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/admin/applications?limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeInvalidLimit, decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/admin/applications?offset=x", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeInvalidOffset, decode[errorPayload](t, resp).Error.Code)
	})
}

func formRequest(path string, v url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func TestSignup(t *testing.T) {
	form := url.Values{
		"fullname": {"Sara Ali"},
		"email":    {"Sara@Example.com"},
		"password": {"s3cret-pass"},
	}

	t.Run("html mode redirects to the application form", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, formRequest("/signup", form))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, service.ApplicationPath, resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("json mode answers with an ack", func(t *testing.T) {
		ta := newTestApp(t, config.RenderJSON)
		resp := ta.do(t, formRequest("/signup", form))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		ack := decode[service.SignupAck](t, resp)
		assert.True(t, ack.Success)
		assert.Equal(t, service.ApplicationPath, ack.Redirect)
	})

	t.Run("signup-process accepts json", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		req := httptest.NewRequest(http.MethodPost, "/signup-process",
			strings.NewReader(`{"fullname":"Sara Ali","email":"sara@example.com","password":"s3cret-pass"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp := ta.do(t, withLang(req, "en"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		ack := decode[service.SignupAck](t, resp)
		assert.True(t, ack.Success)
		assert.Equal(t, "Account created successfully!", ack.Message)
		assert.Equal(t, "sara@example.com", ack.Data.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		bad := url.Values{"fullname": {"Sara Ali"}, "email": {"nope"}, "password": {"s3cret-pass"}}
		resp := ta.do(t, formRequest("/signup-process", bad))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeValidation, body.Error.Code)
		require.NotEmpty(t, body.Error.Fields)
		assert.Equal(t, "email", body.Error.Fields[0].Field)
	})

	t.Run("email taken", func(t *testing.T) {
		svc := new(serviceMocks.MockSignupService)
		svc.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken).Once()

		ta := newTestApp(t, config.RenderHTML, withSignups(svc))
		resp := ta.do(t, formRequest("/signup", form))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, CodeEmailTaken, decode[errorPayload](t, resp).Error.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unparsable body", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		req := httptest.NewRequest(http.MethodPost, "/signup-process", strings.NewReader("{"))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp := ta.do(t, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeBadRequest, decode[errorPayload](t, resp).Error.Code)
	})
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestChangeLanguage(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		req := httptest.NewRequest(http.MethodPost, "/change-language", strings.NewReader(`{"lang":"en","langName":"English"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp := ta.do(t, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := decode[service.ChangeResult](t, resp)
		assert.True(t, res.Success)
		assert.Equal(t, "en", res.Lang)
		assert.Equal(t, "English", res.LangName)
		// Worded in the language the page was showing.
		assert.Equal(t, "تم تغيير اللغة", res.Message)

		lang := findCookie(resp, locale.CookieName)
		require.NotNil(t, lang)
		assert.Equal(t, "en", lang.Value)
		assert.Equal(t, "/", lang.Path)
		assert.True(t, lang.HttpOnly)
		assert.Equal(t, int(service.LanguageCookieMaxAge/time.Second), lang.MaxAge)
		assert.NotNil(t, findCookie(resp, locale.NameCookieName))
	})

	t.Run("form body", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, withLang(formRequest("/change-language", url.Values{"lang": {"ja"}}), "en"))
		res := decode[service.ChangeResult](t, resp)
		assert.True(t, res.Success)
		assert.Equal(t, "Language changed", res.Message)
		assert.Equal(t, "日本語", res.LangName)
	})

	t.Run("unsupported sets no cookie", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		req := httptest.NewRequest(http.MethodPost, "/change-language", strings.NewReader(`{"lang":"xx"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp := ta.do(t, withLang(req, "en"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := decode[service.ChangeResult](t, resp)
		assert.False(t, res.Success)
		assert.Equal(t, "Language not supported", res.Message)
		assert.Empty(t, resp.Header.Values(fiber.HeaderSetCookie))
	})

	t.Run("subsequent pages use the new language", func(t *testing.T) {
		ta := newTestApp(t, config.RenderJSON)
		req := httptest.NewRequest(http.MethodPost, "/change-language", strings.NewReader(`{"lang":"de"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		lang := findCookie(ta.do(t, req), locale.CookieName)
		require.NotNil(t, lang)

		page := httptest.NewRequest(http.MethodGet, "/", nil)
		page.AddCookie(lang)
		v := decode[pageView](t, ta.do(t, page))
		assert.Equal(t, "de", v.Lang.Code)
		assert.Equal(t, locale.LTR, v.Lang.Dir)
	})
}

var yearOption = regexp.MustCompile(`<option value="(\d{4})">`)

func assertYearsDescending(t *testing.T, years []int) {
	t.Helper()
	current := time.Now().Year()
	require.Len(t, years, current-service.MinGraduationYear+1)
	assert.Equal(t, current, years[0])
	assert.Equal(t, service.MinGraduationYear, years[len(years)-1])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, years[i-1]-1, years[i])
	}
}

func TestPages(t *testing.T) {
	t.Run("application years in html", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/application", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, fiber.MIMETextHTMLCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var years []int
		for _, m := range yearOption.FindAllStringSubmatch(string(raw), -1) {
			y, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			years = append(years, y)
		}
		assertYearsDescending(t, years)
		assert.Contains(t, string(raw), `dir="rtl"`)
	})

	t.Run("application years in json", func(t *testing.T) {
		ta := newTestApp(t, config.RenderJSON)
		resp := ta.do(t, withLang(httptest.NewRequest(http.MethodGet, "/application", nil), "fr"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		v := decode[pageView](t, resp)
		assert.Equal(t, PageApplication, v.Page)
		assert.Equal(t, "fr", v.Lang.Code)
		assert.Len(t, v.Locales, 7)
		assertYearsDescending(t, v.Years)
	})

	t.Run("confirmation reference", func(t *testing.T) {
		ta := newTestApp(t, config.RenderJSON)
		v := decode[pageView](t, ta.do(t, httptest.NewRequest(http.MethodGet, "/confirmation", nil)))
		n, err := strconv.Atoi(v.Reference)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	})

	t.Run("every page renders", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		for _, path := range []string{"/", "/signup", "/application", "/success", "/confirmation"} {
			for _, code := range []string{"ar", "en", "zh"} {
				resp := ta.do(t, withLang(httptest.NewRequest(http.MethodGet, path, nil), code))
				assert.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", path, code)
				assert.Equal(t, code, resp.Header.Get(fiber.HeaderContentLanguage))
			}
		}
	})

	t.Run("not found is localized", func(t *testing.T) {
		ta := newTestApp(t, config.RenderHTML)
		resp := ta.do(t, withLang(httptest.NewRequest(http.MethodGet, "/nope", nil), "en"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Page Not Found")
		assert.Contains(t, string(raw), `lang="en"`)
	})

	t.Run("not found in json mode", func(t *testing.T) {
		ta := newTestApp(t, config.RenderJSON)
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/missing/page", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		v := decode[pageView](t, resp)
		assert.Equal(t, PageNotFound, v.Page)
		assert.Equal(t, "الصفحة غير موجودة", v.Title)
	})
}

func TestGraduationYears(t *testing.T) {
	assert.Equal(t, []int{2002, 2001, 2000}, GraduationYears(2002))
	assert.Equal(t, []int{2000}, GraduationYears(2000))
	assert.Empty(t, GraduationYears(1999))
}

func TestServeUpload(t *testing.T) {
	ta := newTestApp(t, config.RenderHTML)
	_, err := ta.store.Put(context.Background(), "1700000000000-42.pdf", strings.NewReader("%PDF"), storage.PutObjectOptions{
		Size:        4,
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/uploads/1700000000000-42.pdf", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(raw))
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	})

	t.Run("missing", func(t *testing.T) {
		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/uploads/nope.pdf", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, CodeNotFound, decode[errorPayload](t, resp).Error.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	ta := newTestApp(t, config.RenderHTML, withChecks(Dependency{Name: "database", Ping: db.PingContext}))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[map[string]any](t, resp)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(sql.ErrConnDone)

		resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, CodeUnavailable, decode[errorPayload](t, resp).Error.Code)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLivenessProbe(t *testing.T) {
	ta := newTestApp(t, config.RenderHTML)
	resp := ta.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ta := newTestApp(t, config.RenderHTML)
	resp := ta.do(t, withLang(multipartRequest(t, saraAli(), &filePart{name: "cv.docx", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", body: []byte("PK")}), "en"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "careers_applications_submitted_total 1")
}

// serve runs app on a loopback listener. app.Test hands body-limit errors
// back to the caller instead of the error handler, so that path needs a
// real connection.
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln) //nolint:errcheck
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestErrorHandler_BodyLimit(t *testing.T) {
	app := fiber.New(fiber.Config{
		BodyLimit:             16,
		ErrorHandler:          ErrorHandler(zap.NewNop()),
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestID())
	app.Post("/submit-application", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	base := serve(t, app)

	post := func(t *testing.T, lang, requestID string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodPost, base+"/submit-application", bytes.NewReader(make([]byte, 64)))
		require.NoError(t, err)
		if lang != "" {
			req.AddCookie(&http.Cookie{Name: locale.CookieName, Value: lang})
		}
		if requestID != "" {
			req.Header.Set(middleware.RequestIDHeader, requestID)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("file-too-large in the client's language", func(t *testing.T) {
		resp := post(t, "en", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeFileTooLarge, body.Error.Code)
		assert.Equal(t, "The file exceeds the upload size limit", body.Message)
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, body.RequestID, resp.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("arabic without a cookie, client request id kept", func(t *testing.T) {
		resp := post(t, "", "trace-abc-1")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeFileTooLarge, body.Error.Code)
		assert.Equal(t, locale.Message("ar", locale.MsgFileTooLarge), body.Message)
		assert.Equal(t, "trace-abc-1", body.RequestID)
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{
		BodyLimit:    16,
		ErrorHandler: ErrorHandler(zap.NewNop()),
	})
	app.Post("/submit-application", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "nope") })

	t.Run("unexpected error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, CodeInternal, body.Error.Code)
		assert.False(t, body.Success)
	})

	t.Run("bad request", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeBadRequest, decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nothing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, CodeNotFound, decode[errorPayload](t, resp).Error.Code)
	})
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	ta := newTestApp(t, config.RenderHTML)
	param := regexp.MustCompile(`:(\w+)`)
	for _, r := range ta.app.GetRoutes(true) {
		if r.Method == fiber.MethodHead || strings.HasPrefix(r.Path, "/swagger/") {
			continue
		}
		path := param.ReplaceAllString(r.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(r.Method), "undocumented %s %s", r.Method, path)
	}
}
