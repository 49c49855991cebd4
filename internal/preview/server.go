// Package preview serves a generated schedule over local HTTP so it can be
// opened in a browser.
package preview

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/render"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// ExportFilename is the download name of the JSON export.
const ExportFilename = "schedule.json"

// Server holds one schedule and serves it as HTML and JSON.
type Server struct {
	app  *fiber.App
	resp *domain.ScheduleResponse
}

// Options configures a Server.
type Options struct {
	Title string
	// AccessLog receives one line per request. Nil disables request logging.
	AccessLog io.Writer
}

// New builds a Server for resp. The routes are ready for Test or Serve.
func New(resp *domain.ScheduleResponse, opts Options) *Server {
	s := &Server{resp: resp}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "degreeplan preview",
	})
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${method} ${path} ${status} ${latency}\n",
			Output: opts.AccessLog,
		}))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := render.HTML(&buf, s.Schedule(), render.Options{Title: opts.Title, ExportHref: "/" + ExportFilename}); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	})
	app.Get("/"+ExportFilename, func(c *fiber.Ctx) error {
		var schedule []domain.Semester
		if resp := s.Schedule(); resp != nil {
			schedule = resp.Schedule
		}
		var buf bytes.Buffer
		if err := render.ExportJSON(&buf, schedule); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Attachment(ExportFilename)
		c.Type("json", "utf-8")
		return c.Send(buf.Bytes())
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app = app
	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Schedule returns the schedule being served.
func (s *Server) Schedule() *domain.ScheduleResponse {
	return s.resp
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() { errc <- s.app.Listener(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		if err := s.app.Shutdown(); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
		return nil
	}
}

// ListenAndServe listens on addr and reports the bound address through
// ready before serving.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(url string)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if ready != nil {
		ready("http://" + ln.Addr().String())
	}
	return s.Serve(ctx, ln)
}
