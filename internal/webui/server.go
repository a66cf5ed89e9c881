// Package webui is the console's shell: an echo server hosting the screens
// under a fixed route table and rendering them with one generic template.
package webui

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/gymwear/storeadmin/internal/app"
	"github.com/gymwear/storeadmin/internal/console"
)

// Server hosts the admin screens.
type Server struct {
	app  app.AppContext
	echo *echo.Echo

	flashMu sync.Mutex
	flashes []console.Notification
}

type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// NewServer builds the shell, registers the fixed route table, and subscribes
// to screen notifications.
func NewServer(a app.AppContext) *Server {
	s := &Server{app: a}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	funcs := template.FuncMap{
		"pageDec": func(n int) int { return n - 1 },
		"pageInc": func(n int) int { return n + 1 },
		"deref": func(p *int64) int64 {
			if p == nil {
				return 0
			}
			return *p
		},
	}
	e.Renderer = &renderer{templates: template.Must(template.New("webui").Funcs(funcs).Parse(pageTemplates))}
	e.Use(middleware.Recover())
	e.Use(requestLogger)

	if err := a.Notifier().Subscribe(s.pushFlash); err != nil {
		zap.L().Error("notification subscribe failed", zap.Error(err))
	}

	e.GET("/", s.dashboardPage)
	e.GET("/login", func(c echo.Context) error {
		// login is not a real destination while the identity stub is in place
		return c.Redirect(http.StatusFound, "/")
	})
	e.POST("/logout", func(c echo.Context) error {
		a.Auth().Logout()
		return c.Redirect(http.StatusFound, "/")
	})

	mountScreen(s, e, a.CategoryScreen(), nil)
	mountScreen(s, e, a.ProductScreen(), nil)
	mountScreen(s, e, a.UserScreen(), nil)
	mountScreen(s, e, a.OrderScreen(), s.orderExtras)

	// unmatched paths fall back to the dashboard
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})

	s.echo = e
	return s
}

// Handler exposes the route table as an http.Handler (used in tests).
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(listen string) error {
	zap.S().Infof("admin console listening on %s", listen)
	return s.echo.Start(listen)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) pushFlash(n console.Notification) {
	s.flashMu.Lock()
	defer s.flashMu.Unlock()
	s.flashes = append(s.flashes, n)
	if len(s.flashes) > 20 {
		s.flashes = s.flashes[len(s.flashes)-20:]
	}
}

// takeFlashes drains pending notifications for rendering.
func (s *Server) takeFlashes() []console.Notification {
	s.flashMu.Lock()
	defer s.flashMu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		zap.L().Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}
