package webui

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/dashboard"
	"github.com/gymwear/storeadmin/internal/domain"
)

type dashboardView struct {
	Failed  bool
	Stats   *dashboard.Stats
	User    domain.AuthUser
	Flashes []console.Notification
}

// dashboardPage fans out the four list reads and renders the joined stats.
// Any single failure renders the generic failure state; nothing partial.
func (s *Server) dashboardPage(c echo.Context) error {
	view := dashboardView{
		User:    s.app.Auth().Current(),
		Flashes: s.takeFlashes(),
	}
	stats, err := s.app.Dashboard().Load(c.Request().Context())
	if err != nil {
		view.Failed = true
	} else {
		view.Stats = stats
	}
	return c.Render(http.StatusOK, "dashboard", view)
}

// orderExtras adds the receipt routes the orders screen carries on top of
// plain CRUD.
func (s *Server) orderExtras(g *echo.Group) {
	g.GET("/:id/receipt.pdf", func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return c.Redirect(http.StatusFound, "/orders")
		}
		data, err := s.app.Orders().FetchReceipt(c.Request().Context(), id)
		if err != nil {
			s.app.Notifier().Notify(console.LevelError, "Could not download the receipt")
			return c.Redirect(http.StatusFound, "/orders")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="order-receipt.pdf"`)
		return c.Blob(http.StatusOK, "application/pdf", data)
	})

	g.POST("/:id/email", func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return c.Redirect(http.StatusFound, "/orders")
		}
		msg, err := s.app.Orders().SendReceiptEmail(c.Request().Context(), id)
		if err != nil {
			s.app.Notifier().Notify(console.LevelError, "Could not send the receipt email")
		} else {
			if msg == "" {
				msg = "Receipt email sent"
			}
			s.app.Notifier().Notify(console.LevelSuccess, "%s", msg)
		}
		return c.Redirect(http.StatusSeeOther, "/orders")
	})
}
