package webui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/gymwear/storeadmin/internal/console"
)

// exportCSV streams the screen's loaded rows as a CSV download.
func exportCSV[T any](c echo.Context, screen *console.Screen[T]) error {
	screen.Refresh(c.Request().Context())
	if screen.State() != console.Loaded {
		return c.Redirect(http.StatusFound, "/"+screen.Name())
	}
	rows := screen.Rows()

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.csv"`, screen.Name()))
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(rows, c.Response())
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
