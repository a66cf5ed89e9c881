package webui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/domain"
)

type colView struct {
	Name  string
	Label string
}

type rowView struct {
	ID    int64
	HasID bool
	Cells []string
}

type fieldView struct {
	Name    string
	Label   string
	Kind    console.Kind
	Options []string
	Value   string
	Checked bool
	Error   string
	Touched bool
}

type screenView struct {
	Title    string
	Name     string
	Singular string

	Loading bool
	Failed  bool

	Filter  string
	SortCol string
	SortAsc bool
	Page    int
	Pages   int

	Columns []colView
	Rows    []rowView

	FormOpen   bool
	Submitting bool
	FormError  string
	Editing    bool
	EditingID  int64
	Fields     []fieldView

	HasReceipts bool

	User    domain.AuthUser
	Flashes []console.Notification
}

type confirmView struct {
	Prompt      console.Prompt
	ConfirmText string
	CancelText  string
	ID          int64
	Action      string
	BackPath    string
	User        domain.AuthUser
	Flashes     []console.Notification
}

// mountScreen registers the CRUD routes for one screen under /<name>. The
// extra hook adds resource-specific routes (the order receipt actions).
func mountScreen[T any](s *Server, e *echo.Echo, screen *console.Screen[T], extra func(g *echo.Group)) {
	base := "/" + screen.Name()
	g := e.Group(base)

	g.GET("", func(c echo.Context) error {
		applyTableParams(c, screen)
		// load before form params so ?form=edit&id=N can find its row on a
		// fresh snapshot
		screen.Activate(c.Request().Context())
		applyFormParams(c, screen)
		return renderScreen(s, c, screen)
	})

	g.POST("", func(c echo.Context) error {
		for _, f := range screen.Fields() {
			screen.SetField(f.Name, c.FormValue(f.Name))
		}
		screen.Submit(c.Request().Context())
		if state, _, _, _ := screen.FormSnapshot(); state == console.FormEditing {
			// validation or server error: keep the form open
			return renderScreen(s, c, screen)
		}
		return c.Redirect(http.StatusSeeOther, base)
	})

	g.POST("/close", func(c echo.Context) error {
		screen.CloseForm()
		return c.Redirect(http.StatusSeeOther, base)
	})

	g.GET("/delete", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
		if err != nil {
			return c.Redirect(http.StatusFound, base)
		}
		prompt := screen.DeletePrompt(id)
		confirm, cancel := prompt.Labels()
		return c.Render(http.StatusOK, "confirm", confirmView{
			Prompt:      prompt,
			ConfirmText: confirm,
			CancelText:  cancel,
			ID:          id,
			Action:      base + "/delete",
			BackPath:    base,
			User:        s.app.Auth().Current(),
			Flashes:     s.takeFlashes(),
		})
	})

	g.POST("/delete", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.FormValue("id"), 10, 64)
		if err != nil {
			return c.Redirect(http.StatusFound, base)
		}
		decision := console.Decision(c.FormValue("decision") == "confirm")
		screen.Delete(c.Request().Context(), id, decision)
		return c.Redirect(http.StatusSeeOther, base)
	})

	g.GET("/export.csv", func(c echo.Context) error {
		return exportCSV(c, screen)
	})

	if extra != nil {
		extra(g)
	}
}

func applyTableParams[T any](c echo.Context, screen *console.Screen[T]) {
	q := c.QueryParams()
	if q.Has("q") {
		screen.SetFilter(q.Get("q"))
	}
	if sortCol := q.Get("sort"); sortCol != "" {
		screen.SortBy(sortCol, q.Get("order") != "desc")
	}
	if page := q.Get("page"); page != "" {
		screen.SetPage(cast.ToInt(page))
	}
}

func applyFormParams[T any](c echo.Context, screen *console.Screen[T]) {
	switch c.QueryParam("form") {
	case "new":
		screen.OpenCreate()
	case "edit":
		if id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64); err == nil {
			screen.OpenEdit(id)
		}
	case "close":
		screen.CloseForm()
	}
}

func renderScreen[T any](s *Server, c echo.Context, screen *console.Screen[T]) error {
	return c.Render(http.StatusOK, "screen", buildView(s, screen))
}

func buildView[T any](s *Server, screen *console.Screen[T]) screenView {
	rows, pages := screen.Visible()
	sortCol, sortAsc := screen.Sort()
	formState, editingID, formErr, form := screen.FormSnapshot()

	v := screenView{
		Title:       title(screen.Name()),
		Name:        screen.Name(),
		Singular:    screen.Singular(),
		Loading:     screen.State() == console.Loading,
		Failed:      screen.State() == console.LoadFailed,
		Filter:      screen.Filter(),
		SortCol:     sortCol,
		SortAsc:     sortAsc,
		Page:        screen.Page(),
		Pages:       pages,
		FormOpen:    formState != console.FormHidden,
		Submitting:  formState == console.FormSubmitting,
		FormError:   formErr,
		HasReceipts: screen.Name() == "orders",
		User:        s.app.Auth().Current(),
		Flashes:     s.takeFlashes(),
	}
	if editingID != nil {
		v.Editing = true
		v.EditingID = *editingID
	}

	for _, col := range screen.Columns() {
		v.Columns = append(v.Columns, colView{Name: col.Name, Label: col.Label})
	}
	for _, row := range rows {
		rv := rowView{}
		for _, col := range screen.Columns() {
			rv.Cells = append(rv.Cells, cast.ToString(col.Value(row)))
		}
		if id := screen.RowID(row); id != nil {
			rv.ID = *id
			rv.HasID = true
		}
		v.Rows = append(v.Rows, rv)
	}
	for _, f := range screen.Fields() {
		fv := fieldView{
			Name:    f.Name,
			Label:   f.Label,
			Kind:    f.Kind,
			Options: f.Options,
			Value:   cast.ToString(form.Get(f.Name)),
			Error:   form.FieldError(f.Name),
			Touched: form.Touched(f.Name),
		}
		if f.Kind == console.Bool {
			fv.Checked = cast.ToBool(form.Get(f.Name))
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
