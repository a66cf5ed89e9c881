package console

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Column maps one table column onto a row value.
type Column[T any] struct {
	Name  string
	Label string
	Value func(T) interface{}
}

// Table narrows, orders, and pages the rows a screen has loaded. All of it is
// in-memory over the current snapshot; nothing here re-queries the backend.
type Table[T any] struct {
	Columns  []Column[T]
	filter   string
	sortCol  string
	sortAsc  bool
	page     int
	pageSize int
}

func NewTable[T any](columns []Column[T], pageSize int) *Table[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Table[T]{Columns: columns, page: 1, pageSize: pageSize}
}

// SetFilter replaces the case-insensitive substring filter and resets
// pagination to the first page.
func (t *Table[T]) SetFilter(q string) {
	t.filter = strings.TrimSpace(q)
	t.page = 1
}

func (t *Table[T]) Filter() string { return t.filter }

// SortBy orders by the named column. Sorting by an unknown column is ignored.
func (t *Table[T]) SortBy(col string, asc bool) {
	t.sortCol = col
	t.sortAsc = asc
}

func (t *Table[T]) Sort() (string, bool) { return t.sortCol, t.sortAsc }

// SetPage moves to a page; out-of-range values are clamped when rendering.
func (t *Table[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	t.page = n
}

func (t *Table[T]) Page() int { return t.page }

func (t *Table[T]) column(name string) *Column[T] {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

func (t *Table[T]) matches(row T) bool {
	if t.filter == "" {
		return true
	}
	needle := strings.ToLower(t.filter)
	for _, col := range t.Columns {
		if strings.Contains(strings.ToLower(cast.ToString(col.Value(row))), needle) {
			return true
		}
	}
	return false
}

// Visible applies filter, sort, and pagination to a row snapshot. It returns
// the page slice and the resulting page count (at least 1).
func (t *Table[T]) Visible(rows []T) ([]T, int) {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if t.matches(r) {
			out = append(out, r)
		}
	}

	if col := t.column(t.sortCol); col != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if t.sortAsc {
				return valueLess(col.Value(out[i]), col.Value(out[j]))
			}
			return valueLess(col.Value(out[j]), col.Value(out[i]))
		})
	}

	pages := (len(out) + t.pageSize - 1) / t.pageSize
	if pages < 1 {
		pages = 1
	}
	page := t.page
	if page > pages {
		page = pages
	}
	start := (page - 1) * t.pageSize
	end := start + t.pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], pages
}

// valueLess compares numerically when both values are numbers, otherwise by
// their string form.
func valueLess(a, b interface{}) bool {
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return af < bf
	}
	return cast.ToString(a) < cast.ToString(b)
}
