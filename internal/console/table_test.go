package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	ID    int64
	Name  string
	Price float64
}

func widgetColumns() []Column[widget] {
	return []Column[widget]{
		{Name: "id", Label: "ID", Value: func(w widget) interface{} { return w.ID }},
		{Name: "name", Label: "Name", Value: func(w widget) interface{} { return w.Name }},
		{Name: "price", Label: "Price", Value: func(w widget) interface{} { return w.Price }},
	}
}

func widgetRows() []widget {
	return []widget{
		{1, "Running Shoes", 59.90},
		{2, "Yoga Mat", 19.90},
		{3, "running socks", 9.90},
		{4, "Dumbbell", 25.00},
	}
}

func TestTableFilterIsCaseInsensitiveSubstring(t *testing.T) {
	tbl := NewTable(widgetColumns(), 10)
	tbl.SetFilter("RUNNING")

	rows, _ := tbl.Visible(widgetRows())
	assert.Len(t, rows, 2)
}

func TestTableFilterResetsPage(t *testing.T) {
	tbl := NewTable(widgetColumns(), 2)
	tbl.SetPage(2)
	tbl.SetFilter("o")
	assert.Equal(t, 1, tbl.Page())
}

func TestTableSortNumeric(t *testing.T) {
	tbl := NewTable(widgetColumns(), 10)
	tbl.SortBy("price", true)

	rows, _ := tbl.Visible(widgetRows())
	assert.Equal(t, "running socks", rows[0].Name)
	assert.Equal(t, "Running Shoes", rows[len(rows)-1].Name)
}

func TestTableSortDescending(t *testing.T) {
	tbl := NewTable(widgetColumns(), 10)
	tbl.SortBy("price", false)

	rows, _ := tbl.Visible(widgetRows())
	assert.Equal(t, "Running Shoes", rows[0].Name)
}

func TestTableSortDescendingWithEqualValues(t *testing.T) {
	// 7 and "7.0" compare numerically equal but stringify differently; the
	// descending order must stay consistent and stable.
	cols := []Column[widget]{
		{Name: "n", Label: "N", Value: func(w widget) interface{} {
			if w.ID == 2 {
				return "7.0"
			}
			return w.Price
		}},
	}
	rows := []widget{
		{1, "first-seven", 7},
		{2, "string-seven", 0},
		{3, "nine", 9},
	}
	tbl := NewTable(cols, 10)
	tbl.SortBy("n", false)

	got, _ := tbl.Visible(rows)
	assert.Equal(t, "nine", got[0].Name)
	assert.Equal(t, "first-seven", got[1].Name)
	assert.Equal(t, "string-seven", got[2].Name)
}

func TestTablePagination(t *testing.T) {
	tbl := NewTable(widgetColumns(), 3)

	rows, pages := tbl.Visible(widgetRows())
	assert.Equal(t, 2, pages)
	assert.Len(t, rows, 3)

	tbl.SetPage(2)
	rows, _ = tbl.Visible(widgetRows())
	assert.Len(t, rows, 1)
}

func TestTablePageClamped(t *testing.T) {
	tbl := NewTable(widgetColumns(), 3)
	tbl.SetPage(99)
	rows, _ := tbl.Visible(widgetRows())
	assert.Len(t, rows, 1) // clamped to the last page
}

func TestTableEmptyRows(t *testing.T) {
	tbl := NewTable(widgetColumns(), 3)
	rows, pages := tbl.Visible(nil)
	assert.Empty(t, rows)
	assert.Equal(t, 1, pages)
}
