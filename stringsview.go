package tableaxis

import "strings"

// StringsView is a View of string cells.
//
// Rows can have fewer elements than Cols,
// missing cells are empty.
type StringsView struct {
	Cols []string
	Rows [][]string
}

var _ View = new(StringsView)

// NewStringsView returns a StringsView with the passed cols
// or with the first of rows as column titles if no cols are passed.
// Column titles are trimmed.
func NewStringsView(rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Cols: cols, Rows: rows}
}

func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the cell at row and col
// or an empty string if it does not exist.
func (view *StringsView) Cell(row, col int) string {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}
