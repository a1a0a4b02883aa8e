package tableaxis

var _ View = ExtraRowsView(nil)

// ExtraRowsView shows the rows of all its views below each other
// with the columns of the first view.
type ExtraRowsView []View

func (e ExtraRowsView) Columns() []string {
	if len(e) == 0 {
		return nil
	}
	return e[0].Columns()
}

func (e ExtraRowsView) NumRows() int {
	numRows := 0
	for _, view := range e {
		numRows += view.NumRows()
	}
	return numRows
}

// SourceRow returns the view and its row shown at row.
func (e ExtraRowsView) SourceRow(row int) (view View, sourceRow int, ok bool) {
	if row < 0 {
		return nil, 0, false
	}
	rowTop := 0
	for _, view := range e {
		rowBottom := rowTop + view.NumRows()
		if row < rowBottom {
			return view, row - rowTop, true
		}
		rowTop = rowBottom
	}
	return nil, 0, false
}
