package tableaxis

// View is the part of a table that determines
// how many rows and columns have to be measured.
type View interface {
	Columns() []string
	NumRows() int
}

// RemappedView is a View that shows its rows and columns
// in a different order than the logical order of its source.
type RemappedView interface {
	View

	LogicalNumRows() int
	LogicalNumCols() int
	RowRemap() Remap
	ColumnRemap() Remap
}

// logicalShape returns the logical item count and the remap
// of axis for view.
func logicalShape(view View, axis TableAxis) (logicalLen int, remap Remap) {
	if rv, ok := view.(RemappedView); ok {
		if axis == Rows {
			return rv.LogicalNumRows(), rv.RowRemap()
		}
		return rv.LogicalNumCols(), rv.ColumnRemap()
	}
	if axis == Rows {
		return view.NumRows(), Pristine{}
	}
	return len(view.Columns()), Pristine{}
}
