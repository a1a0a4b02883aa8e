package tableaxis

// MouseMoveEpsilon is the distance in pixels from the middle
// of a border within which PixelNearBorder reports a hit.
const MouseMoveEpsilon = 3.0

var (
	// DefaultRowHeaderWidth is the width of the header column
	// that labels the rows of a table.
	DefaultRowHeaderWidth = 100.0

	// DefaultColHeaderHeight is the height of the header row
	// that labels the columns of a table.
	DefaultColHeaderHeight = 25.0
)
