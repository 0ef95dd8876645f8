package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal that still gets side-by-side rows.
	MinWidth = 60

	// CompactWidth triggers compact chips.
	CompactWidth = 80

	// StandardWidth is the threshold for the standard board layout.
	StandardWidth = 100

	// FullWidth is the threshold for the full layout with row numbers and wide names.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the smallest usable terminal height.
	MinHeight = 10

	// CompactHeight triggers compact rows.
	CompactHeight = 16

	// StandardHeight is the threshold for the standard board layout.
	StandardHeight = 24

	// FullHeight is the threshold for the full layout.
	FullHeight = 40
)

// Name column constraints
const (
	// NameMinWidth is the minimum width of the row name column.
	NameMinWidth = 12

	// NameMaxWidth keeps long names from starving the tag column.
	NameMaxWidth = 32

	// NameCompactWidth is the name column cap in compact mode.
	NameCompactWidth = 18
)

// Row geometry
const (
	// RowPadding is the horizontal padding of a board row (left + right).
	RowPadding = 2

	// ColumnGap separates the name column from the tag column.
	ColumnGap = 2

	// RowNumberWidth is the width of the " 1. " prefix when row numbers are shown.
	RowNumberWidth = 4
)

// Menu and status constraints
const (
	// MenuMinHeight is a single line of key hints.
	MenuMinHeight = 1

	// MenuStandardHeight leaves a blank line above the hints.
	MenuStandardHeight = 2

	// MenuMaxHeight centers the hints in a three line band.
	MenuMaxHeight = 3

	// StatusHeight is the height of the status line.
	StatusHeight = 1

	// HeaderHeight is the height of the board title.
	HeaderHeight = 1
)

// Popover constraints
const (
	// PopoverMaxWidth is the maximum popover width.
	PopoverMaxWidth = 72

	// PopoverMaxHeight is the maximum popover height.
	PopoverMaxHeight = 20

	// PopoverMinWidth is the minimum popover width.
	PopoverMinWidth = 24

	// PopoverMinHeight is the minimum popover height.
	PopoverMinHeight = 5

	// PopoverMargin is the minimum margin from terminal edges.
	PopoverMargin = 2
)
