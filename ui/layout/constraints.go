package layout

// Constraints holds the computed geometry of the board screen.
type Constraints struct {
	TerminalWidth  int
	TerminalHeight int

	Mode LayoutMode

	// Row geometry. TagWidth is the container width handed to ComputeOverflow.
	RowWidth  int
	NameWidth int
	TagWidth  int

	// Vertical bands
	HeaderHeight int
	BoardHeight  int
	StatusHeight int
	MenuHeight   int

	UseVerticalStack bool // Name on its own line above the tags
	ShowMinWarning   bool // Terminal is below minimum size
	ShowRowNumbers   bool
}

// ComputeConstraints calculates the board geometry for the given terminal size
// and the width of the longest row name.
func ComputeConstraints(width, height, longestName int) Constraints {
	c := Constraints{
		TerminalWidth:  max(width, 0),
		TerminalHeight: max(height, 0),
	}

	c.Mode = DetermineMode(c.TerminalWidth, c.TerminalHeight)
	c.ShowMinWarning = c.TerminalWidth < MinWidth || c.TerminalHeight < MinHeight
	c.ShowRowNumbers = c.Mode == LayoutFull

	c.HeaderHeight = HeaderHeight
	if c.TerminalHeight >= StatusHideHeight {
		c.StatusHeight = StatusHeight
	}
	c.MenuHeight = computeMenuHeight(c.Mode)
	c.BoardHeight = max(c.TerminalHeight-c.HeaderHeight-c.StatusHeight-c.MenuHeight, 0)

	c.RowWidth = max(c.TerminalWidth-RowPadding, 0)
	prefix := 0
	if c.ShowRowNumbers {
		prefix = RowNumberWidth
	}

	if c.Mode == LayoutMinimal && c.TerminalWidth < MinWidth {
		c.UseVerticalStack = true
		c.NameWidth = max(c.RowWidth-prefix, 0)
		c.TagWidth = c.NameWidth
		return c
	}

	c.NameWidth = computeNameWidth(c.RowWidth, longestName, c.Mode)
	c.TagWidth = max(c.RowWidth-prefix-c.NameWidth-ColumnGap, 0)
	return c
}

// computeNameWidth sizes the name column to the longest name within the mode's bounds.
func computeNameWidth(rowWidth, longestName int, mode LayoutMode) int {
	maxWidth := NameMaxWidth
	switch mode {
	case LayoutCompact, LayoutMinimal:
		maxWidth = NameCompactWidth
	case LayoutStandard:
		maxWidth = min(NameMaxWidth, rowWidth/4)
	case LayoutFull:
		maxWidth = min(NameMaxWidth, rowWidth/3)
	}
	return clamp(longestName, NameMinWidth, max(maxWidth, NameMinWidth))
}

func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// ComputePopoverSize calculates constrained popover dimensions.
func ComputePopoverSize(termWidth, termHeight, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - PopoverMargin*2
	maxH := termHeight - PopoverMargin*2

	w := clamp(preferredWidth, PopoverMinWidth, min(maxW, PopoverMaxWidth))
	h := clamp(preferredHeight, PopoverMinHeight, min(maxH, PopoverMaxHeight))

	return w, h
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
