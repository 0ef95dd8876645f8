package layout

// Degradation holds flags indicating which board features should be hidden or
// simplified. Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	HideDescriptions bool // Hide the description line under each row (height < 24)
	CompactChips     bool // Render chips without padding (width < 80)
	HideRowNumbers   bool // Drop the " 1. " prefix (mode below full)

	SingleLineMenu bool // Menu collapses to one line (height < 20)
	HideStatusLine bool // Drop the status line (height < 14)

	ShowMinWarning   bool // Terminal too small warning
	UseVerticalStack bool // Names above tags (width < 60)
}

// Threshold constants for degradation
const (
	DescriptionHideHeight = 24
	CompactChipsWidth     = 80
	SingleLineMenuHeight  = 20
	StatusHideHeight      = 14
)

// ComputeDegradation calculates which board features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideDescriptions: c.TerminalHeight < DescriptionHideHeight,
		CompactChips:     c.TerminalWidth < CompactChipsWidth,
		HideRowNumbers:   !c.ShowRowNumbers,

		SingleLineMenu: c.TerminalHeight < SingleLineMenuHeight,
		HideStatusLine: c.TerminalHeight < StatusHideHeight,

		ShowMinWarning:   c.ShowMinWarning,
		UseVerticalStack: c.UseVerticalStack,
	}
}

// RowHeight returns the number of lines a board row occupies.
func (d Degradation) RowHeight() int {
	h := 1
	if d.UseVerticalStack {
		h++
	}
	if !d.HideDescriptions {
		h++
	}
	return h
}

// ShouldShowDescription returns true if row descriptions should be shown.
func (d Degradation) ShouldShowDescription() bool {
	return !d.HideDescriptions
}

// VisibleRows returns how many rows fit in a board of the given height.
func (d Degradation) VisibleRows(boardHeight int) int {
	return max(boardHeight/d.RowHeight(), 0)
}
