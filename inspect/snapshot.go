package inspect

import (
	"fmt"
	"strings"
	"time"

	"tagmore/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state (e.g., "default", "loading", "popover").
	State string `json:"state"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// OverlayType is the type of overlay if one is displayed.
	OverlayType string `json:"overlay_type,omitempty"`

	// Source is the tag file shown, empty for a generated board.
	Source string `json:"source,omitempty"`

	// RowCount is the total number of rows.
	RowCount int `json:"row_count"`

	// SelectedIndex is the currently selected row index.
	SelectedIndex int `json:"selected_index"`

	// Measurer is the name of the active width oracle.
	Measurer string `json:"measurer"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// RowWidth is the usable width of a board row.
	RowWidth int `json:"row_width"`

	// NameWidth is the row name column width.
	NameWidth int `json:"name_width"`

	// TagWidth is the container width handed to the overflow layout.
	TagWidth int `json:"tag_width"`

	// BoardHeight is the height of the row band.
	BoardHeight int `json:"board_height"`

	// MenuHeight is the menu height.
	MenuHeight int `json:"menu_height"`

	// UseVerticalStack indicates if names sit above their tags.
	UseVerticalStack bool `json:"use_vertical_stack"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideDescriptions bool `json:"hide_descriptions"`
	CompactChips     bool `json:"compact_chips"`
	HideRowNumbers   bool `json:"hide_row_numbers"`
	SingleLineMenu   bool `json:"single_line_menu"`
	HideStatusLine   bool `json:"hide_status_line"`
	ShowMinWarning   bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:             c.Mode.String(),
		RowWidth:         c.RowWidth,
		NameWidth:        c.NameWidth,
		TagWidth:         c.TagWidth,
		BoardHeight:      c.BoardHeight,
		MenuHeight:       c.MenuHeight,
		UseVerticalStack: c.UseVerticalStack,
		Degradation: DegradationInfo{
			HideDescriptions: d.HideDescriptions,
			CompactChips:     d.CompactChips,
			HideRowNumbers:   d.HideRowNumbers,
			SingleLineMenu:   d.SingleLineMenu,
			HideStatusLine:   d.HideStatusLine,
			ShowMinWarning:   d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_descriptions", Threshold: layout.DescriptionHideHeight, Active: d.HideDescriptions, Dimension: "height"},
		{Name: "compact_chips", Threshold: layout.CompactChipsWidth, Active: d.CompactChips, Dimension: "width"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "hide_status_line", Threshold: layout.StatusHideHeight, Active: d.HideStatusLine, Dimension: "height"},
		{Name: "vertical_stack", Threshold: layout.MinWidth, Active: d.UseVerticalStack, Dimension: "width"},
	}

	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Columns: name=%d tags=%d (row %d)\n", s.Layout.NameWidth, s.Layout.TagWidth, s.Layout.RowWidth))
	b.WriteString(fmt.Sprintf("Rows: %d, selected %d\n", s.AppState.RowCount, s.AppState.SelectedIndex))
	b.WriteString(fmt.Sprintf("Vertical Stack: %v\n", s.Layout.UseVerticalStack))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if hidden, ok := node.State["hidden"]; ok && node.Type == TypeTagMore {
		b.WriteString(fmt.Sprintf(" visible=%v hidden=%v", node.State["visible"], hidden))
	}

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
