package ui

import (
	"tagmore/inspect"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Semantic Color Palette
// Chips and the overflow indicator differ in both color and shape ("+N" text),
// so hidden tags stay recognisable without color.

// Chip colors
var (
	// ChipForeground is the label color inside a chip
	ChipForeground = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// ChipBackground is the chip fill
	ChipBackground = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}

	// IndicatorForeground is the "+N" label color
	IndicatorForeground = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// IndicatorBackground is the "+N" fill
	IndicatorBackground = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}
)

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for row descriptions
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for overlays
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BackgroundSelected is for the selected row
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}

	// StatusError colors load and copy failures
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusSuccess colors confirmations
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
)

// Ellipsis is appended to chip labels cut at the maximum item width.
const Ellipsis = "…"

// ChipStyles contains the chip styles for regular and compact boards.
// Compact chips drop the horizontal padding.
var ChipStyles = struct {
	Chip             lipgloss.Style
	Indicator        lipgloss.Style
	CompactChip      lipgloss.Style
	CompactIndicator lipgloss.Style
}{
	Chip: lipgloss.NewStyle().
		Foreground(ChipForeground).
		Background(ChipBackground).
		Padding(0, 1),
	Indicator: lipgloss.NewStyle().
		Foreground(IndicatorForeground).
		Background(IndicatorBackground).
		Bold(true).
		Padding(0, 1),
	CompactChip: lipgloss.NewStyle().
		Foreground(ChipForeground).
		Background(ChipBackground),
	CompactIndicator: lipgloss.NewStyle().
		Foreground(IndicatorForeground).
		Background(IndicatorBackground).
		Bold(true),
}

// ChipStyle returns the chip style for regular or compact boards.
func ChipStyle(compact bool) lipgloss.Style {
	if compact {
		return ChipStyles.CompactChip
	}
	return ChipStyles.Chip
}

// IndicatorStyle returns the "+N" chip style for regular or compact boards.
func IndicatorStyle(compact bool) lipgloss.Style {
	if compact {
		return ChipStyles.CompactIndicator
	}
	return ChipStyles.Indicator
}

// ChipText cuts a label so that its chip rendered with style is at most
// maxWidth cells wide. When maxWidth leaves no room inside the chip frame the
// label is cut to maxWidth and the chip is drawn without its frame.
func ChipText(style lipgloss.Style, name string, maxWidth int) string {
	budget := maxWidth - style.GetHorizontalFrameSize()
	if !chipFramed(style, maxWidth) {
		budget = maxWidth
	}
	if budget <= 0 {
		return ""
	}
	if lipgloss.Width(name) <= budget {
		return name
	}
	return truncate.StringWithTail(name, uint(budget), Ellipsis)
}

// RenderChip renders a label as a chip no wider than maxWidth cells.
func RenderChip(style lipgloss.Style, name string, maxWidth int) string {
	text := ChipText(style, name, maxWidth)
	if !chipFramed(style, maxWidth) {
		style = style.UnsetPadding()
	}
	return style.Render(text)
}

func chipFramed(style lipgloss.Style, maxWidth int) bool {
	return maxWidth > style.GetHorizontalFrameSize()
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Title:     lipgloss.NewStyle().Foreground(Primary).Bold(true),
	Error:     lipgloss.NewStyle().Foreground(StatusError),
	Success:   lipgloss.NewStyle().Foreground(StatusSuccess),
}

// RowStyles contains styles for board rows
var RowStyles = struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Name     lipgloss.Style
}{
	Normal:   lipgloss.NewStyle().Padding(0, 1),
	Selected: lipgloss.NewStyle().Padding(0, 1).Background(BackgroundSelected),
	Name:     lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
}

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, 2).
		Background(BackgroundSubtle)
}

func init() {
	inspect.RegisterStyle("chip", ChipStyles.Chip)
	inspect.RegisterStyle("chip.indicator", ChipStyles.Indicator)
	inspect.RegisterStyle("chip.compact", ChipStyles.CompactChip)
	inspect.RegisterStyle("chip.compact.indicator", ChipStyles.CompactIndicator)
	inspect.RegisterStyle("row.selected", RowStyles.Selected)
	inspect.RegisterStyle("overlay", OverlayStyle())
}
