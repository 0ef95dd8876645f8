package overlay

import (
	"strings"
	"tagmore/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MeasurerOption represents a selectable width oracle
type MeasurerOption struct {
	Name        string // layout.Measurer* constant
	Title       string // Display name
	Description string // When to use it
}

var measurerOptions = map[string]MeasurerOption{
	layout.MeasurerCells: {
		Name:        layout.MeasurerCells,
		Title:       "Cells",
		Description: "Terminal cells of the label, ANSI aware, plus chip padding.\nBest for: most terminals.",
	},
	layout.MeasurerRuneWidth: {
		Name:        layout.MeasurerRuneWidth,
		Title:       "Rune width",
		Description: "Unicode width tables, with optional East Asian ambiguous width.\nBest for: CJK locales.",
	},
	layout.MeasurerStyled: {
		Name:        layout.MeasurerStyled,
		Title:       "Styled",
		Description: "Renders each chip and measures the result.\nBest for: custom chip styles with borders.",
	},
}

// MeasurerSelectorOverlay lets the user switch the width oracle at runtime
type MeasurerSelectorOverlay struct {
	Dismissed bool
	Selected  string // The selected measurer name, empty when canceled
	options   []MeasurerOption
	current   string
	cursor    int
	width     int
}

// NewMeasurerSelectorOverlay creates a selector with the cursor on the current measurer
func NewMeasurerSelectorOverlay(current string) *MeasurerSelectorOverlay {
	m := &MeasurerSelectorOverlay{
		current: current,
		width:   60,
	}
	for i, name := range layout.MeasurerNames {
		m.options = append(m.options, measurerOptions[name])
		if name == current {
			m.cursor = i
		}
	}
	return m
}

// HandleKeyPress processes a key press and updates the state
func (m *MeasurerSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
		return false
	case "down", "j":
		m.moveCursor(1)
		return false
	case "enter", " ":
		m.Selected = m.options[m.cursor].Name
		m.Dismissed = true
		return true
	case "esc", "q":
		m.Dismissed = true
		return true
	default:
		return false
	}
}

// moveCursor moves the cursor up or down, wrapping around
func (m *MeasurerSelectorOverlay) moveCursor(delta int) {
	n := len(m.options)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Render renders the selector overlay
func (m *MeasurerSelectorOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		PaddingLeft(4)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Measure Tags With"))
	content.WriteString("\n\n")

	for i, opt := range m.options {
		prefix := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			prefix = "> "
			nameStyle = selectedStyle
		}

		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(opt.Title))
		if opt.Name == m.current {
			content.WriteString(" (current)")
		}
		content.WriteString("\n")

		for _, line := range strings.Split(opt.Description, "\n") {
			content.WriteString(descStyle.Render(line))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[Enter] Select  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(m.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (m *MeasurerSelectorOverlay) SetWidth(width int) {
	m.width = width
}

// GetSelected returns the selected measurer name
func (m *MeasurerSelectorOverlay) GetSelected() string {
	return m.Selected
}
