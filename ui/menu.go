package ui

import (
	"strings"
	"tagmore/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateEmpty
	StatePopover
	StateSelector
)

// Key groups per state. The first group of each state is highlighted.
var (
	emptyMenuGroups = [][]keys.KeyName{
		{keys.KeyOpen, keys.KeyReload},
		{keys.KeyHelp, keys.KeyQuit},
	}
	defaultMenuGroups = [][]keys.KeyName{
		{keys.KeyToggle, keys.KeyCopy},
		{keys.KeyGapUp, keys.KeyGapDown, keys.KeyWidthUp, keys.KeyWidthDown, keys.KeyMeasurer},
		{keys.KeyUp, keys.KeyDown, keys.KeyOpen, keys.KeyReload, keys.KeyHelp, keys.KeyQuit},
	}
	popoverMenuGroups = [][]keys.KeyName{
		{keys.KeyEsc, keys.KeyCopy},
		{keys.KeyUp, keys.KeyDown},
	}
	selectorMenuGroups = [][]keys.KeyName{
		{keys.KeyToggle, keys.KeyEsc},
		{keys.KeyUp, keys.KeyDown},
	}
	// compactMenuGroups is used when the menu is limited to a single short line.
	compactMenuGroups = [][]keys.KeyName{
		{keys.KeyToggle},
		{keys.KeyHelp, keys.KeyQuit},
	}
)

type Menu struct {
	groups        [][]keys.KeyName
	height, width int
	state         MenuState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	return &Menu{
		groups:  emptyMenuGroups,
		state:   StateEmpty,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

func (m *Menu) State() MenuState {
	return m.state
}

// SetHasRows switches between the empty and default states, leaving overlay
// states untouched.
func (m *Menu) SetHasRows(hasRows bool) {
	if m.state == StatePopover || m.state == StateSelector {
		return
	}
	if hasRows {
		m.state = StateDefault
	} else {
		m.state = StateEmpty
	}
	m.updateOptions()
}

func (m *Menu) updateOptions() {
	switch m.state {
	case StateEmpty:
		m.groups = emptyMenuGroups
	case StateDefault:
		m.groups = defaultMenuGroups
	case StatePopover:
		m.groups = popoverMenuGroups
	case StateSelector:
		m.groups = selectorMenuGroups
	}
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Options returns the keys shown for the current state, in display order.
func (m *Menu) Options() []keys.KeyName {
	var out []keys.KeyName
	for _, g := range m.groups {
		out = append(out, g...)
	}
	return out
}

func (m *Menu) render(groups [][]keys.KeyName) string {
	var s strings.Builder
	for gi, group := range groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			kStyle, dStyle := keyStyle, descStyle
			if gi == 0 {
				kStyle, dStyle = actionGroupStyle, actionGroupStyle
			}
			if m.keyDown == k {
				kStyle = kStyle.Underline(true)
				dStyle = dStyle.Underline(true)
			}

			s.WriteString(kStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(dStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if gi != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	return s.String()
}

func (m *Menu) String() string {
	text := m.render(m.groups)
	if m.width > 0 && lipgloss.Width(text) > m.width && m.state == StateDefault {
		text = m.render(compactMenuGroups)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}
