package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyToggle
	KeyEsc
	KeyGapUp
	KeyGapDown
	KeyWidthUp
	KeyWidthDown
	KeyMeasurer
	KeyCopy
	KeyReload
	KeyOpen
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"enter":  KeyToggle,
	" ":      KeyToggle,
	"esc":    KeyEsc,
	"+":      KeyGapUp,
	"=":      KeyGapUp,
	"-":      KeyGapDown,
	"]":      KeyWidthUp,
	"[":      KeyWidthDown,
	"m":      KeyMeasurer,
	"c":      KeyCopy,
	"r":      KeyReload,
	"o":      KeyOpen,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyToggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵", "all tags"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyGapUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "gap"),
	),
	KeyGapDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "gap"),
	),
	KeyWidthUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "wider"),
	),
	KeyWidthDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "narrower"),
	),
	KeyMeasurer: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "measurer"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	KeyOpen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
