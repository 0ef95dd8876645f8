package overlay

import (
	"tagmore/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// TextOverlay shows a block of text until any key is pressed.
type TextOverlay struct {
	Dismissed bool
	// OnDismiss is called once when the overlay closes.
	OnDismiss func()

	content string
	width   int
}

func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content, width: 60}
}

// HandleKeyPress closes the overlay on any key. Returns true when closed.
func (t *TextOverlay) HandleKeyPress(tea.KeyMsg) bool {
	if !t.Dismissed {
		t.Dismissed = true
		if t.OnDismiss != nil {
			t.OnDismiss()
		}
	}
	return true
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

func (t *TextOverlay) Render() string {
	style := ui.OverlayStyle()
	return style.Width(max(t.width-style.GetHorizontalBorderSize(), 1)).Render(t.content)
}
