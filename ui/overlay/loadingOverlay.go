package overlay

import (
	"path/filepath"
	"tagmore/ui"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// LoadingOverlay is shown while a tag file is read and parsed.
type LoadingOverlay struct {
	path    string
	spinner *spinner.Model
	width   int
}

// NewLoadingOverlay creates a loading box for the given tag file. The spinner
// is owned by the caller, which forwards its tick messages.
func NewLoadingOverlay(path string, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{
		path:    path,
		spinner: spinner,
		width:   40,
	}
}

// SetWidth sets the overlay width
func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

// Path returns the file being loaded.
func (l *LoadingOverlay) Path() string {
	return l.path
}

// Render renders the loading overlay
func (l *LoadingOverlay) Render() string {
	content := ui.TextStyles.Title.Render("Loading tags") + "\n\n"
	if l.spinner != nil {
		content += l.spinner.View() + " "
	}
	content += ui.TextStyles.Muted.Render(filepath.Base(l.path))

	return ui.OverlayStyle().
		Width(l.width).
		Render(lipgloss.NewStyle().MaxWidth(max(l.width-4, 1)).Render(content))
}
