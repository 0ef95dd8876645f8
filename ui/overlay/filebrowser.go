package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"tagmore/tagset"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// FileEntry represents a directory, a tag file, or a recent file in the browser
type FileEntry struct {
	Name     string
	Path     string
	IsDir    bool
	Expanded bool
	Depth    int
	Parent   *FileEntry
	Children []*FileEntry
	IsRecent bool // Shortcut to a recently opened file
}

// isTagFile reports whether the file has a tag file extension.
func isTagFile(name string) bool {
	_, err := tagset.FormatFromPath(name)
	return err == nil
}

// FileBrowserOverlay is a tree browser for picking a tag file
type FileBrowserOverlay struct {
	root         *FileEntry
	recent       []*FileEntry
	entries      []*FileEntry // Flattened list for display
	selectedIdx  int
	Submitted    bool
	Canceled     bool
	SelectedPath string
	width        int
	height       int
	scrollOffset int
	message      string
}

// NewFileBrowserOverlay creates a browser rooted at startPath. Recent files are
// listed above the tree.
func NewFileBrowserOverlay(startPath string, recent []string) (*FileBrowserOverlay, error) {
	fb := &FileBrowserOverlay{width: 60, height: 24}
	for _, path := range recent {
		fb.recent = append(fb.recent, &FileEntry{
			Name:     path,
			Path:     path,
			IsRecent: true,
		})
	}
	if err := fb.NavigateToPath(startPath); err != nil {
		return nil, err
	}
	return fb, nil
}

// loadChildren loads the subdirectories and tag files of a directory entry
func (fb *FileBrowserOverlay) loadChildren(entry *FileEntry) error {
	dirEntries, err := os.ReadDir(entry.Path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", entry.Path, err)
	}

	entry.Children = make([]*FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !de.IsDir() && !isTagFile(name) {
			continue
		}
		entry.Children = append(entry.Children, &FileEntry{
			Name:   name,
			Path:   filepath.Join(entry.Path, name),
			IsDir:  de.IsDir(),
			Depth:  entry.Depth + 1,
			Parent: entry,
		})
	}

	// Tag files first, then directories, each alphabetically
	sort.Slice(entry.Children, func(i, j int) bool {
		a, b := entry.Children[i], entry.Children[j]
		if a.IsDir != b.IsDir {
			return !a.IsDir
		}
		return a.Name < b.Name
	})
	return nil
}

// flattenEntries creates a flat list of entries for display
func (fb *FileBrowserOverlay) flattenEntries() {
	fb.entries = append(fb.entries[:0], fb.recent...)
	fb.flattenEntry(fb.root)
	if fb.selectedIdx >= len(fb.entries) {
		fb.selectedIdx = max(len(fb.entries)-1, 0)
	}
}

func (fb *FileBrowserOverlay) flattenEntry(entry *FileEntry) {
	fb.entries = append(fb.entries, entry)
	if entry.Expanded {
		for _, child := range entry.Children {
			fb.flattenEntry(child)
		}
	}
}

// SetSize sets the size of the file browser
func (fb *FileBrowserOverlay) SetSize(width, height int) {
	fb.width = width
	fb.height = height
	fb.adjustScroll()
}

func (fb *FileBrowserOverlay) selected() *FileEntry {
	if fb.selectedIdx < len(fb.entries) {
		return fb.entries[fb.selectedIdx]
	}
	return nil
}

func (fb *FileBrowserOverlay) move(delta int) {
	fb.selectedIdx = max(0, min(fb.selectedIdx+delta, len(fb.entries)-1))
	fb.adjustScroll()
}

func (fb *FileBrowserOverlay) expand(entry *FileEntry) {
	if !entry.IsDir || entry.Expanded {
		return
	}
	if entry.Children == nil {
		if err := fb.loadChildren(entry); err != nil {
			fb.message = err.Error()
			return
		}
	}
	entry.Expanded = true
	fb.flattenEntries()
}

// collapse folds an expanded directory, or moves the cursor to the parent.
func (fb *FileBrowserOverlay) collapse(entry *FileEntry) {
	if entry.IsRecent {
		return
	}
	if entry.IsDir && entry.Expanded && entry.Parent != nil {
		entry.Expanded = false
		fb.flattenEntries()
		return
	}
	for i, e := range fb.entries {
		if entry.Parent != nil && e == entry.Parent {
			fb.selectedIdx = i
			fb.adjustScroll()
			return
		}
	}
}

// HandleKeyPress processes a key press and updates the state accordingly.
// Returns true if the overlay should be closed.
func (fb *FileBrowserOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	fb.message = ""
	entry := fb.selected()

	switch msg.String() {
	case "up", "k":
		fb.move(-1)
	case "down", "j":
		fb.move(1)
	case "g":
		fb.move(-len(fb.entries))
	case "G":
		fb.move(len(fb.entries))
	case "right", "l":
		if entry != nil {
			fb.expand(entry)
		}
	case "left", "h":
		if entry != nil {
			fb.collapse(entry)
		}
	case "-", "u":
		if err := fb.GoUp(); err != nil {
			fb.message = err.Error()
		}
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			if err := fb.NavigateToPath(home); err != nil {
				fb.message = err.Error()
			}
		}
	case "enter":
		if entry == nil {
			return false
		}
		if !entry.IsDir {
			fb.SelectedPath = entry.Path
			fb.Submitted = true
			return true
		}
		if entry.Expanded && entry.Parent != nil {
			fb.collapse(entry)
		} else {
			fb.expand(entry)
		}
	case "esc", "q":
		fb.Canceled = true
		return true
	}
	return false
}

// adjustScroll adjusts the scroll offset to keep the selected item visible
func (fb *FileBrowserOverlay) adjustScroll() {
	visibleRows := fb.visibleRows()
	if fb.selectedIdx < fb.scrollOffset {
		fb.scrollOffset = fb.selectedIdx
	} else if fb.selectedIdx >= fb.scrollOffset+visibleRows {
		fb.scrollOffset = fb.selectedIdx - visibleRows + 1
	}
}

// visibleRows is the height minus title, path, separators, message, help, border and padding.
func (fb *FileBrowserOverlay) visibleRows() int {
	return max(fb.height-11, 3)
}

func (fb *FileBrowserOverlay) IsSubmitted() bool       { return fb.Submitted }
func (fb *FileBrowserOverlay) IsCanceled() bool        { return fb.Canceled }
func (fb *FileBrowserOverlay) GetSelectedPath() string { return fb.SelectedPath }

// Entries returns the flattened entries currently listed.
func (fb *FileBrowserOverlay) Entries() []*FileEntry {
	return fb.entries
}

// Render renders the file browser overlay
func (fb *FileBrowserOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	selectedStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("0")).Bold(true)
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#51bd73"))
	dirStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	recentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#51bd73")).Italic(true)
	messageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#de613e")).Italic(true)
	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	inner := max(fb.width-style.GetHorizontalFrameSize(), 10)
	separator := separatorStyle.Render(strings.Repeat("─", inner))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Open a Tag File") + "\n")
	b.WriteString(pathStyle.Render(truncate.StringWithTail(fb.root.Path, uint(inner), "…")) + "\n")
	b.WriteString(separator + "\n")

	end := min(fb.scrollOffset+fb.visibleRows(), len(fb.entries))
	for i := fb.scrollOffset; i < end; i++ {
		entry := fb.entries[i]

		var line string
		switch {
		case entry.IsRecent:
			line = "* " + entry.Path
		case entry.IsDir && entry.Expanded:
			line = strings.Repeat("  ", entry.Depth) + "v " + entry.Name + "/"
		case entry.IsDir:
			line = strings.Repeat("  ", entry.Depth) + "> " + entry.Name + "/"
		default:
			line = strings.Repeat("  ", entry.Depth) + "  " + entry.Name
		}
		line = truncate.StringWithTail(line, uint(inner), "…")

		switch {
		case i == fb.selectedIdx:
			line = selectedStyle.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Left, line))
		case entry.IsRecent:
			line = recentStyle.Render(line)
		case entry.IsDir:
			line = dirStyle.Render(line)
		default:
			line = fileStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(fb.entries) > fb.visibleRows() {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  (%d-%d of %d)", fb.scrollOffset+1, end, len(fb.entries))))
	}
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(fb.message) + "\n")
	b.WriteString(separator + "\n")
	b.WriteString(helpStyle.Render("↑/↓ move • ←/→ fold • enter open • - parent • ~ home • esc cancel"))

	return style.Width(fb.width - style.GetHorizontalBorderSize()).Render(b.String())
}

// NavigateToPath re-roots the tree at path, expanding ~ to the home directory
func (fb *FileBrowserOverlay) NavigateToPath(path string) error {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, path[1:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	root := &FileEntry{
		Name:  filepath.Base(absPath),
		Path:  absPath,
		IsDir: true,
	}
	if err := fb.loadChildren(root); err != nil {
		return err
	}
	root.Expanded = true

	fb.root = root
	fb.selectedIdx = len(fb.recent)
	fb.scrollOffset = 0
	fb.flattenEntries()
	// Start on the first tag file when there is one.
	for i := len(fb.recent); i < len(fb.entries); i++ {
		if !fb.entries[i].IsDir {
			fb.selectedIdx = i
			break
		}
	}
	fb.adjustScroll()
	return nil
}

// GoUp navigates to the parent directory
func (fb *FileBrowserOverlay) GoUp() error {
	parentPath := filepath.Dir(fb.root.Path)
	if parentPath == fb.root.Path {
		return nil
	}
	return fb.NavigateToPath(parentPath)
}
