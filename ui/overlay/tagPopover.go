package overlay

import (
	"fmt"
	"strings"
	"tagmore/inspect"
	"tagmore/ui"
	"tagmore/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// popoverHeaderLines is the title line plus the blank line below it.
const popoverHeaderLines = 2

// TagPopover lists every tag of a row, wrapped over as many lines as needed.
// It is the expanded view behind a row's "+N" indicator.
type TagPopover struct {
	Dismissed bool

	title        string
	items        []layout.Item
	hidden       int
	gap          int
	maxItemWidth int
	measurer     layout.Measurer

	width, height int
	lines         [][]layout.Item
	offset        int
}

// NewTagPopover creates a popover for a row. hidden is the number of tags the
// row currently hides behind its indicator.
func NewTagPopover(title string, items []layout.Item, hidden, gap, maxItemWidth int, m layout.Measurer) *TagPopover {
	p := &TagPopover{
		title:        title,
		items:        items,
		hidden:       hidden,
		gap:          max(gap, 0),
		maxItemWidth: max(maxItemWidth, 0),
		measurer:     m,
	}
	p.SetSize(layout.PopoverMaxWidth+layout.PopoverMargin*2, layout.PopoverMaxHeight+layout.PopoverMargin*2)
	return p
}

// SetSize fits the popover into a terminal of the given size and rewraps the tags.
func (p *TagPopover) SetSize(termWidth, termHeight int) {
	frameW, frameH := ui.OverlayStyle().GetFrameSize()

	preferredW := layout.PopoverMaxWidth
	p.width, _ = layout.ComputePopoverSize(termWidth, termHeight, preferredW, 0)
	inner := max(p.width-frameW, 1)

	p.lines = layout.WrapLines(p.items, layout.OverflowConfig{
		ContainerWidth: inner,
		Gap:            p.gap,
		MaxItemWidth:   p.maxItemWidth,
	}, p.measurer)

	preferredH := len(p.lines) + popoverHeaderLines + frameH
	_, p.height = layout.ComputePopoverSize(termWidth, termHeight, preferredW, preferredH)
	p.clampOffset()
}

func (p *TagPopover) visibleLines() int {
	_, frameH := ui.OverlayStyle().GetFrameSize()
	avail := p.height - frameH - popoverHeaderLines
	if len(p.lines) > avail {
		// Leave room for the scroll position line.
		avail--
	}
	return max(avail, 1)
}

func (p *TagPopover) clampOffset() {
	p.offset = max(0, min(p.offset, len(p.lines)-p.visibleLines()))
}

// HandleKeyPress processes a key press. Returns true if the popover should close.
func (p *TagPopover) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		p.offset--
		p.clampOffset()
	case "down", "j":
		p.offset++
		p.clampOffset()
	case "esc", "enter", " ", "q":
		p.Dismissed = true
		return true
	}
	return false
}

// Lines returns the wrapped tag lines.
func (p *TagPopover) Lines() [][]layout.Item {
	return p.lines
}

// Items returns every tag shown by the popover.
func (p *TagPopover) Items() []layout.Item {
	return p.items
}

func (p *TagPopover) Size() (int, int) {
	return p.width, p.height
}

func (p *TagPopover) renderLine(line []layout.Item) string {
	chips := make([]string, len(line))
	for i, item := range line {
		chips[i] = ui.RenderChip(ui.ChipStyles.Chip, item.Name, p.maxItemWidth)
	}
	return strings.Join(chips, strings.Repeat(" ", p.gap))
}

// Render renders the popover box.
func (p *TagPopover) Render() string {
	style := ui.OverlayStyle()
	inner := max(p.width-style.GetHorizontalFrameSize(), 1)

	header := ui.TextStyles.Title.Render(p.title) +
		ui.TextStyles.Muted.Render(fmt.Sprintf("  %d tags", len(p.items)))
	if p.hidden > 0 {
		header += ui.TextStyles.Muted.Render(fmt.Sprintf(", %d hidden", p.hidden))
	}

	var b strings.Builder
	b.WriteString(truncate.String(header, uint(inner)))
	b.WriteString("\n")

	end := min(p.offset+p.visibleLines(), len(p.lines))
	for i := p.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(truncate.String(p.renderLine(p.lines[i]), uint(inner)))
	}
	if len(p.items) == 0 {
		b.WriteString("\n")
		b.WriteString(ui.TextStyles.Muted.Render("no tags"))
	}

	if len(p.lines) > p.visibleLines() {
		b.WriteString("\n")
		b.WriteString(ui.TextStyles.Muted.Render(
			fmt.Sprintf("(%d-%d of %d lines)", p.offset+1, end, len(p.lines))))
	}

	return style.Width(p.width - style.GetHorizontalBorderSize()).Render(b.String())
}

// InspectNode implements inspect.Introspectable. Bounds are the popover's own
// size; its position depends on the terminal it is placed over.
func (p *TagPopover) InspectNode() *inspect.Node {
	w, h := p.Size()
	node := inspect.NewNode(inspect.TypePopover).
		WithID(p.title).
		WithBounds(0, 0, w, h).
		WithState("lines", len(p.lines)).
		WithState("offset", p.offset).
		WithState("hidden", p.hidden)
	for _, item := range p.items {
		text := ui.ChipText(ui.ChipStyles.Chip, item.Name, p.maxItemWidth)
		chip := ui.RenderChip(ui.ChipStyles.Chip, item.Name, p.maxItemWidth)
		node.AddChild(inspect.NewChipNode(item, text, lipgloss.Width(text), lipgloss.Width(chip)))
	}
	return node
}
