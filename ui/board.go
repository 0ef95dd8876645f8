package ui

import (
	"fmt"
	"strings"
	"tagmore/inspect"
	"tagmore/log"
	"tagmore/tagset"
	"tagmore/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// boardRow pairs a tag row with the widget laying out its tags.
type boardRow struct {
	row  tagset.Row
	tags *TagMore
}

// Board is the scrolling list of tag rows. Every row shares the same gap,
// maximum item width and measurer; the tag column width comes from the
// terminal size via layout.ComputeConstraints.
type Board struct {
	title       string
	source      string
	rows        []*boardRow
	selectedIdx int
	offset      int

	width, height int
	sized         bool
	constraints   layout.Constraints
	degradation   layout.Degradation

	gap          int
	maxItemWidth int
	measurerName string
	eastAsian    bool
	compact      bool
	measurer     *layout.CachedMeasurer
}

// NewBoard creates an empty board. It fails only for an unknown measurer name.
func NewBoard(gap, maxItemWidth int, measurerName string, eastAsian bool) (*Board, error) {
	b := &Board{
		gap:          max(gap, 0),
		maxItemWidth: max(maxItemWidth, 0),
		measurerName: measurerName,
		eastAsian:    eastAsian,
	}
	if err := b.rebuildMeasurer(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) rebuildMeasurer() error {
	m, err := layout.NewMeasurer(b.measurerName, b.eastAsian, ChipStyle(b.compact))
	if err != nil {
		return err
	}
	b.measurer = layout.NewCachedMeasurer(m)
	for _, r := range b.rows {
		r.tags.SetMeasurer(b.measurer)
	}
	return nil
}

func (b *Board) newTagMore(items []layout.Item) *TagMore {
	t := NewTagMore(b.gap, b.maxItemWidth, b.measurer)
	t.SetCompact(b.compact)
	if b.sized {
		t.SetWidth(b.constraints.TagWidth)
	}
	t.SetItems(items)
	return t
}

// SetBoard replaces the rows. The selection follows the previously selected
// row by name when it still exists.
func (b *Board) SetBoard(board *tagset.Board) {
	var selectedName string
	if row := b.SelectedRow(); row != nil {
		selectedName = row.Name
	}

	b.rows = b.rows[:0]
	b.title, b.source = "", ""
	if board != nil {
		b.title = board.Title
		b.source = board.Source
		for _, row := range board.Rows {
			b.rows = append(b.rows, &boardRow{row: row, tags: b.newTagMore(row.Tags)})
		}
	}

	b.selectedIdx = 0
	for i, r := range b.rows {
		if r.row.Name == selectedName {
			b.selectedIdx = i
			break
		}
	}

	// Longer names may change the column split.
	if b.sized {
		b.SetSize(b.width, b.height)
	}
	b.adjustScroll()
}

// SetSize applies a terminal size. It is the only place the tag column width
// changes, so callers debounce it.
func (b *Board) SetSize(width, height int) {
	b.width, b.height = width, height
	b.sized = true
	b.constraints = layout.ComputeConstraints(width, height, b.longestName())
	b.degradation = layout.ComputeDegradation(b.constraints)

	if b.degradation.CompactChips != b.compact {
		b.compact = b.degradation.CompactChips
		if err := b.rebuildMeasurer(); err != nil {
			log.ErrorLog.Printf("could not rebuild measurer: %v", err)
		}
	}

	for _, r := range b.rows {
		r.tags.SetCompact(b.compact)
		r.tags.SetWidth(b.constraints.TagWidth)
	}
	log.LayoutTrace("board: %dx%d mode=%s name=%d tags=%d compact=%v",
		width, height, b.constraints.Mode, b.constraints.NameWidth, b.constraints.TagWidth, b.compact)
	b.adjustScroll()
}

func (b *Board) longestName() int {
	longest := 0
	for _, r := range b.rows {
		longest = max(longest, lipgloss.Width(r.row.Name))
	}
	return longest
}

// SetGap changes the gap of every row. Returns the applied value.
func (b *Board) SetGap(gap int) int {
	b.gap = max(gap, 0)
	for _, r := range b.rows {
		r.tags.SetGap(b.gap)
	}
	return b.gap
}

// SetMaxItemWidth changes the chip width cap of every row. Returns the applied value.
func (b *Board) SetMaxItemWidth(width int) int {
	b.maxItemWidth = max(width, 0)
	for _, r := range b.rows {
		r.tags.SetMaxItemWidth(b.maxItemWidth)
	}
	return b.maxItemWidth
}

// SetMeasurer switches the width oracle by name.
func (b *Board) SetMeasurer(name string) error {
	prev := b.measurerName
	b.measurerName = name
	if err := b.rebuildMeasurer(); err != nil {
		b.measurerName = prev
		return err
	}
	return nil
}

func (b *Board) Gap() int                        { return b.gap }
func (b *Board) MaxItemWidth() int               { return b.maxItemWidth }
func (b *Board) MeasurerName() string            { return b.measurerName }
func (b *Board) Title() string                   { return b.title }
func (b *Board) Source() string                  { return b.source }
func (b *Board) NumRows() int                    { return len(b.rows) }
func (b *Board) SelectedIndex() int              { return b.selectedIdx }
func (b *Board) Constraints() layout.Constraints { return b.constraints }
func (b *Board) Degradation() layout.Degradation { return b.degradation }

// MeasureCacheSize returns the number of label widths currently cached.
func (b *Board) MeasureCacheSize() int {
	return b.measurer.Len()
}

// Up selects the previous row.
func (b *Board) Up() {
	if len(b.rows) == 0 {
		return
	}
	if b.selectedIdx > 0 {
		b.selectedIdx--
	}
	b.adjustScroll()
}

// Down selects the next row.
func (b *Board) Down() {
	if len(b.rows) == 0 {
		return
	}
	if b.selectedIdx < len(b.rows)-1 {
		b.selectedIdx++
	}
	b.adjustScroll()
}

// SelectedRow returns the selected row, or nil for an empty board.
func (b *Board) SelectedRow() *tagset.Row {
	if len(b.rows) == 0 {
		return nil
	}
	return &b.rows[b.selectedIdx].row
}

// SelectedTags returns the tag widget of the selected row, or nil.
func (b *Board) SelectedTags() *TagMore {
	if len(b.rows) == 0 {
		return nil
	}
	return b.rows[b.selectedIdx].tags
}

// visibleRows is the number of rows that fit in the board band. Before the
// first size every row is rendered.
func (b *Board) visibleRows() int {
	if !b.sized {
		return len(b.rows)
	}
	return max(b.degradation.VisibleRows(b.constraints.BoardHeight), 1)
}

// adjustScroll keeps the selected row inside the visible window.
func (b *Board) adjustScroll() {
	visible := b.visibleRows()
	if b.selectedIdx < b.offset {
		b.offset = b.selectedIdx
	} else if b.selectedIdx >= b.offset+visible {
		b.offset = b.selectedIdx - visible + 1
	}
	b.offset = clampInt(b.offset, 0, max(len(b.rows)-visible, 0))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// rowPrefix returns the " 1. " number prefix, or "" when numbers are hidden.
func (b *Board) rowPrefix(idx int) string {
	if b.degradation.HideRowNumbers || !b.sized {
		return ""
	}
	prefix := fmt.Sprintf("%3d.", idx)
	return lipgloss.PlaceHorizontal(layout.RowNumberWidth, lipgloss.Left, prefix)
}

// fitLine clips a rendered line to width cells and pads it to exactly width.
// A single chip wider than the tag column is cut here, at render time.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(line) > width {
		line = truncate.String(line, uint(width))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, line)
}

func fitText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), Ellipsis)
}

func (b *Board) renderRow(idx int, r *boardRow, selected bool) string {
	c := b.constraints
	rowWidth := c.RowWidth
	if !b.sized {
		rowWidth = 0
	}

	prefix := b.rowPrefix(idx + 1)
	indent := strings.Repeat(" ", lipgloss.Width(prefix))

	var lines []string
	name := RowStyles.Name.Render(fitText(r.row.Name, c.NameWidth))
	if !b.sized {
		name = RowStyles.Name.Render(r.row.Name)
	}

	switch {
	case !b.sized:
		lines = append(lines, name+strings.Repeat(" ", layout.ColumnGap)+r.tags.View())
	case b.degradation.UseVerticalStack:
		lines = append(lines, prefix+name, indent+r.tags.View())
	default:
		name = lipgloss.PlaceHorizontal(c.NameWidth, lipgloss.Left, name)
		lines = append(lines, prefix+name+strings.Repeat(" ", layout.ColumnGap)+r.tags.View())
	}

	if r.row.Description != "" && (!b.sized || b.degradation.ShouldShowDescription()) {
		descWidth := max(rowWidth-lipgloss.Width(indent), 0)
		desc := r.row.Description
		if b.sized {
			desc = fitText(desc, descWidth)
		}
		lines = append(lines, indent+TextStyles.Secondary.Render(desc))
	} else if b.sized && b.degradation.ShouldShowDescription() {
		lines = append(lines, "")
	}

	if b.sized {
		for i := range lines {
			lines[i] = fitLine(lines[i], rowWidth)
		}
	}

	style := RowStyles.Normal
	if selected {
		style = RowStyles.Selected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// String renders the title and the visible window of rows.
func (b *Board) String() string {
	defer log.GetProfiler().StartRender("board")()

	var sb strings.Builder
	title := b.title
	if title == "" {
		title = "tags"
	}
	header := TextStyles.Title.Render(" "+title+" ") +
		TextStyles.Muted.Render(fmt.Sprintf(" %d rows", len(b.rows)))
	if b.sized {
		header = fitLine(header, b.constraints.TerminalWidth)
	}
	sb.WriteString(header)

	if len(b.rows) == 0 {
		sb.WriteString("\n")
		sb.WriteString(TextStyles.Muted.Render(" no rows"))
	}

	end := min(b.offset+b.visibleRows(), len(b.rows))
	for i := b.offset; i < end; i++ {
		sb.WriteString("\n")
		sb.WriteString(b.renderRow(i, b.rows[i], i == b.selectedIdx))
	}

	if !b.sized {
		return sb.String()
	}
	height := b.constraints.HeaderHeight + b.constraints.BoardHeight
	return lipgloss.Place(b.width, height, lipgloss.Left, lipgloss.Top, sb.String())
}

// InspectNode implements inspect.Introspectable.
func (b *Board) InspectNode() *inspect.Node {
	node := inspect.NewNode(inspect.TypeBoard).
		WithBounds(0, 0, b.width, b.constraints.HeaderHeight+b.constraints.BoardHeight).
		WithState("title", b.title).
		WithState("row_count", len(b.rows)).
		WithState("selected", b.selectedIdx).
		WithState("offset", b.offset).
		WithState("gap", b.gap).
		WithState("max_item_width", b.maxItemWidth).
		WithState("measurer", b.measurerName).
		WithState("measure_cache", b.measurer.Len())

	end := min(b.offset+b.visibleRows(), len(b.rows))
	rowHeight := b.degradation.RowHeight()
	for i := b.offset; i < end; i++ {
		r := b.rows[i]
		child := inspect.NewNode(inspect.TypeRow).
			WithID(r.row.Name).
			WithBounds(0, b.constraints.HeaderHeight+(i-b.offset)*rowHeight, b.width, rowHeight).
			WithState("selected", i == b.selectedIdx).
			AddChild(r.tags.InspectNode())
		if text := fitText(r.row.Name, b.constraints.NameWidth); b.sized && text != r.row.Name {
			child.WithTruncation(lipgloss.Width(r.row.Name), lipgloss.Width(text), true)
		}
		node.AddChild(child)
	}
	return node
}
