package ui

import (
	"strings"
	"tagmore/inspect"
	"tagmore/log"
	"tagmore/ui/layout"

	"github.com/charmbracelet/lipgloss"
)

// TagMore renders a list of tags on a single line, replacing the tags that do
// not fit with a "+N" chip. The layout is recomputed lazily: setters only mark
// the widget dirty and the next Result or View call recomputes once.
type TagMore struct {
	items        []layout.Item
	gap          int
	maxItemWidth int
	width        int
	measured     bool
	measurer     layout.Measurer
	compact      bool

	dirty      bool
	result     layout.OverflowResult
	recomputes int
}

// NewTagMore creates a widget with an unmeasured container. Until SetWidth is
// called every tag is shown.
func NewTagMore(gap, maxItemWidth int, measurer layout.Measurer) *TagMore {
	return &TagMore{
		gap:          max(gap, 0),
		maxItemWidth: max(maxItemWidth, 0),
		measurer:     measurer,
		dirty:        true,
	}
}

// SetItems replaces the tag list.
func (t *TagMore) SetItems(items []layout.Item) {
	t.items = items
	t.dirty = true
}

func (t *TagMore) SetGap(gap int) {
	gap = max(gap, 0)
	if gap == t.gap {
		return
	}
	t.gap = gap
	t.dirty = true
}

func (t *TagMore) SetMaxItemWidth(width int) {
	width = max(width, 0)
	if width == t.maxItemWidth {
		return
	}
	t.maxItemWidth = width
	t.dirty = true
}

// SetWidth sets the container width in cells. Negative widths count as zero.
func (t *TagMore) SetWidth(width int) {
	width = max(width, 0)
	if t.measured && width == t.width {
		return
	}
	t.width = width
	t.measured = true
	t.dirty = true
}

// ClearWidth marks the container as unmeasured again, which shows every tag.
func (t *TagMore) ClearWidth() {
	if !t.measured {
		return
	}
	t.width = 0
	t.measured = false
	t.dirty = true
}

// SetMeasurer swaps the width oracle. A nil measurer makes every tag count as
// the maximum item width.
func (t *TagMore) SetMeasurer(m layout.Measurer) {
	t.measurer = m
	t.dirty = true
}

// SetCompact renders chips without padding. The caller is expected to pass a
// measurer built for the matching chip style.
func (t *TagMore) SetCompact(compact bool) {
	t.compact = compact
}

func (t *TagMore) Items() []layout.Item { return t.items }
func (t *TagMore) Gap() int             { return t.gap }
func (t *TagMore) MaxItemWidth() int    { return t.maxItemWidth }
func (t *TagMore) Width() int           { return t.width }
func (t *TagMore) Measured() bool       { return t.measured }

// Recomputes returns how many times the layout has been computed.
func (t *TagMore) Recomputes() int {
	return t.recomputes
}

// Result returns the current overflow layout, recomputing it if needed.
func (t *TagMore) Result() layout.OverflowResult {
	if t.dirty {
		t.result = layout.ComputeOverflow(t.items, t.config(), t.measurer)
		t.recomputes++
		t.dirty = false
	}
	return t.result
}

func (t *TagMore) config() layout.OverflowConfig {
	return layout.OverflowConfig{
		ContainerWidth: t.width,
		Unmeasured:     !t.measured,
		Gap:            t.gap,
		MaxItemWidth:   t.maxItemWidth,
	}
}

func (t *TagMore) chipStyle() lipgloss.Style {
	return ChipStyle(t.compact)
}

func (t *TagMore) indicatorStyle() lipgloss.Style {
	return IndicatorStyle(t.compact)
}


// View renders the visible chips separated by gap spaces, followed by the
// indicator chip when tags are hidden.
func (t *TagMore) View() string {
	defer log.GetProfiler().StartRender("tagmore")()

	res := t.Result()
	chips := make([]string, 0, len(res.Visible)+1)
	for _, item := range res.Visible {
		chips = append(chips, RenderChip(t.chipStyle(), item.Name, t.maxItemWidth))
	}
	if res.HiddenCount > 0 {
		chips = append(chips, t.indicatorStyle().Render(layout.IndicatorText(res.HiddenCount)))
	}
	return strings.Join(chips, strings.Repeat(" ", t.gap))
}

// HiddenItems returns the tags replaced by the indicator.
func (t *TagMore) HiddenItems() []layout.Item {
	res := t.Result()
	return t.items[len(res.Visible):]
}

// InspectNode implements inspect.Introspectable.
func (t *TagMore) InspectNode() *inspect.Node {
	res := t.Result()
	node := inspect.NewNode(inspect.TypeTagMore).
		WithBounds(0, 0, t.width, 1).
		WithState("measured", t.measured).
		WithState("gap", t.gap).
		WithState("max_item_width", t.maxItemWidth).
		WithState("visible", len(res.Visible)).
		WithState("hidden", res.HiddenCount).
		WithState("compact", t.compact).
		WithStyles(inspect.ExtractStyleInfo(t.chipStyle(), "chip"))

	for _, item := range res.Visible {
		text := ChipText(t.chipStyle(), item.Name, t.maxItemWidth)
		chip := RenderChip(t.chipStyle(), item.Name, t.maxItemWidth)
		node.AddChild(inspect.NewChipNode(item, text, lipgloss.Width(text), lipgloss.Width(chip)))
	}
	if res.HiddenCount > 0 {
		indicator := t.indicatorStyle().Render(layout.IndicatorText(res.HiddenCount))
		node.AddChild(inspect.NewIndicatorNode(res.HiddenCount, lipgloss.Width(indicator)))
	}
	return node
}
