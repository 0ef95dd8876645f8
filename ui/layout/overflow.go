package layout

import (
	"strconv"
	"tagmore/log"

	"github.com/mattn/go-runewidth"
)

// Item is a single label laid out by ComputeOverflow.
type Item struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// OverflowConfig holds the sizing inputs for an overflow layout, in terminal cells.
type OverflowConfig struct {
	// ContainerWidth is the space available on the line.
	ContainerWidth int
	// Unmeasured means the container has not been sized yet. ContainerWidth
	// is ignored and every item is shown.
	Unmeasured bool
	// Gap is inserted between adjacent items and before the indicator.
	Gap int
	// MaxItemWidth caps the width of a single item.
	MaxItemWidth int
}

// OverflowResult is the outcome of an overflow layout. Visible is always a
// prefix of the input items.
type OverflowResult struct {
	Visible     []Item
	HiddenCount int
}

// Total returns the number of items the result was computed from.
func (r OverflowResult) Total() int {
	return len(r.Visible) + r.HiddenCount
}

// IndicatorText returns the label shown in place of hidden items.
func IndicatorText(hidden int) string {
	return "+" + strconv.Itoa(hidden)
}

// normalize clamps negative values to zero. Gap and MaxItemWidth are capped
// one cell past the container: anything wider already overflows on its own.
func (c OverflowConfig) normalize() OverflowConfig {
	c.ContainerWidth = max(c.ContainerWidth, 0)
	c.Gap = capPastContainer(max(c.Gap, 0), c.ContainerWidth)
	c.MaxItemWidth = capPastContainer(max(c.MaxItemWidth, 0), c.ContainerWidth)
	return c
}

func capPastContainer(v, container int) int {
	if v > container {
		return container + 1
	}
	return v
}

// ComputeOverflow decides how many items fit on one line of cfg.ContainerWidth
// cells, reserving room for a trailing "+N" indicator when some are hidden.
// Items are never reordered and at least one item is shown when the list is
// not empty, even if it overflows the container on its own.
//
// A nil measurer is treated as unavailable: every item is assumed to be
// cfg.MaxItemWidth wide.
func ComputeOverflow(items []Item, cfg OverflowConfig, m Measurer) OverflowResult {
	cfg = cfg.normalize()
	n := len(items)

	if n == 0 || cfg.Unmeasured {
		return OverflowResult{Visible: items}
	}

	// Worst case fits, so skip measuring entirely.
	if worstCaseFits(n, cfg) {
		return OverflowResult{Visible: items}
	}

	widths := make([]int, n)
	for i, item := range items {
		if m == nil {
			widths[i] = cfg.MaxItemWidth
			continue
		}
		widths[i] = clamp(m.Measure(item.Name), 0, cfg.MaxItemWidth)
	}

	used := 0
	visible := 0
	for i, w := range widths {
		cost := w
		if i > 0 {
			cost += cfg.Gap
		}
		if used+cost > cfg.ContainerWidth {
			break
		}
		used += cost
		visible++
	}

	// At least one item is always shown, even if it overflows on its own.
	visible = max(visible, 1)
	if visible == n {
		return OverflowResult{Visible: items}
	}

	used = usedWidth(widths, visible, cfg.Gap)
	required := used + cfg.Gap + indicatorWidth(m, n-visible)

	for visible > 1 && required > cfg.ContainerWidth {
		visible--
		used = usedWidth(widths, visible, cfg.Gap)
		required = used + cfg.Gap + indicatorWidth(m, n-visible)
	}

	log.LayoutTrace("overflow: container=%d gap=%d max=%d items=%d visible=%d",
		cfg.ContainerWidth, cfg.Gap, cfg.MaxItemWidth, n, visible)

	return OverflowResult{
		Visible:     items[:visible],
		HiddenCount: n - visible,
	}
}

// worstCaseFits reports whether n items at MaxItemWidth plus their gaps fit
// the container. It counts down from the container so it cannot overflow.
func worstCaseFits(n int, cfg OverflowConfig) bool {
	remaining := cfg.ContainerWidth
	for i := 0; i < n; i++ {
		if i > 0 {
			if cfg.Gap > remaining {
				return false
			}
			remaining -= cfg.Gap
		}
		if cfg.MaxItemWidth > remaining {
			return false
		}
		remaining -= cfg.MaxItemWidth
	}
	return true
}

// usedWidth is the width of the first count items including the gaps between them.
func usedWidth(widths []int, count, gap int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += widths[i]
	}
	if count > 1 {
		total += (count - 1) * gap
	}
	return total
}

func indicatorWidth(m Measurer, hidden int) int {
	text := IndicatorText(hidden)
	if m == nil {
		return runewidth.StringWidth(text)
	}
	return max(m.Measure(text), 0)
}
