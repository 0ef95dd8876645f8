package layout

// WrapLines breaks items into lines of at most width cells, in order. Every
// line holds at least one item, so an item wider than the line gets a line of
// its own. Widths are measured and clamped exactly as in ComputeOverflow.
func WrapLines(items []Item, cfg OverflowConfig, m Measurer) [][]Item {
	cfg = cfg.normalize()
	if len(items) == 0 {
		return nil
	}
	if cfg.Unmeasured {
		return [][]Item{items}
	}

	var lines [][]Item
	start, used := 0, 0
	for i, item := range items {
		w := cfg.MaxItemWidth
		if m != nil {
			w = clamp(m.Measure(item.Name), 0, cfg.MaxItemWidth)
		}

		if i == start {
			used = w
			continue
		}
		if used+cfg.Gap+w > cfg.ContainerWidth {
			lines = append(lines, items[start:i])
			start, used = i, w
			continue
		}
		used += cfg.Gap + w
	}
	return append(lines, items[start:])
}
