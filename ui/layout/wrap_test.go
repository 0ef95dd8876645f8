package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLines(t *testing.T) {
	measure := MeasureFunc(func(text string) int { return len(text) })
	items := makeItems("aaaa", "bb", "cccccc", "d", "eeeeeeeeeeee")

	tests := []struct {
		name  string
		cfg   OverflowConfig
		lines []int
	}{
		{"wide line holds everything", OverflowConfig{ContainerWidth: 100, Gap: 1, MaxItemWidth: 20}, []int{5}},
		{"wraps greedily", OverflowConfig{ContainerWidth: 10, Gap: 1, MaxItemWidth: 20}, []int{2, 2, 1}},
		{"oversized item sits alone", OverflowConfig{ContainerWidth: 3, Gap: 1, MaxItemWidth: 20}, []int{1, 1, 1, 1, 1}},
		{"max width caps the long label", OverflowConfig{ContainerWidth: 13, Gap: 1, MaxItemWidth: 6}, []int{2, 2, 1}},
		{"unmeasured", OverflowConfig{Unmeasured: true, Gap: 1, MaxItemWidth: 6}, []int{5}},
		{"negative container", OverflowConfig{ContainerWidth: -1, Gap: 1, MaxItemWidth: 6}, []int{1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapLines(items, tt.cfg, measure)

			var counts []int
			var flat []Item
			for _, line := range lines {
				counts = append(counts, len(line))
				flat = append(flat, line...)
			}
			assert.Equal(t, tt.lines, counts)
			assert.Equal(t, items, flat, "wrapping must keep every item in order")
		})
	}
}

func TestWrapLinesEmpty(t *testing.T) {
	assert.Nil(t, WrapLines(nil, OverflowConfig{ContainerWidth: 10}, CellMeasurer{}))
}

func TestWrapLinesNilMeasurer(t *testing.T) {
	items := makeItems("a", "b", "c")

	lines := WrapLines(items, OverflowConfig{ContainerWidth: 9, Gap: 1, MaxItemWidth: 4}, nil)

	assert.Equal(t, [][]Item{items[:2], items[2:]}, lines)
}
