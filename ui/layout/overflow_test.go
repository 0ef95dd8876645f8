package layout

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMeasurer wraps a measurer and records every text it was asked for.
type recordingMeasurer struct {
	inner Measurer
	calls []string
}

func (r *recordingMeasurer) Measure(text string) int {
	r.calls = append(r.calls, text)
	return r.inner.Measure(text)
}

func (r *recordingMeasurer) indicatorCalls() []string {
	var out []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, "+") {
			out = append(out, c)
		}
	}
	return out
}

// fixedWidths measures names from a table and every indicator as indicatorWidth.
func fixedWidths(widths map[string]int, indicatorWidth int) MeasureFunc {
	return func(text string) int {
		if w, ok := widths[text]; ok {
			return w
		}
		if strings.HasPrefix(text, "+") {
			return indicatorWidth
		}
		return len(text)
	}
}

func makeItems(names ...string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, ID: fmt.Sprintf("id-%d", i)}
	}
	return items
}

func TestComputeOverflowScenarios(t *testing.T) {
	t.Run("fast path skips measurement", func(t *testing.T) {
		items := makeItems("A", "B", "C")
		m := &recordingMeasurer{inner: fixedWidths(map[string]int{"A": 20, "B": 20, "C": 20}, 20)}

		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 1000, Gap: 10, MaxItemWidth: 50}, m)

		assert.Equal(t, items, result.Visible)
		assert.Zero(t, result.HiddenCount)
		assert.Empty(t, m.calls, "fast path must not measure")
	})

	t.Run("backtracks to make room for the indicator", func(t *testing.T) {
		items := makeItems("a", "b", "c", "d", "e")
		widths := map[string]int{"a": 40, "b": 40, "c": 40, "d": 40, "e": 40}
		m := &recordingMeasurer{inner: fixedWidths(widths, 20)}

		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 100, Gap: 8, MaxItemWidth: 40}, m)

		assert.Equal(t, items[:1], result.Visible)
		assert.Equal(t, 4, result.HiddenCount)
		assert.Equal(t, []string{"+3", "+4"}, m.indicatorCalls())
	})

	t.Run("single wide item is shown alone", func(t *testing.T) {
		items := makeItems("wide")
		m := &recordingMeasurer{inner: fixedWidths(map[string]int{"wide": 200}, 2)}

		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 50, Gap: 4, MaxItemWidth: 500}, m)

		assert.Equal(t, items, result.Visible)
		assert.Zero(t, result.HiddenCount)
		assert.Empty(t, m.indicatorCalls())
	})

	t.Run("empty list", func(t *testing.T) {
		result := ComputeOverflow(nil, OverflowConfig{ContainerWidth: 100, Gap: 1, MaxItemWidth: 10}, CellMeasurer{})

		assert.Empty(t, result.Visible)
		assert.Zero(t, result.HiddenCount)
	})

	t.Run("wider container keeps at least as many items", func(t *testing.T) {
		items := makeItems("a", "b", "c", "d", "e")
		widths := map[string]int{"a": 40, "b": 40, "c": 40, "d": 40, "e": 40}
		cfg := OverflowConfig{Gap: 8, MaxItemWidth: 40}

		cfg.ContainerWidth = 100
		narrow := ComputeOverflow(items, cfg, fixedWidths(widths, 20))
		cfg.ContainerWidth = 500
		wide := ComputeOverflow(items, cfg, fixedWidths(widths, 20))

		assert.GreaterOrEqual(t, len(wide.Visible), len(narrow.Visible))
		assert.Len(t, wide.Visible, 5)
	})
}

func TestComputeOverflowIndicatorDigitBoundary(t *testing.T) {
	// Every label is one cell per byte, so "+9" is 2 cells and "+10" is 3.
	measure := MeasureFunc(func(text string) int { return len(text) })

	t.Run("single digit indicator", func(t *testing.T) {
		items := makeItems(strings.Split("abcdefghijk", "")...)
		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 4, MaxItemWidth: 1}, measure)

		assert.Len(t, result.Visible, 2)
		assert.Equal(t, 9, result.HiddenCount)
	})

	t.Run("indicator grows a digit while backtracking", func(t *testing.T) {
		items := makeItems(strings.Split("abcdefghijkl", "")...)
		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 4, MaxItemWidth: 1}, measure)

		// Reserving for "+8" once would keep two items, but "+10" no longer fits beside them.
		assert.Len(t, result.Visible, 1)
		assert.Equal(t, 11, result.HiddenCount)
	})
}

func TestComputeOverflowMeasurerUnavailable(t *testing.T) {
	items := makeItems("one", "two", "three", "four", "five")

	result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 30, Gap: 1, MaxItemWidth: 10}, nil)

	// Every item counts as 10 cells: 10 + 1 + 10 = 21, then "+3" needs 1 + 2 more.
	assert.Equal(t, items[:2], result.Visible)
	assert.Equal(t, 3, result.HiddenCount)
}

func TestComputeOverflowUnmeasuredContainer(t *testing.T) {
	items := makeItems("a", "b", "c")
	m := &recordingMeasurer{inner: CellMeasurer{}}

	result := ComputeOverflow(items, OverflowConfig{Unmeasured: true, Gap: 1, MaxItemWidth: 10}, m)

	assert.Equal(t, items, result.Visible)
	assert.Zero(t, result.HiddenCount)
	assert.Empty(t, m.calls)
}

func TestComputeOverflowClampsNegativeConfig(t *testing.T) {
	items := makeItems("alpha", "beta", "gamma")

	t.Run("all negative", func(t *testing.T) {
		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: -10, Gap: -5, MaxItemWidth: -1}, CellMeasurer{})
		assert.Equal(t, items, result.Visible)
		assert.Zero(t, result.HiddenCount)
	})

	for _, width := range []int{-1, -2, -10} {
		t.Run(fmt.Sprintf("container %d", width), func(t *testing.T) {
			result := ComputeOverflow(items, OverflowConfig{ContainerWidth: width, Gap: 1, MaxItemWidth: 5}, CellMeasurer{})
			assert.Len(t, result.Visible, 1)
			assert.Equal(t, 2, result.HiddenCount)
		})
	}
}

func TestComputeOverflowHugeConfig(t *testing.T) {
	items := makeItems("aaaaaaaa", "bbbbbbbb")

	t.Run("max item width", func(t *testing.T) {
		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 10, Gap: 1, MaxItemWidth: math.MaxInt}, CellMeasurer{})
		assert.Equal(t, items[:1], result.Visible)
		assert.Equal(t, 1, result.HiddenCount)
	})

	t.Run("gap", func(t *testing.T) {
		result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 10, Gap: math.MaxInt, MaxItemWidth: 4}, CellMeasurer{})
		assert.Equal(t, items[:1], result.Visible)
		assert.Equal(t, 1, result.HiddenCount)
	})
}

func TestComputeOverflowClampsToMaxItemWidth(t *testing.T) {
	items := makeItems("a-very-long-label", "b")
	measure := MeasureFunc(func(text string) int { return len(text) })

	// Without the cap the first label alone would be 17 cells.
	result := ComputeOverflow(items, OverflowConfig{ContainerWidth: 8, Gap: 1, MaxItemWidth: 6}, measure)

	assert.Equal(t, items, result.Visible)
	assert.Zero(t, result.HiddenCount)
}

func TestComputeOverflowProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(12)
		widths := make(map[string]int, n)
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("t%d", i)
			widths[names[i]] = rng.Intn(30)
		}
		items := makeItems(names...)
		gap := rng.Intn(4)
		maxItem := rng.Intn(25)
		indicator := 1 + rng.Intn(3)

		prevVisible := -1
		for container := 0; container <= 150; container += 3 {
			m := &recordingMeasurer{inner: fixedWidths(widths, indicator)}
			cfg := OverflowConfig{ContainerWidth: container, Gap: gap, MaxItemWidth: maxItem}
			result := ComputeOverflow(items, cfg, m)

			require.Equal(t, n, result.Total(), "count invariant")
			require.Equal(t, items[:len(result.Visible)], result.Visible, "visible must be a prefix")
			if n > 0 {
				require.GreaterOrEqual(t, len(result.Visible), 1, "at least one item")
			}
			if n*maxItem+(n-1)*gap <= container {
				require.Zero(t, result.HiddenCount, "fast path")
			}
			if result.HiddenCount == 0 {
				require.Empty(t, m.indicatorCalls(), "indicator measured with nothing hidden")
			}
			require.GreaterOrEqual(t, len(result.Visible), prevVisible, "monotonic in container width")
			prevVisible = len(result.Visible)
		}
	}
}

func TestIndicatorText(t *testing.T) {
	assert.Equal(t, "+1", IndicatorText(1))
	assert.Equal(t, "+10", IndicatorText(10))
}
