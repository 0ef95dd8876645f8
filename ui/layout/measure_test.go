package layout

import (
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellMeasurer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "env:prod", 8},
		{"empty", "", 0},
		{"ansi codes are ignored", "\x1b[31mred\x1b[0m", 3},
		{"wide runes", "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellMeasurer{}.Measure(tt.input))
		})
	}
}

func TestRuneWidthMeasurer(t *testing.T) {
	narrow := NewRuneWidthMeasurer(false)
	wide := NewRuneWidthMeasurer(true)

	assert.Equal(t, 5, narrow.Measure("hello"))
	assert.Equal(t, 4, narrow.Measure("日本"))

	// Ambiguous-width runes double up in East Asian mode.
	assert.Equal(t, 1, narrow.Measure("±"))
	assert.Equal(t, 2, wide.Measure("±"))
}

func TestStyledMeasurerIncludesFrame(t *testing.T) {
	chip := lipgloss.NewStyle().Padding(0, 1)
	m := StyledMeasurer{Style: chip}

	assert.Equal(t, 6, m.Measure("prod"))
	assert.Equal(t, 2, m.Measure(""))
}

func TestCachedMeasurer(t *testing.T) {
	calls := 0
	inner := MeasureFunc(func(text string) int {
		calls++
		return len(text)
	})
	c := NewCachedMeasurer(inner)

	assert.Equal(t, 3, c.Measure("abc"))
	assert.Equal(t, 3, c.Measure("abc"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())

	c.Reset()
	assert.Zero(t, c.Len())
	c.Measure("abc")
	assert.Equal(t, 2, calls)
}

func TestCachedMeasurerConcurrent(t *testing.T) {
	c := NewCachedMeasurer(CellMeasurer{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range []string{"a", "bb", "ccc"} {
				c.Measure(s)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, c.Len())
}

func TestFramedMeasurer(t *testing.T) {
	m := FramedMeasurer{Text: CellMeasurer{}, Frame: 2}
	assert.Equal(t, 6, m.Measure("prod"))
}

func TestNewMeasurer(t *testing.T) {
	chip := lipgloss.NewStyle().Padding(0, 1)

	// Every measurer reports the width of the rendered chip.
	for _, name := range MeasurerNames {
		t.Run(name, func(t *testing.T) {
			m, err := NewMeasurer(name, false, chip)
			require.NoError(t, err)
			assert.Equal(t, 10, m.Measure("env:prod"))
		})
	}

	t.Run("empty name defaults to cells", func(t *testing.T) {
		m, err := NewMeasurer("", false, chip)
		require.NoError(t, err)
		assert.Equal(t, FramedMeasurer{Text: CellMeasurer{}, Frame: 2}, m)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := NewMeasurer("canvas", false, chip)
		assert.Error(t, err)
	})
}
