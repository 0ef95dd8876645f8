package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{"large", 160, 50, LayoutFull},
		{"wide but short", 160, 30, LayoutStandard},
		{"standard", 110, 30, LayoutStandard},
		{"compact width", 70, 30, LayoutCompact},
		{"compact height", 120, 12, LayoutCompact},
		{"narrow", 50, 30, LayoutMinimal},
		{"short", 120, 8, LayoutMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineMode(tt.width, tt.height))
		})
	}
}

func TestComputeConstraints(t *testing.T) {
	t.Run("standard terminal sizes columns to the longest name", func(t *testing.T) {
		c := ComputeConstraints(120, 30, 14)

		assert.Equal(t, LayoutStandard, c.Mode)
		assert.False(t, c.UseVerticalStack)
		assert.False(t, c.ShowMinWarning)
		assert.False(t, c.ShowRowNumbers)
		assert.Equal(t, 118, c.RowWidth)
		assert.Equal(t, 14, c.NameWidth)
		assert.Equal(t, 118-14-ColumnGap, c.TagWidth)
	})

	t.Run("long names are capped", func(t *testing.T) {
		c := ComputeConstraints(120, 30, 80)
		assert.Equal(t, 118/4, c.NameWidth)
	})

	t.Run("short names use the minimum column", func(t *testing.T) {
		c := ComputeConstraints(120, 30, 3)
		assert.Equal(t, NameMinWidth, c.NameWidth)
	})

	t.Run("full terminal shows row numbers", func(t *testing.T) {
		c := ComputeConstraints(160, 50, 20)

		assert.Equal(t, LayoutFull, c.Mode)
		assert.True(t, c.ShowRowNumbers)
		assert.Equal(t, 158-RowNumberWidth-20-ColumnGap, c.TagWidth)
		assert.Equal(t, MenuMaxHeight, c.MenuHeight)
	})

	t.Run("narrow terminal stacks names above tags", func(t *testing.T) {
		c := ComputeConstraints(40, 30, 20)

		assert.True(t, c.UseVerticalStack)
		assert.True(t, c.ShowMinWarning)
		assert.Equal(t, 38, c.TagWidth)
		assert.Equal(t, c.TagWidth, c.NameWidth)
	})

	t.Run("vertical bands fit the terminal", func(t *testing.T) {
		for _, size := range [][2]int{{80, 24}, {100, 30}, {160, 50}, {40, 12}} {
			c := ComputeConstraints(size[0], size[1], 10)
			total := c.HeaderHeight + c.BoardHeight + c.StatusHeight + c.MenuHeight
			assert.LessOrEqual(t, total, size[1])
			assert.GreaterOrEqual(t, c.TagWidth, 0)
		}
	})

	t.Run("zero size does not go negative", func(t *testing.T) {
		c := ComputeConstraints(0, 0, 10)
		assert.Zero(t, c.BoardHeight)
		assert.Zero(t, c.TagWidth)
		assert.Zero(t, c.StatusHeight)
	})
}

func TestComputeDegradation(t *testing.T) {
	t.Run("roomy terminal keeps everything", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(160, 50, 10))

		assert.False(t, d.HideDescriptions)
		assert.False(t, d.CompactChips)
		assert.False(t, d.HideRowNumbers)
		assert.False(t, d.SingleLineMenu)
		assert.False(t, d.HideStatusLine)
		assert.Equal(t, 2, d.RowHeight())
	})

	t.Run("80x24 is the first size that keeps descriptions", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(80, 24, 10))

		assert.True(t, d.ShouldShowDescription())
		assert.False(t, d.CompactChips)
		assert.True(t, d.HideRowNumbers)
	})

	t.Run("small terminal degrades", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(70, 12, 10))

		assert.True(t, d.HideDescriptions)
		assert.True(t, d.CompactChips)
		assert.True(t, d.SingleLineMenu)
		assert.True(t, d.HideStatusLine)
		assert.Equal(t, 1, d.RowHeight())
	})

	t.Run("vertical stack adds a line per row", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(40, 30, 10))

		assert.True(t, d.UseVerticalStack)
		assert.Equal(t, 3, d.RowHeight())
		assert.Equal(t, 3, d.VisibleRows(9))
	})
}

func TestLayoutModeString(t *testing.T) {
	tests := []struct {
		mode LayoutMode
		want string
	}{
		{LayoutFull, "full"},
		{LayoutStandard, "standard"},
		{LayoutCompact, "compact"},
		{LayoutMinimal, "minimal"},
		{LayoutMode(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestComputePopoverSize(t *testing.T) {
	tests := []struct {
		name       string
		termWidth  int
		termHeight int
		prefWidth  int
		prefHeight int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "large terminal - capped at max",
			termWidth:  150,
			termHeight: 50,
			prefWidth:  100,
			prefHeight: 40,
			wantWidth:  PopoverMaxWidth,
			wantHeight: PopoverMaxHeight,
		},
		{
			name:       "preferred size fits",
			termWidth:  150,
			termHeight: 50,
			prefWidth:  40,
			prefHeight: 8,
			wantWidth:  40,
			wantHeight: 8,
		},
		{
			name:       "small terminal - constrained by margin",
			termWidth:  50,
			termHeight: 14,
			prefWidth:  80,
			prefHeight: 25,
			wantWidth:  46, // 50 - 2*2
			wantHeight: 10, // 14 - 2*2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ComputePopoverSize(tt.termWidth, tt.termHeight, tt.prefWidth, tt.prefHeight)
			assert.Equal(t, tt.wantWidth, w, "width")
			assert.Equal(t, tt.wantHeight, h, "height")
		})
	}
}

// TestResponsiveBreakpoints verifies the breakpoint thresholds are ordered
func TestResponsiveBreakpoints(t *testing.T) {
	assert.Less(t, MinWidth, CompactWidth)
	assert.Less(t, CompactWidth, StandardWidth)
	assert.Less(t, StandardWidth, FullWidth)

	assert.Less(t, MinHeight, CompactHeight)
	assert.Less(t, CompactHeight, StandardHeight)
	assert.Less(t, StandardHeight, FullHeight)

	assert.LessOrEqual(t, NameMinWidth, NameCompactWidth)
	assert.LessOrEqual(t, NameCompactWidth, NameMaxWidth)
}
