package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"tagmore/ui/layout"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWithLayout(t *testing.T) {
	c := layout.ComputeConstraints(70, 20, 10)
	d := layout.ComputeDegradation(c)

	s := NewSnapshot().WithTerminal(70, 20).WithLayout(c, d).WithAppState(AppStateInfo{
		State:    "default",
		RowCount: 3,
		Measurer: layout.MeasurerCells,
	})

	assert.Equal(t, "compact", s.Layout.Mode)
	assert.Equal(t, c.TagWidth, s.Layout.TagWidth)
	assert.True(t, s.Layout.Degradation.CompactChips)
	assert.True(t, s.Layout.Degradation.HideDescriptions)

	active := map[string]bool{}
	for _, bp := range s.Breakpoints {
		active[bp.Name] = bp.Active
	}
	assert.True(t, active["compact_chips"])
	assert.False(t, active["vertical_stack"])
}

func TestSnapshotToText(t *testing.T) {
	root := NewNode("Board").AddChild(
		NewNode("Row").WithID("api").AddChild(
			NewNode("TagMore").WithBounds(0, 0, 40, 1).
				WithState("visible", 3).
				WithState("hidden", 5),
		),
	)
	text := NewSnapshot().WithTerminal(100, 24).WithComponents(root).ToText()

	assert.Contains(t, text, "Terminal: 100x24")
	assert.Contains(t, text, "Row [api]")
	assert.Contains(t, text, "TagMore (40x1) visible=3 hidden=5")
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	node := NewNode("Chip").WithContent("kubernetes").WithTruncation(10, 4, true)

	require.NoError(t, WriteSnapshotToPath(NewSnapshot().WithComponents(node), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "kubernetes", decoded.Components.Content)
	assert.Equal(t, 4, decoded.Components.Truncated.DisplayLength)
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color("#7D56F4"))

	info := ExtractStyleInfo(style, "chip")
	assert.True(t, info.Bold)
	assert.Equal(t, "#7D56F4", info.Foreground)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, []string{"chip"}, info.AppliedStyles)

	assert.Equal(t, "thick", borderName(lipgloss.ThickBorder()))
}

func TestStyleRegistry(t *testing.T) {
	RegisterStyle("test.chip", lipgloss.NewStyle().Italic(true))

	style, ok := GetRegisteredStyle("test.chip")
	require.True(t, ok)
	assert.True(t, style.GetItalic())
	assert.Contains(t, ListRegisteredStyles(), "test.chip")
	assert.True(t, GetAllStyles()["test.chip"].Italic)
}

func TestChipAndIndicatorNodes(t *testing.T) {
	tags := NewNode(TypeTagMore).
		AddChild(NewChipNode(layout.Item{Name: "kubernetes", ID: "k8s"}, "kub…", 4, 6)).
		AddChild(NewChipNode(layout.Item{Name: "go"}, "go", 2, 4)).
		AddChild(NewChipNode(layout.Item{Name: "pci"}, "", 0, 0)).
		AddChild(NewIndicatorNode(12, 5))
	root := NewNode(TypeBoard).AddChild(NewNode(TypeRow).AddChild(tags))

	assert.Equal(t, []string{"kubernetes", "go", "pci"}, tags.ChipLabels())
	assert.Equal(t, 12, tags.HiddenCount())
	assert.Len(t, root.Find(TypeChip), 3)
	assert.Equal(t, []*Node{tags}, root.Find(TypeTagMore))

	chips := root.Find(TypeChip)
	require.NotNil(t, chips[0].Truncated)
	assert.Equal(t, 10, chips[0].Truncated.OriginalLength)
	assert.True(t, chips[0].Truncated.Ellipsis)
	assert.Nil(t, chips[1].Truncated)
	assert.False(t, chips[2].Truncated.Ellipsis, "an empty chip has no ellipsis")

	indicator := root.Find(TypeIndicator)[0]
	assert.Equal(t, "+12", indicator.Content)
	assert.Equal(t, 5, indicator.Bounds.Width)

	assert.Zero(t, NewNode(TypeTagMore).HiddenCount())
}
