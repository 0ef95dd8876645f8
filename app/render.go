package app

import (
	"fmt"
	"io"
	"strings"
	"tagmore/tagset"
	"tagmore/ui"
	"tagmore/ui/layout"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions configures a one-shot render of a board.
type RenderOptions struct {
	// Width is the full line width; the tag column gets what the names leave.
	Width        int
	Gap          int
	MaxItemWidth int
	Measurer     string
	EastAsian    bool
}

// Render writes one line per row: the padded row name followed by as many
// tags as fit in the remaining width and the "+N" indicator.
func Render(w io.Writer, board *tagset.Board, opts RenderOptions) error {
	m, err := layout.NewMeasurer(opts.Measurer, opts.EastAsian, ui.ChipStyles.Chip)
	if err != nil {
		return err
	}
	measurer := layout.NewCachedMeasurer(m)

	nameWidth := board.LongestName()
	tagWidth := max(opts.Width-nameWidth-layout.ColumnGap, 0)
	gap := strings.Repeat(" ", layout.ColumnGap)

	for _, row := range board.Rows {
		tags := ui.NewTagMore(opts.Gap, opts.MaxItemWidth, measurer)
		tags.SetWidth(tagWidth)
		tags.SetItems(row.Tags)

		name := lipgloss.PlaceHorizontal(nameWidth, lipgloss.Left, ui.RowStyles.Name.Render(row.Name))
		if _, err := fmt.Fprintln(w, name+gap+tags.View()); err != nil {
			return err
		}
	}
	return nil
}

// Measure writes the measured width of every tag, one per line, as a table.
func Measure(w io.Writer, board *tagset.Board, measurerName string, eastAsian bool) error {
	m, err := layout.NewMeasurer(measurerName, eastAsian, ui.ChipStyles.Chip)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tTAG\tWIDTH")
	for _, row := range board.Rows {
		for _, tag := range row.Tags {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Name, tag.Name, m.Measure(tag.Name))
		}
	}
	return tw.Flush()
}
