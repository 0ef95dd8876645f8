package tagset

import (
	"crypto/rand"
	"fmt"
	"io"
	"tagmore/tagset/wordgen"
	"tagmore/ui/layout"
	"time"

	"github.com/google/uuid"
)

// DemoMaxTags is the largest number of tags on a generated row.
const DemoMaxTags = 14

// Demo generates a board of rows with random names and between 0 and
// DemoMaxTags labels each.
func Demo(rows int) (*Board, error) {
	return DemoFrom(rand.Reader, rows)
}

// DemoFrom is Demo with an explicit randomness source.
func DemoFrom(r io.Reader, rows int) (*Board, error) {
	if rows <= 0 {
		return nil, ErrNoRows
	}

	g := wordgen.New(r)
	board := &Board{
		Title:    "demo",
		Rows:     make([]Row, 0, rows),
		LoadedAt: time.Now(),
	}

	for i := 0; i < rows; i++ {
		name, err := g.Name()
		if err != nil {
			return nil, fmt.Errorf("failed to generate row name: %w", err)
		}
		count, err := g.Intn(DemoMaxTags + 1)
		if err != nil {
			return nil, err
		}
		labels, err := g.Labels(count)
		if err != nil {
			return nil, fmt.Errorf("failed to generate labels: %w", err)
		}

		row := Row{
			Name:        name,
			Description: fmt.Sprintf("%d labels", count),
			Tags:        make([]layout.Item, len(labels)),
		}
		for j, l := range labels {
			row.Tags[j] = layout.Item{Name: l, ID: uuid.NewString()}
		}
		board.Rows = append(board.Rows, row)
	}

	return board, nil
}
