// Package tagset loads tag boards: named rows, each carrying an ordered list of
// labels to lay out on one line.
package tagset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"tagmore/ui/layout"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoRows is returned when a board has no rows.
	ErrNoRows = errors.New("tag board has no rows")
	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported tag file format")
)

// Format of a tag file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Board is a titled list of rows.
type Board struct {
	Title string
	Rows  []Row

	// Source is the file the board was loaded from, empty for generated boards.
	Source   string
	LoadedAt time.Time
}

// Row is a named line of tags. Tag order is display priority.
type Row struct {
	Name        string
	Description string
	Tags        []layout.Item
}

// Names returns the tag names of the row in order.
func (r Row) Names() []string {
	names := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		names[i] = t.Name
	}
	return names
}

// LongestName returns the width in cells of the longest row name.
func (b *Board) LongestName() int {
	longest := 0
	for _, r := range b.Rows {
		longest = max(longest, runewidth.StringWidth(r.Name))
	}
	return longest
}

// fileBoard is the on-disk shape shared by JSON and YAML.
type fileBoard struct {
	Title string    `json:"title" yaml:"title"`
	Rows  []fileRow `json:"rows" yaml:"rows"`
}

type fileRow struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Tags        []fileTag `json:"tags" yaml:"tags"`
}

// fileTag accepts either a bare string or a {name, id} object.
type fileTag layout.Item

func (t *fileTag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &t.Name)
	}
	var item layout.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*t = fileTag(item)
	return nil
}

func (t *fileTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&t.Name)
	}
	var item layout.Item
	if err := value.Decode(&item); err != nil {
		return err
	}
	*t = fileTag(item)
	return nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and validates the tag file at path.
func Load(path string) (*Board, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag file: %w", err)
	}

	board, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	board.Source = path
	return board, nil
}

// Parse decodes and validates a tag board. Tags without an ID get a random
// UUID and blank tag names are dropped.
func Parse(data []byte, format Format) (*Board, error) {
	var fb fileBoard
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &fb); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fb); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(fb.Rows) == 0 {
		return nil, ErrNoRows
	}

	board := &Board{
		Title:    fb.Title,
		Rows:     make([]Row, 0, len(fb.Rows)),
		LoadedAt: time.Now(),
	}

	var errs error
	for i, fr := range fb.Rows {
		name := strings.TrimSpace(fr.Name)
		if name == "" {
			errs = errors.Join(errs, fmt.Errorf("row %d: missing name", i+1))
			continue
		}

		row := Row{Name: name, Description: strings.TrimSpace(fr.Description)}
		for _, ft := range fr.Tags {
			tag := layout.Item(ft)
			tag.Name = strings.TrimSpace(tag.Name)
			if tag.Name == "" {
				continue
			}
			if tag.ID == "" {
				tag.ID = uuid.NewString()
			}
			row.Tags = append(row.Tags, tag)
		}
		board.Rows = append(board.Rows, row)
	}
	if errs != nil {
		return nil, errs
	}

	return board, nil
}
