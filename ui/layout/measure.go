package layout

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Measurer reports the display width of a label in terminal cells.
// Implementations must be deterministic and never return a negative width.
type Measurer interface {
	Measure(text string) int
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(text string) int

// Measure calls f(text).
func (f MeasureFunc) Measure(text string) int {
	return f(text)
}

// Measurer names accepted by NewMeasurer and the config file.
const (
	MeasurerCells     = "cells"
	MeasurerRuneWidth = "runewidth"
	MeasurerStyled    = "styled"
)

// MeasurerNames lists the supported measurer names in display order.
var MeasurerNames = []string{MeasurerCells, MeasurerRuneWidth, MeasurerStyled}

// CellMeasurer measures the widest line of a string, ignoring ANSI escape sequences.
type CellMeasurer struct{}

func (CellMeasurer) Measure(text string) int {
	return lipgloss.Width(text)
}

// RuneWidthMeasurer measures plain text with go-runewidth. With EastAsian set,
// ambiguous-width runes count as two cells.
type RuneWidthMeasurer struct {
	cond *runewidth.Condition
}

func NewRuneWidthMeasurer(eastAsian bool) *RuneWidthMeasurer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &RuneWidthMeasurer{cond: cond}
}

func (r *RuneWidthMeasurer) Measure(text string) int {
	return r.cond.StringWidth(text)
}

// StyledMeasurer measures text as it would appear once rendered through a
// lipgloss style, so padding, margins and borders are part of the width.
type StyledMeasurer struct {
	Style lipgloss.Style
}

func (s StyledMeasurer) Measure(text string) int {
	return lipgloss.Width(s.Style.Render(text))
}

// FramedMeasurer adds a fixed frame (padding and borders) to the width of the
// text measured by Text.
type FramedMeasurer struct {
	Text  Measurer
	Frame int
}

func (f FramedMeasurer) Measure(text string) int {
	return f.Text.Measure(text) + f.Frame
}

// CachedMeasurer memoizes another measurer. It is safe for concurrent use.
type CachedMeasurer struct {
	inner Measurer

	mu    sync.RWMutex
	cache map[string]int
}

func NewCachedMeasurer(inner Measurer) *CachedMeasurer {
	return &CachedMeasurer{
		inner: inner,
		cache: make(map[string]int),
	}
}

func (c *CachedMeasurer) Measure(text string) int {
	c.mu.RLock()
	w, ok := c.cache[text]
	c.mu.RUnlock()
	if ok {
		return w
	}

	w = c.inner.Measure(text)
	c.mu.Lock()
	c.cache[text] = w
	c.mu.Unlock()
	return w
}

// Len returns the number of cached widths.
func (c *CachedMeasurer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Reset drops all cached widths.
func (c *CachedMeasurer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]int)
}

// NewMeasurer returns the measurer registered under name, measuring labels as
// chips rendered with the chip style. The cells and runewidth measurers count
// the chip frame separately; the styled measurer renders the chip.
func NewMeasurer(name string, eastAsian bool, chip lipgloss.Style) (Measurer, error) {
	frame := chip.GetHorizontalFrameSize()
	switch name {
	case MeasurerCells, "":
		return FramedMeasurer{Text: CellMeasurer{}, Frame: frame}, nil
	case MeasurerRuneWidth:
		return FramedMeasurer{Text: NewRuneWidthMeasurer(eastAsian), Frame: frame}, nil
	case MeasurerStyled:
		return StyledMeasurer{Style: chip}, nil
	default:
		return nil, fmt.Errorf("unknown measurer %q (must be one of %v)", name, MeasurerNames)
	}
}
