package ui

import (
	"tagmore/keys"
	"tagmore/testing/snapshot"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuStates(t *testing.T) {
	m := NewMenu()
	assert.Equal(t, StateEmpty, m.State())
	assert.Contains(t, m.Options(), keys.KeyOpen)
	assert.NotContains(t, m.Options(), keys.KeyGapUp)

	m.SetHasRows(true)
	assert.Equal(t, StateDefault, m.State())
	assert.Contains(t, m.Options(), keys.KeyGapUp)
	assert.Contains(t, m.Options(), keys.KeyMeasurer)

	m.SetState(StatePopover)
	m.SetHasRows(false)
	assert.Equal(t, StatePopover, m.State(), "overlay states are not replaced")
	assert.Equal(t, []keys.KeyName{keys.KeyEsc, keys.KeyCopy, keys.KeyUp, keys.KeyDown}, m.Options())
}

func TestMenuRender(t *testing.T) {
	m := NewMenu()
	m.SetHasRows(true)
	m.SetSize(200, 1)

	view := snapshot.StripANSI(m.String())
	assert.Contains(t, view, "all tags")
	assert.Contains(t, view, "measurer")
	assert.Contains(t, view, "quit")
}

func TestMenuFallsBackToCompactHints(t *testing.T) {
	m := NewMenu()
	m.SetHasRows(true)
	m.SetSize(40, 1)

	view := snapshot.StripANSI(m.String())
	assert.Contains(t, view, "quit")
	assert.NotContains(t, view, "measurer")
	assert.LessOrEqual(t, snapshot.Width(view), 40)
}
