package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultResizeDebounce is the quiet period before a resize is applied.
const DefaultResizeDebounce = 50 * time.Millisecond

// ResizeSettledMsg is delivered once a resize burst has gone quiet.
type ResizeSettledMsg struct {
	Seq           uint64
	Width, Height int
}

// ResizeDebouncer coalesces bursts of window size messages. Every Trigger
// schedules a tick tagged with a new sequence number; only the tick carrying
// the latest number is reported as settled, so the last size in a burst wins.
//
// It is driven from the Bubble Tea update loop and is not safe for concurrent use.
type ResizeDebouncer struct {
	duration time.Duration
	seq      uint64

	pendingWidth, pendingHeight int
	lastWidth, lastHeight       int
}

// NewResizeDebouncer creates a debouncer with the given quiet period. A
// non-positive duration applies every resize on the next tick.
func NewResizeDebouncer(duration time.Duration) *ResizeDebouncer {
	return &ResizeDebouncer{duration: max(duration, 0)}
}

// Trigger records a pending size and returns the command that fires after the
// quiet period.
func (d *ResizeDebouncer) Trigger(width, height int) tea.Cmd {
	d.seq++
	d.pendingWidth, d.pendingHeight = width, height

	seq := d.seq
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return ResizeSettledMsg{Seq: seq, Width: width, Height: height}
	})
}

// Settled reports whether msg is the most recent trigger. Stale ticks from
// superseded triggers, and ticks arriving after Cancel, return false.
func (d *ResizeDebouncer) Settled(msg ResizeSettledMsg) bool {
	if msg.Seq != d.seq {
		return false
	}
	d.lastWidth, d.lastHeight = msg.Width, msg.Height
	return true
}

// Pending returns the size of the latest trigger.
func (d *ResizeDebouncer) Pending() (width, height int) {
	return d.pendingWidth, d.pendingHeight
}

// LastSize returns the last settled size.
func (d *ResizeDebouncer) LastSize() (width, height int) {
	return d.lastWidth, d.lastHeight
}

// Cancel invalidates any tick in flight.
func (d *ResizeDebouncer) Cancel() {
	d.seq++
}

// Duration returns the quiet period.
func (d *ResizeDebouncer) Duration() time.Duration {
	return d.duration
}
