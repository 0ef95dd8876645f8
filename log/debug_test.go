package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebug(t *testing.T, enabled bool) {
	t.Helper()
	prevEnabled, prevLog := DebugEnabled, DebugLog
	DebugEnabled = enabled
	profiler.Reset()
	t.Cleanup(func() {
		DebugEnabled = prevEnabled
		DebugLog = prevLog
		profiler.Reset()
	})
}

func TestDebugDisabledByDefault(t *testing.T) {
	resetDebug(t, false)
	t.Setenv("TAGMORE_DEBUG", "")

	InitDebug()

	assert.False(t, DebugEnabled)
	assert.NotNil(t, DebugLog, "disabled debug log must still be usable")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	resetDebug(t, false)
	t.Setenv("TAGMORE_DEBUG", "1")

	InitDebug()
	defer CloseDebug()

	assert.True(t, DebugEnabled)
	assert.NotNil(t, DebugLog)
}

func TestTraceHelpersWithNilLog(t *testing.T) {
	resetDebug(t, true)
	DebugLog = nil

	assert.NotPanics(t, func() {
		Debug("test %s", "arg")
		LayoutTrace("test %d", 1)
		RenderTrace("component", "test %s", "arg")
		InputTrace("key %q", "q")
	})
}

func TestRenderProfiler(t *testing.T) {
	t.Run("noop when disabled", func(t *testing.T) {
		resetDebug(t, false)

		done := profiler.StartRender("board")
		done()

		assert.Empty(t, profiler.components)
		assert.Empty(t, profiler.GetStats())
	})

	t.Run("records when enabled", func(t *testing.T) {
		resetDebug(t, true)

		done := profiler.StartRender("board")
		time.Sleep(time.Millisecond)
		done()

		m := profiler.components["board"]
		require.NotNil(t, m)
		assert.EqualValues(t, 1, m.RenderCount)
		assert.GreaterOrEqual(t, m.TotalTime, time.Millisecond)
		assert.Equal(t, m.MinTime, m.MaxTime)
	})

	t.Run("multiple renders accumulate", func(t *testing.T) {
		resetDebug(t, true)

		for i := 0; i < 5; i++ {
			profiler.StartRender("tagmore")()
		}

		require.Contains(t, profiler.components, "tagmore")
		assert.EqualValues(t, 5, profiler.components["tagmore"].RenderCount)
	})
}

func TestRecordFrame(t *testing.T) {
	resetDebug(t, true)

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)

	assert.EqualValues(t, 2, profiler.frameCount)
	assert.Equal(t, 30*time.Millisecond, profiler.totalTime)
}

func TestRollingWindow(t *testing.T) {
	resetDebug(t, true)

	for i := 0; i < 150; i++ {
		profiler.RecordFrame(time.Millisecond)
	}

	assert.Len(t, profiler.frameTimings, frameWindow)
}

func TestGetStats(t *testing.T) {
	resetDebug(t, true)

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.StartRender("popover")()

	stats := profiler.GetStats()
	assert.Contains(t, stats, "Render Profile")
	assert.Contains(t, stats, "popover")
}
