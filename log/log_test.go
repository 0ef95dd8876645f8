package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWritesToLogFile(t *testing.T) {
	t.Setenv("TAGMORE_DEBUG", "")
	prevName, prevInfo, prevWarn, prevErr := logFileName, InfoLog, WarningLog, ErrorLog
	t.Cleanup(func() {
		logFileName, InfoLog, WarningLog, ErrorLog = prevName, prevInfo, prevWarn, prevErr
	})
	logFileName = filepath.Join(t.TempDir(), "tagmore.log")

	Initialize()
	InfoLog.Print("watching alerts.yaml")
	WarningLog.Print("gap clamped")
	Close()

	data, err := os.ReadFile(LogFile())
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "INFO:")
	assert.Contains(t, text, "watching alerts.yaml")
	assert.Contains(t, text, "WARNING:")
	assert.NotContains(t, text, "[WATCH]")
}
