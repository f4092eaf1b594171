package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Configure(&Configuration{
		Level:      logrus.InfoLevel,
		TimeFormat: "2006-01-02 15:04:05",
		Output:     buf,
	})
	require.NoError(t, err)

	DebugF("hidden %d", 1)
	InfoF("shown %d", 2)
	WithFields(logrus.Fields{"run_id": "abc"}).Info("with fields")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "run_id=abc")
	assert.False(t, IsEnabledDebug())
}

func TestConfigure_FileLog(t *testing.T) {
	dir := t.TempDir()
	err := Configure(&Configuration{
		Level:         logrus.DebugLevel,
		TimeFormat:    "2006-01-02 15:04:05",
		LogPath:       dir,
		EnableFileLog: true,
		Output:        &bytes.Buffer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = Configure(&Configuration{Level: logrus.InfoLevel, Output: &bytes.Buffer{}})
	})

	ErrorF("salad is empty")

	matches, err := filepath.Glob(filepath.Join(dir, "error.*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "salad is empty"))
}
