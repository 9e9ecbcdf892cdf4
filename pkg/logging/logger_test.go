/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the mentor logger, formatter and log retention.
*/

package logging_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/mentor/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, format logging.LogFormat, level logging.LogLevel) (*logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	require.NoError(t, err)
	return logger, &buf
}

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, logging.DefaultConfig().Validate())

	bad := logging.DefaultConfig()
	bad.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = logging.DefaultConfig()
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	_, err := logging.NewLogger(bad)
	assert.Error(t, err)
}

func TestCustomFormatterLine(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatCustom, logging.LogLevelInfo)
	logger.SetSessionID("0123456789abcdef")

	logger.LogComparison("a.dfa", "b.re", false, "ab")

	line := buf.String()
	assert.Contains(t, line, "INFO [COMPARE] Models compared")
	assert.Contains(t, line, `witness="ab"`)
	assert.Contains(t, line, "equivalent=false")
	assert.Contains(t, line, "session_id=01234567")
	assert.NotContains(t, line, "op=")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Less(t, strings.Index(line, "equivalent="), strings.Index(line, "witness="))
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatJSON, logging.LogLevelInfo)
	logger.SetSessionID("s-1")

	logger.LogConversion("nfa", "dfa", 3, 2, 5*time.Millisecond)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "convert", entry["op"])
	assert.Equal(t, "nfa", entry["from"])
	assert.Equal(t, "dfa", entry["to"])
	assert.Equal(t, float64(2), entry["states_after"])
	assert.Equal(t, "s-1", entry["session_id"])
	assert.Equal(t, "Model converted", entry["msg"])
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(t, logging.LogFormatText, logging.LogLevelInfo)

	logger.LogAccept("dfa", "ab", true, 2)
	assert.Empty(t, buf.String())

	logger.Warning("careful", logrus.Fields{"x": 1})
	assert.Contains(t, buf.String(), "careful")
	assert.Equal(t, logrus.InfoLevel, logger.GetLogger().GetLevel())
}

func TestFileOutputAndRetention(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%sold-%d.log", logging.LogFilePrefix, i))
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))
		stamp := time.Now().Add(-time.Duration(10-i) * time.Hour)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}

	var console bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  2,
		Output:    &console,
	})
	require.NoError(t, err)

	logger.LogGeneration("cfg", 3, 3, time.Millisecond)
	path := logger.FilePath()
	require.NotEmpty(t, path)
	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Words generated")
	assert.Contains(t, console.String(), "Words generated")

	stats, err := logging.GetLogStats(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, logging.LogFilePrefix+"old-3.log"))
	assert.NoFileExists(t, filepath.Join(dir, logging.LogFilePrefix+"old-0.log"))
}

func TestCleanupOldLogsUnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logging.LogFilePrefix+"a.log"), nil, 0644))
	require.NoError(t, logging.CleanupOldLogs(dir, 5))

	stats, err := logging.GetLogStats(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, int64(0), stats.TotalSize)
}
