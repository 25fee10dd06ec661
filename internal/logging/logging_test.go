package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	require.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	require.Equal(t, log.WarnLevel, ParseLevel("warning"))
	require.Equal(t, log.ErrorLevel, ParseLevel(" error "))
	require.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func TestParseFormatter(t *testing.T) {
	t.Parallel()
	require.Equal(t, log.JSONFormatter, ParseFormatter("json"))
	require.Equal(t, log.LogfmtFormatter, ParseFormatter("logfmt"))
	require.Equal(t, log.TextFormatter, ParseFormatter(""))
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, closer, err := New(Options{Path: path, Level: "info", Format: "logfmt"})
	require.NoError(t, err)
	logger.Info("card added", "dish", "Sushi")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "card added")
	require.Contains(t, string(data), "dish=Sushi")
	require.NotContains(t, string(data), "hidden")
}

func TestNewOffDiscards(t *testing.T) {
	t.Parallel()
	logger, closer, err := New(Options{Path: Off})
	require.NoError(t, err)
	logger.Error("nowhere")
	require.NoError(t, closer.Close())
}

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Format: "json", Level: "debug"})
	logger.Debug("scroll", "index", 2)
	require.Contains(t, buf.String(), `"msg":"scroll"`)
	require.Contains(t, buf.String(), `"index":2`)
}
