package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Output
	Output = &buf
	t.Cleanup(func() { Output = orig })
	return &buf
}

func TestNew_JSON(t *testing.T) {
	buf := capture(t)

	logger, err := New("info", FormatJSON)
	require.NoError(t, err)

	logger.Info("service request submitted", "serviceType", "repair")
	logger.V(1).Info("hidden at info")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "service request submitted", entry["msg"])
	assert.Equal(t, "repair", entry["serviceType"])
	assert.Equal(t, "intake", entry["logger"])
	assert.NotContains(t, buf.String(), "hidden at info")
}

func TestNew_DebugEnablesVerbose(t *testing.T) {
	buf := capture(t)

	logger, err := New("debug", FormatConsole)
	require.NoError(t, err)

	logger.V(1).Info("wizard event")
	logger.V(2).Info("field updated")
	assert.Contains(t, buf.String(), "wizard event")
	assert.Contains(t, buf.String(), "field updated")
}

func TestNew_WarnHidesInfo(t *testing.T) {
	buf := capture(t)

	logger, err := New("warn", FormatJSON)
	require.NoError(t, err)
	logger.Info("quiet")
	assert.Empty(t, buf.String())
}

func TestNew_Errors(t *testing.T) {
	_, err := New("loud", FormatJSON)
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}
