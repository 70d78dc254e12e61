package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("analysis.status", map[string]any{"analysis_id": "a-1", "overall_score": 72})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "analysis.status", entry["msg"])
	assert.Equal(t, "a-1", entry["analysis_id"])
	assert.EqualValues(t, 72, entry["overall_score"])
	assert.NotEmpty(t, entry["ts"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json")
	SetOutput(&buf)
	t.Cleanup(func() {
		Init("info", "json")
	})

	Info("hidden", nil)
	Debug("hidden", nil)
	Error("shown", map[string]any{"error": "boom"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"shown"`)
	assert.Contains(t, lines[0], `"level":"error"`)
}
