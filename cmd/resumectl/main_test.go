package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = `Jane Doe
jane@janedoe.dev | +1 415 555 0100

Experience
Backend Developer | Initech | 2019 - Present
- Cut API latency by 30% with Go and PostgreSQL

Skills
Go, Docker, Kubernetes, PostgreSQL
`

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jane_doe.txt")
	require.NoError(t, os.WriteFile(path, []byte(resumeText), 0o644))

	out := execute(t, "analyze", path, "--as-of", "2026-01-15")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026-01-15", got["asOf"])
	assert.Equal(t, "upload", got["source"])
	assert.Contains(t, got, "score")
}

func TestIndustriesCommand(t *testing.T) {
	out := execute(t, "industries")
	assert.Contains(t, out, "tag: technology")
	assert.Contains(t, out, "confidenceScale: 80")
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "resumectl version: unknown\n", out)
}
