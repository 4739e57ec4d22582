package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/textlens/internal/batch"
	"github.com/verte-zerg/textlens/internal/model"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeStdinJSON(t *testing.T) {
	isolateXDG(t)
	out, err := runCLI(t, "Hello world. Hello again.", "analyze", "--format", "json")
	require.NoError(t, err)

	var rep model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	assert.Equal(t, 4, rep.Stats.Words)
	assert.Equal(t, 2, rep.Stats.Sentences)
	require.NotEmpty(t, rep.WordCloud)
	assert.Equal(t, "hello", rep.WordCloud[0].Word)
}

func TestAnalyzeSelectedSections(t *testing.T) {
	isolateXDG(t)
	out, err := runCLI(t, "Short text here.", "analyze", "--section", "basic,readability")
	require.NoError(t, err)
	assert.Contains(t, out, "Basic Statistics")
	assert.Contains(t, out, "Readability")
	assert.NotContains(t, out, "Word Cloud")
	assert.NotContains(t, out, "==", "no title for lone stdin")
}

func TestAnalyzeFilesYAML(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	for name, body := range map[string]string{"a.txt": "One two three.", "b.md": "Four five."} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	out, err := runCLI(t, "", "analyze", "--format", "yaml", filepath.Join(dir, "*.txt"), filepath.Join(dir, "*.md"))
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.md")
	assert.Contains(t, out, "words: 3")
}

func TestAnalyzeReportsFailures(t *testing.T) {
	isolateXDG(t)
	_, err := runCLI(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 inputs failed")
}

func TestAnalyzeRejectsBadFlags(t *testing.T) {
	isolateXDG(t)
	cases := [][]string{
		{"analyze", "--format", "xml"},
		{"analyze", "--cloud-limit", "0"},
		{"analyze", "--section", "summary"},
		{"analyze", "--width", "-1"},
	}
	for _, args := range cases {
		_, err := runCLI(t, "text", args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestAnalyzeUsesConfigFile(t *testing.T) {
	isolateXDG(t)
	cfgDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "textlens")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[batch]\nformat = \"json\"\n"), 0o644))

	out, err := runCLI(t, "Config driven output.", "analyze")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "expected json from config, got:\n%s", out)

	out, err = runCLI(t, "Flag wins.", "analyze", "--format", "text", "--section", "basic")
	require.NoError(t, err)
	assert.Contains(t, out, "Basic Statistics")
}

func TestDraftsLifecycle(t *testing.T) {
	isolateXDG(t)
	out, err := runCLI(t, "My essay\nIt has two lines.", "drafts", "save")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.Len(t, id, 36)

	out, err = runCLI(t, "", "drafts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id[:8])
	assert.Contains(t, out, "My essay")

	out, err = runCLI(t, "Rewritten.", "drafts", "save", "--id", id[:8], "--title", "Final")
	require.NoError(t, err)
	assert.Equal(t, id, strings.TrimSpace(out))

	out, err = runCLI(t, "", "drafts", "show", id[:8])
	require.NoError(t, err)
	assert.Equal(t, "Rewritten.\n", out)

	_, err = runCLI(t, "", "drafts", "delete", id)
	require.NoError(t, err)
	_, err = runCLI(t, "", "drafts", "show", id)
	assert.Error(t, err, "draft should be gone")
}

func TestResultTitle(t *testing.T) {
	assert.Empty(t, resultTitle(batch.Result{Path: "-", Title: "stdin"}, 1))
	assert.Equal(t, "Home (a.html)", resultTitle(batch.Result{Path: "a.html", Title: "Home"}, 2))
	assert.Equal(t, "notes.txt", resultTitle(batch.Result{Path: "notes.txt"}, 2))
}
