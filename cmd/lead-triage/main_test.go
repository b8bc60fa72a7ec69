package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func emptyConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0o600))
	return path
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "leads.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Name,Remarks,Language\nAnn,not interested,ENG\nBob,demo at 3pm,ENG\nCat,call back,CHI\n"), 0o600))
	exported := filepath.Join(dir, "out.json")
	high := filepath.Join(dir, "high.json")

	out, err := run(t, "process", "--config", emptyConfig(t, dir), "--file", input,
		"--export", exported, "--export-high-priority", high, "--category", "Hot Lead")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 0 leads")

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	var doc struct {
		Leads []struct {
			Category      string `json:"category"`
			PriorityScore int    `json:"priority_score"`
		} `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Leads, 3)
	assert.Equal(t, "Demo Scheduled", doc.Leads[0].Category)
	assert.Equal(t, 60, doc.Leads[1].PriorityScore)

	data, err = os.ReadFile(high)
	require.NoError(t, err)
	var highDoc struct {
		Leads []json.RawMessage `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(data, &highDoc))
	assert.Len(t, highDoc.Leads, 2)
}

func TestProcessCommand_KeywordOverride(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "leads.csv")
	require.NoError(t, os.WriteFile(input, []byte("Name,Remarks\nAnn,ping me\n"), 0o600))

	out, err := run(t, "process", "--config", emptyConfig(t, dir), "--file", input,
		"--hot-keywords", "ping", "--min-score", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 leads")
}

func TestProcessCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	cfg := emptyConfig(t, dir)

	_, err := run(t, "process", "--config", cfg)
	assert.Error(t, err)

	_, err = run(t, "process", "--config", cfg, "--file", filepath.Join(dir, "leads.xls"))
	assert.ErrorContains(t, err, "unsupported file format")

	input := filepath.Join(dir, "leads.csv")
	require.NoError(t, os.WriteFile(input, []byte("Name,Remarks\nAnn,hi\n"), 0o600))
	target := filepath.Join(dir, "out.txt")
	_, err = run(t, "process", "--config", cfg, "--file", input, "--no-render", "--export", target)
	assert.ErrorContains(t, err, "unsupported file format")
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTemplateCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "template.xlsx")
	out, err := run(t, "template", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestKeywordsCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "keywords", "--config", emptyConfig(t, dir))
	require.NoError(t, err)
	assert.Contains(t, out, "Demo Scheduled")
	assert.Contains(t, out, "wrong number")
}
