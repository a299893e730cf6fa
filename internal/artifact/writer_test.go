package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

func frozenWriter(dir string) *Writer {
	w := NewWriter(dir)
	w.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 5, 42, 0, time.UTC)
	}
	return w
}

func TestNewWriter_EmptyDirUsesCurrent(t *testing.T) {
	w := NewWriter("")
	assert.Equal(t, ".", w.dir)
}

func TestWriter_SavePost(t *testing.T) {
	dir := t.TempDir()
	w := frozenWriter(dir)

	path, err := w.SavePost("# Post\n\nBody.")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "blog_post_20250601_090542.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Post\n\nBody.", string(data))

	// No temp file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_SavePost_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "posts")
	w := frozenWriter(dir)

	path, err := w.SavePost("content")

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriter_SavePost_UniqueNamesWithinSameSecond(t *testing.T) {
	dir := t.TempDir()
	w := frozenWriter(dir)

	first, err := w.SavePost("first post")
	require.NoError(t, err)
	second, err := w.SavePost("second post")
	require.NoError(t, err)
	third, err := w.SavePost("third post")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "blog_post_20250601_090542.md"), first)
	assert.Equal(t, filepath.Join(dir, "blog_post_20250601_090542_2.md"), second)
	assert.Equal(t, filepath.Join(dir, "blog_post_20250601_090542_3.md"), third)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "second post", string(data))
}

func TestWriter_SaveReport(t *testing.T) {
	dir := t.TempDir()
	w := frozenWriter(dir)

	result := &workflow.Result{
		Content:   "# Post",
		SEO:       workflow.DefaultSEOEvaluation(),
		AEO:       workflow.AEOEvaluation{AEOScore: 88, Passes: true},
		Revisions: 1,
		Phase:     workflow.PhasePassed,
	}
	entries := []runlog.Entry{
		{Time: time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC), Level: runlog.LevelInfo, Message: "Starting workflow for topic: testing"},
		{Time: time.Date(2025, 6, 1, 9, 5, 42, 0, time.UTC), Level: runlog.LevelSuccess, Message: "✓ All quality gates passed!"},
	}

	path, err := w.SaveReport(result, entries)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "blog_report_20250601_090542.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, "# Post", report.Result.Content)
	assert.Equal(t, 1, report.Result.Revisions)
	assert.Equal(t, workflow.PhasePassed, report.Result.Phase)
	assert.Equal(t, 88, report.Result.AEO.AEOScore)
	require.Len(t, report.Log, 2)
	assert.Equal(t, runlog.LevelSuccess, report.Log[1].Level)

	// Degraded substitutions survive into the report even though they
	// never appear on the wire.
	assert.True(t, report.Result.SEO.Degraded)
}
