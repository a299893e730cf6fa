// Package artifact persists finished blog posts and their run reports.
//
// Posts are written as UTF-8 markdown with a timestamp-based name, so a
// directory of artifacts sorts chronologically. Writes go through a temp
// file and rename, matching how the rest of the tool treats files it may
// be re-running over.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

const timestampLayout = "20060102_150405"

// Writer saves run artifacts into a directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a writer targeting dir. An empty dir means the
// current directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now}
}

// SavePost writes content as blog_post_<timestamp>.md and returns the
// path written.
func (w *Writer) SavePost(content string) (string, error) {
	name := fmt.Sprintf("blog_post_%s.md", w.now().Format(timestampLayout))
	path := uniquePath(filepath.Join(w.dir, name))
	if err := w.write(path, []byte(content)); err != nil {
		return "", fmt.Errorf("failed to save post: %w", err)
	}
	return path, nil
}

// Report is the YAML document produced by [Writer.SaveReport]: the full
// run result plus the log that led to it.
type Report struct {
	GeneratedAt time.Time        `yaml:"generated_at"`
	Result      *workflow.Result `yaml:"result"`
	Log         []runlog.Entry   `yaml:"log"`
}

// SaveReport writes the run record as blog_report_<timestamp>.yaml and
// returns the path written.
func (w *Writer) SaveReport(result *workflow.Result, entries []runlog.Entry) (string, error) {
	report := Report{
		GeneratedAt: w.now(),
		Result:      result,
		Log:         entries,
	}
	data, err := yaml.Marshal(&report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	name := fmt.Sprintf("blog_report_%s.yaml", w.now().Format(timestampLayout))
	path := uniquePath(filepath.Join(w.dir, name))
	if err := w.write(path, data); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

// uniquePath returns path, or the first numbered variant that does not
// exist yet. Queue runs can finish two posts within one second, which
// would otherwise reuse the same timestamped name.
func uniquePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

func (w *Writer) write(path string, data []byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	// Write to temp, then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
