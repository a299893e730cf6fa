// Package runlog collects the ordered, timestamped progress log of a single
// workflow run.
//
// A Log is created by the caller and handed to the workflow runner, so a
// run's history travels with its result instead of living in shared state.
// An optional Observer receives each entry as it is appended, which is how
// the CLI renders progress while a run is underway.
package runlog

import (
	"fmt"
	"time"
)

// Level classifies a log entry. The levels mirror the severity of the
// workflow events they record: routine progress, a step that went well, a
// quality gate that failed, and a fatal error.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// String returns the level's wire name.
func (l Level) String() string {
	return string(l)
}

// Entry is a single timestamped log line.
type Entry struct {
	Time    time.Time `yaml:"time"`
	Level   Level     `yaml:"level"`
	Message string    `yaml:"message"`
}

// Stamp renders the entry's time as HH:MM:SS for display.
func (e Entry) Stamp() string {
	return e.Time.Format("15:04:05")
}

// Log is an append-only sequence of entries. A Log is not safe for
// concurrent use; each workflow run owns exactly one.
type Log struct {
	// Observer, when set, is invoked synchronously with each appended
	// entry, in order.
	Observer func(Entry)

	entries []Entry
	now     func() time.Time
}

// New returns an empty log.
func New() *Log {
	return &Log{now: time.Now}
}

// Append records a message at the given level.
func (l *Log) Append(level Level, message string) {
	e := Entry{Time: l.now(), Level: level, Message: message}
	l.entries = append(l.entries, e)
	if l.Observer != nil {
		l.Observer(e)
	}
}

// Info records a formatted entry at LevelInfo.
func (l *Log) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Success records a formatted entry at LevelSuccess.
func (l *Log) Success(format string, args ...any) {
	l.Append(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warning records a formatted entry at LevelWarning.
func (l *Log) Warning(format string, args ...any) {
	l.Append(LevelWarning, fmt.Sprintf(format, args...))
}

// Error records a formatted entry at LevelError.
func (l *Log) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}
