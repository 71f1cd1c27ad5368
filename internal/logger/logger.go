package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// NoteSaved logs a successful note save
func (l *Logger) NoteSaved(id, title string) {
	l.Info("note saved",
		"id", id,
		"title", title)
}

// NoteTrashed logs a note being moved to the trash
func (l *Logger) NoteTrashed(id, title string) {
	l.Info("note trashed",
		"id", id,
		"title", title)
}

// NoteRestored logs a note being restored from the trash
func (l *Logger) NoteRestored(id string) {
	l.Info("note restored",
		"id", id)
}

// NotesPurged logs the result of a retention purge
func (l *Logger) NotesPurged(count int, retention time.Duration) {
	l.Info("trash purged",
		"notes_removed", count,
		"retention", retention)
}

// ImportDetected logs the format decision for an imported file
func (l *Logger) ImportDetected(path string, markdown bool) {
	l.Debug("import format detected",
		"path", path,
		"markdown", markdown)
}

// ExportedNote logs a single exported note
func (l *Logger) ExportedNote(id, dest string) {
	l.Info("note exported",
		"id", id,
		"dest", dest)
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source string, err error) {
	l.Error("conversion failed",
		"source", source,
		"error", err)
}

// StoreError logs a storage-related error
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(notesDir string, baseSize float64, retentionDays int) {
	l.Debug("config loaded",
		"notes_dir", notesDir,
		"base_font_size", baseSize,
		"retention_days", retentionDays)
}
