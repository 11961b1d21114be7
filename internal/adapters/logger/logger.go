package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/rscript/internal/core/ports"
)

// messager is implemented by zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadataCarrier is implemented by zerr errors carrying key/value context.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for display.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	level    slog.LevelVar
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild recreates the slog handler. Callers hold the write lock or own l exclusively.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: &l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the output destination, keeping the current mode.
// A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables or disables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the error chain into display entries.
// zerr errors contribute their own message and metadata. The first standard error
// ends the walk with its full text. Metadata-only wrappers are folded into the
// next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var meta map[string]any
		if c, ok := current.(metadataCarrier); ok {
			meta = c.Metadata()
		}

		if m.Message() == "" {
			pending = mergeMetadata(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(meta, pending)})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(into, from map[string]any) map[string]any {
	if len(from) == 0 {
		return into
	}
	if into == nil {
		into = make(map[string]any, len(from))
	}
	for k, v := range from {
		into[k] = v
	}
	return into
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, cont := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, cont = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, cont+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", cont, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
