// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/rscript/internal/ui/output"
	"go.trai.ch/rscript/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing human-readable, colored output.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case r.Level < slog.LevelInfo:
		msg = style.Dot + " " + r.Message
		color = termenv.RGBColor(string(style.Dim))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	prefix := strings.Join(h.groups, ".")
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, prefix, attr)
		return true
	})

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// The attributes are formatted now, qualified with the groups open at this point.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	prefix := strings.Join(h.groups, ".")
	newAttrs := make([]string, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	for _, attr := range attrs {
		newAttrs = appendAttr(newAttrs, prefix, attr)
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	groups := make([]string, len(h.groups), len(h.groups)+1)
	copy(groups, h.groups)

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(groups, name),
	}
}

// appendAttr flattens attr into key=value parts. Groups expand into dotted keys.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, sub := range attr.Value.Group() {
			parts = appendAttr(parts, key, sub)
		}
		return parts
	}

	return append(parts, key+"="+attr.Value.String())
}
