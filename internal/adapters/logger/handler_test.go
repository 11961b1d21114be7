package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rscript/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		handlerLvl slog.Level
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
		{
			name:       "debug level verbose",
			handlerLvl: slog.LevelDebug,
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: tt.handlerLvl})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		msg        string
		goldenName string
	}{
		{
			name:       "single attribute",
			attrs:      []slog.Attr{slog.String("key", "value")},
			msg:        "single attr message",
			goldenName: "handler_attrs_single",
		},
		{
			name:       "multiple attributes",
			attrs:      []slog.Attr{slog.String("a", "1"), slog.Int("b", 2)},
			msg:        "multi attr message",
			goldenName: "handler_attrs_multi",
		},
		{
			name:       "group attribute",
			attrs:      []slog.Attr{slog.Group("g", slog.String("k", "v"))},
			msg:        "group attr message",
			goldenName: "handler_attrs_group",
		},
		{
			name:       "nested group attribute",
			attrs:      []slog.Attr{slog.Group("outer", slog.Group("inner", slog.String("k", "v")))},
			msg:        "nested group message",
			goldenName: "handler_attrs_nested_group",
		},
		{
			name:       "mixed group and regular attrs",
			attrs:      []slog.Attr{slog.String("regular", "val"), slog.Group("g", slog.String("k", "v"))},
			msg:        "mixed attrs message",
			goldenName: "handler_attrs_mixed",
		},
		{
			name:       "empty attribute value",
			attrs:      []slog.Attr{slog.String("empty", "")},
			msg:        "empty value message",
			goldenName: "handler_attrs_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, nil).WithAttrs(tt.attrs)
			slog.New(handler).Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	tests := []struct {
		name       string
		groups     []string
		key, value string
		msg        string
		goldenName string
	}{
		{name: "single group", groups: []string{"request"}, key: "id", value: "123", msg: "single group message", goldenName: "handler_group_single"},
		{name: "nested groups", groups: []string{"a", "b"}, key: "key", value: "val", msg: "nested group message", goldenName: "handler_group_nested"},
		{name: "triple nested groups", groups: []string{"a", "b", "c"}, key: "k", value: "v", msg: "triple nested message", goldenName: "handler_group_triple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			var handler slog.Handler = logger.NewPrettyHandler(buf, nil)
			for _, g := range tt.groups {
				handler = handler.WithGroup(g)
			}

			slog.New(handler).Info(tt.msg, tt.key, tt.value)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithGroup_EmptyName(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)

	assert.Same(t, handler, handler.WithGroup(""))

	slog.New(handler.WithGroup("")).Info("empty group test", "key", "val")

	g := goldie.New(t)
	g.Assert(t, "handler_group_empty", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_GroupedAttrsKeepTheirGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithGroup("pkg").
		WithAttrs([]slog.Attr{slog.String("id", "abc")}).
		WithGroup("cargo")

	slog.New(handler).Info("built", "status", 0)

	assert.Equal(t, "built pkg.id=abc pkg.cargo.status=0\n", buf.String())
}
