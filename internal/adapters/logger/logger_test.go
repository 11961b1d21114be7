package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/logger"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Debug("hidden")
	l.Info("hello")
	l.Warn("careful")

	assert.Equal(t, "hello\n! careful\n", buf.String())
}

func TestLogger_SetVerbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetVerbose(true)

	l.Debug("identity abc")
	assert.Equal(t, "· identity abc\n", buf.String())

	buf.Reset()
	l.SetVerbose(false)
	l.Debug("identity abc")
	assert.Empty(t, buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	err := zerr.With(zerr.Wrap(domain.ErrToolchainFailed, "cargo build failed"), "exit_code", 101)
	l.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_JSON_KeepsOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetJSON(true)
	l.SetOutput(buf)

	l.Info("hi")
	assert.Contains(t, buf.String(), `"msg":"hi"`)
}
