package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/draghini/internal/logging"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewFileLogger(&buf)

	l.Infof("window", "created %dx%d", 512, 512)
	l.Errorf("texture", "failed to load %q", "monke.png")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " [INFO] window: created 512x512")
	assert.Contains(t, lines[1], ` [ERROR] texture: failed to load "monke.png"`)
}

func TestZeroFileLoggerDiscards(t *testing.T) {
	var l logging.FileLogger
	assert.NotPanics(t, func() { l.Infof("x", "y") })
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	tee := logging.Tee{logging.NewFileLogger(&a), logging.NoopLogger{}, logging.NewFileLogger(&b)}

	tee.Errorf("input", "boom")

	assert.Contains(t, a.String(), "[ERROR] input: boom")
	assert.Contains(t, b.String(), "[ERROR] input: boom")
}
