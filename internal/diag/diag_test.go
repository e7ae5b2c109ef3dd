package diag

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOutputIsDiscarded(t *testing.T) {
	require.Equal(t, io.Discard, logger.Load().Writer())
	require.NotPanics(t, func() { Debugf("hello %d", 1) })
	require.NotPanics(t, func() { Errorf("world %d", 2) })
}

func TestSetOutputRedirects(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	Errorf("boom %d", 42)
	require.True(t, strings.Contains(buf.String(), "ERROR boom 42"))
}
