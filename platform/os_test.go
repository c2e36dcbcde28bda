package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGOOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Windows, fromGOOS("windows"))
	assert.Equal(t, Linux, fromGOOS("linux"))
	assert.Equal(t, OS("darwin"), fromGOOS("darwin"))
	assert.False(t, fromGOOS("darwin").Supported())
}

func TestParseOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Windows, ParseOS("Windows"))
	assert.Equal(t, Windows, ParseOS(" win32 "))
	assert.Equal(t, Linux, ParseOS("LINUX"))
	assert.Equal(t, Linux, ParseOS("x11"))
	assert.Equal(t, OS("freebsd"), ParseOS("freebsd"))
	assert.True(t, ParseOS("linux").Supported())
}

func TestParseRenderingModes(t *testing.T) {
	t.Parallel()

	m, err := ParseWin32RenderingMode("ANGLE-EGL")
	require.NoError(t, err)
	assert.Equal(t, Win32AngleEGL, m)
	_, err = ParseWin32RenderingMode("glx")
	assert.Error(t, err)

	x, err := ParseX11RenderingMode("glx")
	require.NoError(t, err)
	assert.Equal(t, X11GLX, x)
	_, err = ParseX11RenderingMode("wgl")
	assert.Error(t, err)
}
