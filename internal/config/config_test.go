package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/appboot/internal/config"
	"github.com/sghaida/appboot/internal/logging"
	"github.com/sghaida/appboot/platform"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// Tests below use t.Setenv, so they cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "demo", cfg.App)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"angle-egl", "software"}, cfg.Win32.RenderingModes)
	assert.Equal(t, []string{"glx", "egl", "software"}, cfg.X11.RenderingModes)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
platform: linux
log:
  level: debug
  format: json
x11:
  rendering_modes: [egl]
rendering:
  skia: true
  max_gpu_resource_size_bytes: 4096
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "linux", cfg.Platform)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"egl"}, cfg.X11.RenderingModes)
	assert.Equal(t, []string{"angle-egl", "software"}, cfg.Win32.RenderingModes)
	assert.True(t, cfg.Rendering.Skia)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "platform: linux\nlog:\n  level: debug\n")
	t.Setenv("APPBOOT_PLATFORM", "windows")
	t.Setenv("APPBOOT_WIN32_RENDERING_MODES", "wgl,software")
	t.Setenv("APPBOOT_RENDERING_SKIA", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "windows", cfg.Platform)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"wgl", "software"}, cfg.Win32.RenderingModes)
	assert.True(t, cfg.Rendering.Skia)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = config.Load(writeFile(t, "log: [not, a, map]"))
	assert.ErrorContains(t, err, "parse config")

	_, err = config.Load(writeFile(t, "log:\n  format: xml\n"))
	assert.ErrorContains(t, err, `unknown log format "xml"`)

	_, err = config.Load(writeFile(t, "x11:\n  rendering_modes: [wgl]\n"))
	assert.ErrorContains(t, err, "unknown x11 rendering mode")

	t.Setenv("APPBOOT_RENDERING_SKIA", "maybe")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestLoad_LogFormatAnyCase(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "log:\n  format: JSON\n  level: WARN\n"))
	require.NoError(t, err)
	assert.Equal(t, "JSON", cfg.Log.Format)

	_, err = logging.New(cfg.Log.Level, cfg.Log.Format, io.Discard)
	assert.NoError(t, err)
}

func TestPlatformOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Rendering.Skia = true
	cfg.Rendering.MaxGPUResourceSizeBytes = 512

	opts, err := cfg.PlatformOptions()
	require.NoError(t, err)

	assert.Equal(t, platform.DefaultWin32Options(), opts.Win32)
	assert.Equal(t, platform.DefaultX11Options(), opts.X11)
	require.NotNil(t, opts.Skia)
	assert.Equal(t, int64(512), opts.Skia.MaxGPUResourceSizeBytes)

	cfg.Rendering.Skia = false
	opts, err = cfg.PlatformOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Skia)
}
