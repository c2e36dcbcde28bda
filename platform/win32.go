package platform

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sghaida/appboot/boot"
)

// Win32Name is the windowing subsystem name installed on Windows.
const Win32Name = "Win32"

// ErrNoRenderingModes is returned by a windowing initializer whose options
// list no rendering backend at all.
var ErrNoRenderingModes = errors.New("platform: no rendering modes configured")

// Win32RenderingMode is one rendering backend the Win32 extension may use.
type Win32RenderingMode string

const (
	Win32Software Win32RenderingMode = "software"
	Win32AngleEGL Win32RenderingMode = "angle-egl"
	Win32WGL      Win32RenderingMode = "wgl"
	Win32Vulkan   Win32RenderingMode = "vulkan"
)

// ParseWin32RenderingMode accepts the lower-case mode names.
func ParseWin32RenderingMode(s string) (Win32RenderingMode, error) {
	m := Win32RenderingMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Win32Software, Win32AngleEGL, Win32WGL, Win32Vulkan:
		return m, nil
	}
	return "", fmt.Errorf("platform: unknown win32 rendering mode %q", s)
}

// Win32Options configures the Win32 extension. RenderingModes is an ordered
// preference list; the first usable backend wins.
type Win32Options struct {
	RenderingModes []Win32RenderingMode
}

// DefaultWin32Options returns the default preference list.
func DefaultWin32Options() Win32Options {
	return Win32Options{RenderingModes: []Win32RenderingMode{Win32AngleEGL, Win32Software}}
}

// KeyWindowing is the Locator key of the WindowingInfo record.
const KeyWindowing boot.ServiceKey = "platform.windowing"

// WindowingInfo is what a windowing initializer publishes.
type WindowingInfo struct {
	Name           string
	RenderingModes []string
}

// UseWin32 installs the Win32 windowing subsystem on b.
func UseWin32(b *boot.Builder, opts Win32Options) *boot.Builder {
	modes := slices.Clone(opts.RenderingModes)
	return b.UseWindowingSubsystem(func() error {
		names := make([]string, len(modes))
		for i, m := range modes {
			names[i] = string(m)
		}
		return bindWindowing(b, Win32Name, names)
	}, Win32Name)
}

func bindWindowing(b *boot.Builder, name string, modes []string) error {
	if len(modes) == 0 {
		return fmt.Errorf("%s: %w", name, ErrNoRenderingModes)
	}
	b.Logger().Info("windowing subsystem ready", "name", name, "rendering_modes", modes)
	return b.Services().Bind(KeyWindowing, WindowingInfo{Name: name, RenderingModes: modes})
}
