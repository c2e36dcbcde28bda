package platform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sghaida/appboot/boot"
)

// X11Name is the windowing subsystem name installed on Linux.
const X11Name = "X11"

// X11RenderingMode is one rendering backend the X11 extension may use.
type X11RenderingMode string

const (
	X11Software X11RenderingMode = "software"
	X11GLX      X11RenderingMode = "glx"
	X11EGL      X11RenderingMode = "egl"
	X11Vulkan   X11RenderingMode = "vulkan"
)

// ParseX11RenderingMode accepts the lower-case mode names.
func ParseX11RenderingMode(s string) (X11RenderingMode, error) {
	m := X11RenderingMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case X11Software, X11GLX, X11EGL, X11Vulkan:
		return m, nil
	}
	return "", fmt.Errorf("platform: unknown x11 rendering mode %q", s)
}

// X11Options configures the X11 extension. RenderingModes is an ordered
// preference list; the first usable backend wins.
type X11Options struct {
	RenderingModes []X11RenderingMode
}

// DefaultX11Options returns the default preference list.
func DefaultX11Options() X11Options {
	return X11Options{RenderingModes: []X11RenderingMode{X11GLX, X11EGL, X11Software}}
}

// UseX11 installs the X11 windowing subsystem on b.
func UseX11(b *boot.Builder, opts X11Options) *boot.Builder {
	modes := slices.Clone(opts.RenderingModes)
	return b.UseWindowingSubsystem(func() error {
		names := make([]string, len(modes))
		for i, m := range modes {
			names[i] = string(m)
		}
		return bindWindowing(b, X11Name, names)
	}, X11Name)
}
