package platform

import (
	"github.com/sghaida/appboot/boot"
)

// Options carries the per-extension options Dispatch forwards. A nil Skia
// leaves the rendering slot alone.
type Options struct {
	Win32 Win32Options
	X11   X11Options
	Skia  *SkiaOptions
}

// DefaultOptions returns the extension defaults with Skia disabled.
func DefaultOptions() Options {
	return Options{Win32: DefaultWin32Options(), X11: DefaultX11Options()}
}

// Dispatch installs the subsystem wiring for os on b and reports whether os
// is supported.
//
// For an unsupported os nothing is configured and a diagnostic is logged on
// b's logger. The required slots stay empty so that a later Setup fails
// with *boot.MissingSubsystemError.
func Dispatch(b *boot.Builder, os OS, opts Options) bool {
	switch os {
	case Windows:
		UseStandardRuntimePlatform(b)
		UseWin32(b, opts.Win32)
	case Linux:
		UseStandardRuntimePlatform(b)
		UseX11(b, opts.X11)
	default:
		b.Logger().Warn("unsupported platform", "os", string(os))
		return false
	}
	if opts.Skia != nil {
		UseSkia(b, *opts.Skia)
	}
	return true
}
