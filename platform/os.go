package platform

import (
	"runtime"
	"strings"
)

// OS is the host operating system identity used for dispatch.
type OS string

const (
	Windows OS = "Windows"
	Linux   OS = "Linux"
)

// Supported reports whether Dispatch has wiring for os.
func (o OS) Supported() bool { return o == Windows || o == Linux }

// Detect returns the OS of the running process.
func Detect() OS { return fromGOOS(runtime.GOOS) }

func fromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	default:
		return OS(goos)
	}
}

// ParseOS maps a user-supplied name (case-insensitive, "windows" or "linux")
// to an OS. Unknown names are returned as-is and are unsupported.
func ParseOS(name string) OS {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win32":
		return Windows
	case "linux", "x11":
		return Linux
	default:
		return OS(name)
	}
}
