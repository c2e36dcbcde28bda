package platform

import (
	"reflect"

	"github.com/sghaida/appboot/boot"
)

// StandardRuntimePlatformName is the name of the runtime platform
// initializer shared by every platform extension.
const StandardRuntimePlatformName = "StandardRuntimePlatform"

// KeyRuntime is the Locator key of the RuntimeInfo record.
const KeyRuntime boot.ServiceKey = "platform.runtime"

// RuntimeInfo describes where the application type comes from. Asset
// resolution and diagnostics outside the Builder read it.
type RuntimeInfo struct {
	AppType string
	Module  string
}

// UseStandardRuntimePlatform installs the standard runtime platform services
// initializer on b.
func UseStandardRuntimePlatform(b *boot.Builder) *boot.Builder {
	return b.UseRuntimePlatformSubsystem(func() error {
		info := RuntimeInfo{}
		if t := b.ApplicationType(); t != nil {
			info.AppType = t.String()
			info.Module = modulePath(t)
		}
		b.Logger().Info("registering runtime platform services", "module", info.Module, "app_type", info.AppType)
		return b.Services().Bind(KeyRuntime, info)
	}, StandardRuntimePlatformName)
}

// modulePath returns the package path of t, looking through one pointer.
func modulePath(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return t.Elem().PkgPath()
	}
	return t.PkgPath()
}
