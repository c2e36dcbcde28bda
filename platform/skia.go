package platform

import (
	"github.com/sghaida/appboot/boot"
)

// SkiaName is the rendering subsystem name.
const SkiaName = "Skia"

// KeyRendering is the Locator key of the RenderingInfo record.
const KeyRendering boot.ServiceKey = "platform.rendering"

// SkiaOptions configures the Skia rendering subsystem.
// Zero MaxGPUResourceSizeBytes leaves the backend default in place.
type SkiaOptions struct {
	MaxGPUResourceSizeBytes int64
}

// RenderingInfo is what a rendering initializer publishes.
type RenderingInfo struct {
	Name                    string
	MaxGPUResourceSizeBytes int64
}

// UseSkia installs the Skia rendering subsystem on b.
func UseSkia(b *boot.Builder, opts SkiaOptions) *boot.Builder {
	return b.UseRenderingSubsystem(func() error {
		b.Logger().Info("rendering subsystem ready", "name", SkiaName, "max_gpu_resource_bytes", opts.MaxGPUResourceSizeBytes)
		return b.Services().Bind(KeyRendering, RenderingInfo{
			Name:                    SkiaName,
			MaxGPUResourceSizeBytes: opts.MaxGPUResourceSizeBytes,
		})
	}, SkiaName)
}
