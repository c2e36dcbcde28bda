package boot

// Slot identifies one of the Builder's required or optional pieces.
type Slot string

const (
	// SlotRuntimePlatform holds the runtime platform services initializer.
	SlotRuntimePlatform Slot = "runtime-platform"

	// SlotRendering holds the rendering initializer. It is always optional.
	SlotRendering Slot = "rendering"

	// SlotWindowing holds the windowing initializer.
	SlotWindowing Slot = "windowing"

	// SlotApplicationFactory names the application factory in errors.
	SlotApplicationFactory Slot = "application-factory"
)

// Subsystem is a named, zero-argument initializer supplied by a platform
// extension. The Builder only sequences and invokes it.
type Subsystem struct {
	Name string
	Init func() error
}

// IsZero reports whether the subsystem is unset.
func (s Subsystem) IsZero() bool { return s.Init == nil }

func (s Subsystem) run() error {
	if s.Init == nil {
		return nil
	}
	return s.Init()
}
