package boot

import (
	"log/slog"
	"reflect"
)

// Application is the consumer-defined object the Builder creates and drives
// through its lifecycle.
type Application interface {
	RegisterServices() error
	Initialize() error
	OnFrameworkInitializationCompleted() error
}

// AppFactory produces the Application. It is only invoked during execution.
// A factory must not return a nil pointer wrapped in Application; the
// lifecycle methods are called on whatever it returns.
type AppFactory func() Application

// MainFunc is handed the ready Application by Start. Whatever it does next
// (event loop, shutdown) is outside the Builder's responsibility.
type MainFunc func(app Application, args []string) error

// Builder accumulates the bootstrap configuration and executes it.
type Builder struct {
	appType reflect.Type
	factory AppFactory

	runtimePlatform Subsystem
	rendering       Subsystem
	windowing       Subsystem

	afterPlatformServicesSetup Chain
	afterApplicationSetup      Chain
	afterSetup                 Chain

	instance Application
	services *Locator
	logger   *slog.Logger
}

// Configure returns a Builder for application type T.
//
// factory is called lazily during execution, so it may depend on things that
// are not ready yet. A nil factory makes Setup fail with a
// *MissingSubsystemError for SlotApplicationFactory.
//
// Diagnostics go to slog.Default() until WithLogger sets another logger.
func Configure[T Application](factory func() T) *Builder {
	b := &Builder{
		appType:  reflect.TypeOf((*T)(nil)).Elem(),
		services: NewLocator(),
	}
	if factory != nil {
		b.factory = func() Application { return factory() }
	}
	return b
}

// WithLogger sets the diagnostic logger. A nil logger is ignored.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// UseRuntimePlatformSubsystem sets the runtime platform services slot,
// replacing any previous initializer.
func (b *Builder) UseRuntimePlatformSubsystem(init func() error, name string) *Builder {
	b.runtimePlatform = Subsystem{Name: name, Init: init}
	return b
}

// UseRenderingSubsystem sets the rendering slot, replacing any previous
// initializer.
func (b *Builder) UseRenderingSubsystem(init func() error, name string) *Builder {
	b.rendering = Subsystem{Name: name, Init: init}
	return b
}

// UseWindowingSubsystem sets the windowing slot, replacing any previous
// initializer.
func (b *Builder) UseWindowingSubsystem(init func() error, name string) *Builder {
	b.windowing = Subsystem{Name: name, Init: init}
	return b
}

// AfterPlatformServicesSetup appends cb to the chain run right after the
// subsystem initializers.
func (b *Builder) AfterPlatformServicesSetup(cb Callback) *Builder {
	b.afterPlatformServicesSetup.Append(cb)
	return b
}

// AfterApplicationSetup appends cb to the chain run after
// Application.Initialize.
func (b *Builder) AfterApplicationSetup(cb Callback) *Builder {
	b.afterApplicationSetup.Append(cb)
	return b
}

// AfterSetup appends cb to the chain run just before
// Application.OnFrameworkInitializationCompleted.
func (b *Builder) AfterSetup(cb Callback) *Builder {
	b.afterSetup.Append(cb)
	return b
}

// ApplicationType returns the type T the Builder was configured with.
func (b *Builder) ApplicationType() reflect.Type { return b.appType }

// RuntimePlatformSubsystem returns the runtime platform slot, zero if unset.
func (b *Builder) RuntimePlatformSubsystem() Subsystem { return b.runtimePlatform }

// RenderingSubsystem returns the rendering slot, zero if unset.
func (b *Builder) RenderingSubsystem() Subsystem { return b.rendering }

// WindowingSubsystem returns the windowing slot, zero if unset.
func (b *Builder) WindowingSubsystem() Subsystem { return b.windowing }

// Services returns the Locator platform initializers publish into.
func (b *Builder) Services() *Locator { return b.services }

// Logger returns the diagnostic logger: the one set by WithLogger, or
// slog.Default() at the time of the call.
func (b *Builder) Logger() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// Instance returns the created Application, or nil before execution reached
// the factory step.
func (b *Builder) Instance() Application { return b.instance }

// Setup validates the configuration and then runs SetupUnsafe.
//
// The runtime platform slot, the windowing slot and the application factory
// are checked in that order; the first missing one is reported as a
// *MissingSubsystemError and nothing is executed. Rendering stays optional.
//
// Calling Setup again on a Builder that already produced an instance is
// unsupported and its outcome is undefined.
func (b *Builder) Setup() error {
	if err := b.validate(); err != nil {
		b.Logger().Error("bootstrap validation failed", "err", err)
		return err
	}
	return b.SetupUnsafe()
}

func (b *Builder) validate() error {
	switch {
	case b.runtimePlatform.IsZero():
		return &MissingSubsystemError{Slot: SlotRuntimePlatform}
	case b.windowing.IsZero():
		return &MissingSubsystemError{Slot: SlotWindowing}
	case b.factory == nil:
		return &MissingSubsystemError{Slot: SlotApplicationFactory}
	}
	return nil
}

// SetupUnsafe runs the bootstrap sequence without validation.
//
// Unset slots are skipped. A missing factory stops the sequence after the
// AfterPlatformServicesSetup chain, since there is no instance to drive.
// The first error from any step is returned unchanged and the remaining
// steps do not run.
func (b *Builder) SetupUnsafe() error {
	for _, s := range []struct {
		slot Slot
		sub  Subsystem
	}{
		{SlotRuntimePlatform, b.runtimePlatform},
		{SlotRendering, b.rendering},
		{SlotWindowing, b.windowing},
	} {
		if s.sub.IsZero() {
			b.Logger().Debug("subsystem skipped", "slot", s.slot)
			continue
		}
		b.Logger().Debug("subsystem init", "slot", s.slot, "name", s.sub.Name)
		if err := s.sub.run(); err != nil {
			return err
		}
	}

	if err := b.afterPlatformServicesSetup.Invoke(b); err != nil {
		return err
	}

	if b.factory == nil {
		b.Logger().Debug("no application factory, stopping")
		return nil
	}
	b.instance = b.factory()
	if b.instance == nil {
		return ErrNilApplication
	}
	b.Logger().Debug("application created", "type", b.appType.String())

	if err := b.instance.RegisterServices(); err != nil {
		return err
	}
	if err := b.instance.Initialize(); err != nil {
		return err
	}
	if err := b.afterApplicationSetup.Invoke(b); err != nil {
		return err
	}
	if err := b.afterSetup.Invoke(b); err != nil {
		return err
	}
	if err := b.instance.OnFrameworkInitializationCompleted(); err != nil {
		return err
	}

	b.Logger().Debug("bootstrap complete", "type", b.appType.String())
	return nil
}

// SetupWithoutStarting runs Setup and returns the Builder, so the caller can
// take the instance without entering a run loop.
func (b *Builder) SetupWithoutStarting() (*Builder, error) {
	if err := b.Setup(); err != nil {
		return b, err
	}
	return b, nil
}

// Start runs Setup and then hands the instance and args to main.
// args are forwarded verbatim. A nil main fails with ErrNilMain before
// anything runs.
func (b *Builder) Start(main MainFunc, args []string) error {
	if main == nil {
		return ErrNilMain
	}
	if err := b.Setup(); err != nil {
		return err
	}
	return main(b.instance, args)
}
