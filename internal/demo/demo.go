// Package demo is a small Application used by cmd/appboot and end-to-end tests.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sghaida/appboot/boot"
	"github.com/sghaida/appboot/platform"
)

// KeyTitle is the Locator key the demo registers its window title under.
const KeyTitle boot.ServiceKey = "demo.title"

// ErrNotReady is returned by Main when the application did not finish
// initialization.
var ErrNotReady = errors.New("demo: application not ready")

// App records which lifecycle steps ran.
type App struct {
	out      io.Writer
	services *boot.Locator

	Windowing platform.WindowingInfo
	Steps     []string
	ready     bool
}

// RegisterServices implements boot.Application.
func (a *App) RegisterServices() error {
	a.Steps = append(a.Steps, "RegisterServices")
	return a.services.Bind(KeyTitle, "appboot demo")
}

// Initialize implements boot.Application. It needs the windowing subsystem
// to have published its WindowingInfo.
func (a *App) Initialize() error {
	a.Steps = append(a.Steps, "Initialize")
	info, err := boot.TryGetAs[platform.WindowingInfo](a.services, platform.KeyWindowing)
	if err != nil {
		return fmt.Errorf("demo: initialize: %w", err)
	}
	a.Windowing = info
	return nil
}

// OnFrameworkInitializationCompleted implements boot.Application.
func (a *App) OnFrameworkInitializationCompleted() error {
	a.Steps = append(a.Steps, "OnFrameworkInitializationCompleted")
	a.ready = true
	return nil
}

// Ready reports whether OnFrameworkInitializationCompleted has run.
func (a *App) Ready() bool { return a.ready }

// BuildApp returns a Builder for the demo writing to out. Platform wiring is
// left to the caller.
func BuildApp(out io.Writer) *boot.Builder {
	var b *boot.Builder
	b = boot.Configure(func() *App {
		return &App{out: out, services: b.Services()}
	})
	return b
}

// Main is the demo's boot.MainFunc. It prints one line describing the
// running instance and returns.
func Main(app boot.Application, args []string) error {
	a, ok := app.(*App)
	if !ok || !a.ready {
		return ErrNotReady
	}
	title := boot.MustGetAs[string](a.services, KeyTitle)
	_, err := fmt.Fprintf(a.out, "%s running on %s (%s) args=[%s]\n",
		title, a.Windowing.Name, strings.Join(a.Windowing.RenderingModes, ","), strings.Join(args, " "))
	return err
}
