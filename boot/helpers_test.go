package boot_test

import (
	"github.com/sghaida/appboot/boot"
)

// trace records the order in which steps ran.
type trace struct{ steps []string }

func (t *trace) add(step string) { t.steps = append(t.steps, step) }

func (t *trace) init(step string) func() error {
	return func() error { t.add(step); return nil }
}

func (t *trace) cb(step string) boot.Callback {
	return func(*boot.Builder) error { t.add(step); return nil }
}

// spyApp is an Application that records lifecycle calls.
type spyApp struct {
	tr *trace

	registerErr error
	initErr     error
	completeErr error
}

func (a *spyApp) RegisterServices() error {
	a.tr.add("RegisterServices")
	return a.registerErr
}

func (a *spyApp) Initialize() error {
	a.tr.add("Initialize")
	return a.initErr
}

func (a *spyApp) OnFrameworkInitializationCompleted() error {
	a.tr.add("OnFrameworkInitializationCompleted")
	return a.completeErr
}

func newSpyBuilder(tr *trace) *boot.Builder {
	return boot.Configure(func() *spyApp {
		tr.add("factory")
		return &spyApp{tr: tr}
	})
}

// fullyConfigured wires every slot and one callback per chain.
func fullyConfigured(tr *trace) *boot.Builder {
	return newSpyBuilder(tr).
		UseRuntimePlatformSubsystem(tr.init("runtime"), "R").
		UseRenderingSubsystem(tr.init("rendering"), "Skia").
		UseWindowingSubsystem(tr.init("windowing"), "W").
		AfterPlatformServicesSetup(tr.cb("afterPlatformServices")).
		AfterApplicationSetup(tr.cb("afterApplication")).
		AfterSetup(tr.cb("afterSetup"))
}
