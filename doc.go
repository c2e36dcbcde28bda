// Package appboot is a staged bootstrap builder for desktop applications.
//
// It wires platform detection, three named subsystem initializers (runtime
// platform services, rendering, windowing) and the application's lifecycle
// hooks, then runs them once in a fixed order.
//
// Package layout:
//   - boot: Builder, callback chains, service Locator, entry-point Registry
//   - platform: OS dispatch plus the Win32, X11 and Skia extensions
//   - cmd/appboot: process entry (flags, config, logging, Start)
//
// Wiring is explicit. Entry points are looked up by name, never discovered
// through reflection.
package appboot
