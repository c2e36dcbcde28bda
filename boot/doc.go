// Package boot provides a staged bootstrap builder for desktop applications.
//
// A Builder accumulates one application factory, three subsystem slots and
// three callback chains, then runs them once in a fixed order:
//
//  1. runtime platform services
//  2. rendering (optional)
//  3. windowing
//  4. AfterPlatformServicesSetup callbacks
//  5. application factory
//  6. Application.RegisterServices
//  7. Application.Initialize
//  8. AfterApplicationSetup callbacks
//  9. AfterSetup callbacks
//  10. Application.OnFrameworkInitializationCompleted
//
// Two entry points exist:
//
//   - Setup validates that the runtime platform slot, the windowing slot and
//     the factory are present before anything runs. Failures are reported as
//     *MissingSubsystemError and no side effect happens.
//
//   - SetupUnsafe runs the sequence directly and silently skips unset slots.
//
// Wiring stays explicit: there is no reflection-based entry-point discovery.
// Entry points are looked up by name through a Registry instead.
//
// A Builder is not safe for concurrent use. Configure it fully on one
// goroutine, then call Setup or Start once.
//
// Import
//
//	"github.com/sghaida/appboot/boot"
package boot
