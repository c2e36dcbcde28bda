// Package platform decides which subsystem wiring a Builder gets.
//
// Dispatch takes the OS identity as a parameter instead of reading it from
// the process, so every branch can be exercised in tests. Detect maps the
// running process's GOOS for use in main.
//
// The Win32, X11 and Skia extensions here only record their options into the
// Builder's service Locator; they make no window-system or graphics calls.
package platform
