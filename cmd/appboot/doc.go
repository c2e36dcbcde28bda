// appboot bootstraps a registered application for the host platform.
//
// It loads configuration (defaults, optional YAML file, APPBOOT_* env),
// picks the platform wiring for the detected or overridden OS, validates the
// Builder and starts the application. Arguments after the flags (or after
// "--") are forwarded verbatim to the application's main function.
//
// Usage:
//
//	appboot [--config file] [--platform windows|linux] [--app name]
//	        [--log-level level] [--log-format text|json] [-- args...]
package main
