package boot

import (
	"errors"
	"strconv"
)

var (
	// ErrNilService is returned when a nil value is bound into a Locator.
	ErrNilService = errors.New("boot: nil service")

	// ErrNilLocator is returned when binding into a nil Locator.
	ErrNilLocator = errors.New("boot: nil locator")

	// ErrNilRegistry is returned by Resolve on a nil Registry.
	ErrNilRegistry = errors.New("boot: nil registry")

	// ErrNilApplication is returned by SetupUnsafe when the factory returns nil.
	ErrNilApplication = errors.New("boot: application factory returned nil")

	// ErrNilMain is returned by Start when main is nil.
	ErrNilMain = errors.New("boot: nil main function")
)

// MissingSubsystemError is returned by Setup when a required slot is empty.
//
// It is never returned by SetupUnsafe.
type MissingSubsystemError struct{ Slot Slot }

// Error implements the error interface.
func (e *MissingSubsystemError) Error() string {
	// Example: boot: required subsystem "windowing" is not configured
	return "boot: required subsystem " + strconv.Quote(string(e.Slot)) + " is not configured"
}

// DuplicateServiceError is returned when a key is bound twice in a Locator.
type DuplicateServiceError struct{ Key ServiceKey }

// Error implements the error interface.
func (e *DuplicateServiceError) Error() string {
	return "boot: duplicate service key " + strconv.Quote(string(e.Key))
}

// MissingServiceError is returned by TryGetAs when a key is not bound.
type MissingServiceError struct{ Key ServiceKey }

// Error implements the error interface.
func (e *MissingServiceError) Error() string {
	return "boot: service " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeServiceError is returned by TryGetAs when a key is bound to a value
// of a different type than requested.
type WrongTypeServiceError struct {
	// Key is the service key requested.
	Key ServiceKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e *WrongTypeServiceError) Error() string {
	return "boot: service " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}
