package boot

import (
	"reflect"
	"sort"
)

// ServiceKey identifies a platform service stored in a Locator.
//
// Keys are typically defined as package-level constants to avoid typos.
type ServiceKey string

// Locator is the keyed store platform initializers publish their services
// into. Callbacks and applications read from it after the platform steps ran.
//
// The zero value is not usable; use NewLocator.
type Locator struct {
	items map[ServiceKey]any
}

// NewLocator returns an empty Locator.
func NewLocator() *Locator {
	return &Locator{items: make(map[ServiceKey]any)}
}

// Bind stores val under key.
//
// It fails with ErrNilLocator on a nil Locator, with ErrNilService for a nil
// val and with *DuplicateServiceError when the key is already bound.
func (l *Locator) Bind(key ServiceKey, val any) error {
	if l == nil {
		return ErrNilLocator
	}
	if val == nil {
		return ErrNilService
	}
	if _, exists := l.items[key]; exists {
		return &DuplicateServiceError{Key: key}
	}
	l.items[key] = val
	return nil
}

// Has reports whether a service is bound for the key (regardless of type).
func (l *Locator) Has(key ServiceKey) bool {
	if l == nil {
		return false
	}
	_, ok := l.items[key]
	return ok
}

// GetAny returns the raw stored service without type assertions.
func (l *Locator) GetAny(key ServiceKey) (any, bool) {
	if l == nil {
		return nil, false
	}
	v, ok := l.items[key]
	return v, ok
}

// Keys returns the bound keys in sorted order.
func (l *Locator) Keys() []ServiceKey {
	if l == nil {
		return nil
	}
	keys := make([]ServiceKey, 0, len(l.items))
	for k := range l.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAs returns the service typed as D.
//
// ok is false if the key is missing or the stored value is not a D.
func GetAs[D any](l *Locator, key ServiceKey) (D, bool) {
	var zero D
	raw, ok := l.GetAny(key)
	if !ok {
		return zero, false
	}
	d, ok := raw.(D)
	return d, ok
}

// TryGetAs returns the service typed as D.
//
// It returns:
//   - *MissingServiceError if the key is not bound
//   - *WrongTypeServiceError if the key is bound to something other than a D
func TryGetAs[D any](l *Locator, key ServiceKey) (D, error) {
	var zero D
	raw, ok := l.GetAny(key)
	if !ok {
		return zero, &MissingServiceError{Key: key}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, &WrongTypeServiceError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustGetAs returns the service typed as D or panics with the TryGetAs error.
func MustGetAs[D any](l *Locator, key ServiceKey) D {
	d, err := TryGetAs[D](l, key)
	if err != nil {
		panic(err)
	}
	return d
}
