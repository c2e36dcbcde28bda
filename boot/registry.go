package boot

import (
	"fmt"
	"sort"
)

// EntryPoint pairs the function building an application's Builder with the
// main function Start hands the instance to.
type EntryPoint struct {
	Build func() *Builder
	Main  MainFunc
}

// Registry is an explicit lookup table of entry points keyed by name.
// It replaces discovering an application's builder method at runtime.
//
// Expected usage:
//
//	reg := boot.NewRegistry().Provide("notes", boot.EntryPoint{Build: notes.BuildApp, Main: notes.Main})
//	entry, ok, err := reg.Resolve("notes")
type Registry struct {
	items map[string]EntryPoint
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]EntryPoint{}}
}

// Provide stores an entry point under name and returns the registry for chaining.
// A later Provide for the same name replaces the earlier one.
func (r *Registry) Provide(name string, entry EntryPoint) *Registry {
	r.items[name] = entry
	return r
}

// Resolve looks up name. ok is false for an unknown name; a nil Registry
// fails with ErrNilRegistry.
func (r *Registry) Resolve(name string) (EntryPoint, bool, error) {
	if r == nil {
		return EntryPoint{}, false, ErrNilRegistry
	}
	entry, ok := r.items[name]
	return entry, ok, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MustGet returns the entry point or panics with a helpful message.
func (r *Registry) MustGet(name string) EntryPoint {
	entry, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("boot: registry missing entry point %q", name))
	}
	return entry
}
