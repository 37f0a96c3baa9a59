package provider

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownProvider is returned by Select for names that were never registered.
var ErrUnknownProvider = errors.New("unknown provider")

// Registry maps provider names to Provider implementations.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry holding the given providers, keyed by Name.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds a provider under its own name, replacing any previous one.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns the provider registered under the given name.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Has reports whether a provider with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Select is Get with an error naming the available providers.
func (r *Registry) Select(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownProvider, name, strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Names returns a sorted list of all registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
