package gateway

import (
	"fmt"
	"sync"
)

// Provider is a Gateway that identifies itself with a code ("http",
// "memory") so the service selector can pick an implementation from
// configuration.
type Provider interface {
	Gateway
	Code() string
}

// Registry manages the registered gateway implementations.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates a new gateway registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register registers a gateway implementation under its code.
func (r *Registry) Register(provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := provider.Code()
	if code == "" {
		return fmt.Errorf("gateway code cannot be empty")
	}
	if _, exists := r.providers[code]; exists {
		return fmt.Errorf("gateway %s is already registered", code)
	}

	r.providers[code] = provider
	return nil
}

// Get returns the gateway registered under code.
func (r *Registry) Get(code string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[code]
	if !exists {
		return nil, fmt.Errorf("gateway %s not found", code)
	}
	return provider, nil
}

// Has checks whether a gateway is registered under code.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[code]
	return exists
}
