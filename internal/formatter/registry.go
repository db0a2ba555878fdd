package formatter

import (
	"sort"
	"sync"
)

// Constructor builds a Formatter for one lookup.
type Constructor func() Formatter

// Registry maps currency codes to formatter constructors. Lookups of codes that
// were never registered return the fallback formatter.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
	fallback     Constructor
}

// NewRegistry creates an empty Registry. A nil fallback means Passthrough.
func NewRegistry(fallback Constructor) *Registry {
	if fallback == nil {
		fallback = func() Formatter { return Passthrough{} }
	}
	return &Registry{
		constructors: make(map[string]Constructor),
		fallback:     fallback,
	}
}

// NewDefaultRegistry registers USD conversion and TWD passthrough.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(nil)
	r.Register("USD", NewUSDFormatter)
	r.Register(LocalCurrency, func() Formatter { return Passthrough{} })
	return r
}

// Register adds or replaces the constructor for code.
func (r *Registry) Register(code string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[code] = c
}

// Get returns the formatter for code. It never returns nil.
func (r *Registry) Get(code string) Formatter {
	r.mu.RLock()
	c, ok := r.constructors[code]
	r.mu.RUnlock()
	if !ok {
		return r.fallback()
	}
	return c()
}

// Codes lists the registered currency codes in sorted order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.constructors))
	for code := range r.constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
