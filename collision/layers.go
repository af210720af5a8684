// Package collision keeps the named collision layers track objects are
// assigned to. Each layer owns one bit of a Mask; the layer name doubles as the
// resolv tag so broadphase queries can filter by it.
package collision

import (
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// Mask is a set of layers.
type Mask uint32

const maxLayers = 32

// Has reports whether every layer in other is also in m.
func (m Mask) Has(other Mask) bool { return m&other == other }

var ErrTooManyLayers = errors.New("collision layers exhausted")

// Registry hands out one bit per layer name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names []string
	bits  map[string]Mask
}

func NewRegistry(names ...string) *Registry {
	r := &Registry{bits: make(map[string]Mask)}
	for _, n := range names {
		if _, err := r.Register(n); err != nil {
			panic(err)
		}
	}
	return r
}

// Register returns the bit for name, assigning the next free one the first
// time a name is seen.
func (r *Registry) Register(name string) (Mask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.bits[name]; ok {
		return m, nil
	}
	if len(r.names) >= maxLayers {
		return 0, fmt.Errorf("register %q: %w", name, ErrTooManyLayers)
	}

	m := Mask(1) << len(r.names)
	r.names = append(r.names, name)
	r.bits[name] = m
	return m, nil
}

// Mask combines the named layers. Unknown names contribute nothing.
func (r *Registry) Mask(names ...string) Mask {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var m Mask
	for _, n := range names {
		m |= r.bits[n]
	}
	return m
}

// Names lists the layers in m in registration order.
func (r *Registry) Names(m Mask) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.names, func(n string, _ int) bool {
		return m.Has(r.bits[n])
	})
}

// Layers returns every registered layer name.
func (r *Registry) Layers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}
