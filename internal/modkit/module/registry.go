package module

import (
	"slices"
	"sync"
)

// process wide port registry, filled by api.Modules while composing the server
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register records the port set of the named module, replacing any earlier one
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the port set registered under name as a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists the registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reset empties the registry; tests only
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reg = map[string]any{}
}
