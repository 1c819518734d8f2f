package module

import "sync"

// process-global port registry. Mount registers each module's ports
// under its name so late consumers can look them up without holding the
// module value
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name, replacing any prior
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches the port set for name and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset empties the registry between tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
