package registry

import "sync"

var (
	globalRegistry *Registry // singleton, initialized on first use
	globalOnce     sync.Once
)

// Global returns the process-wide registry that declared tests register into.
// It is created on first use so that registrations from any package
// initializer find it regardless of initialization order.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = New()
	})
	return globalRegistry
}
