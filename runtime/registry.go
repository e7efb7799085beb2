package runtime

import (
	"sync"

	"github.com/yeajay0001/dquest/internal/debug"
	"github.com/yeajay0001/dquest/schema"
)

// Registry maps model types to the Connection they default to. At most
// one default Connection exists per model type. The registry is safe
// for concurrent use across independent connection lifecycles.
//
// A process-wide registry backs the package-level DefaultConnection;
// tests and embedders can inject their own via WithRegistry.
type Registry struct {
	mu      sync.RWMutex
	byModel map[schema.MetaInfo]Connection
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byModel: make(map[schema.MetaInfo]Connection)}
}

var globalRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry { return globalRegistry }

// DefaultConnection returns the connection the model defaults to. A
// model that was never bound yields a null Connection and a warning.
func (r *Registry) DefaultConnection(info schema.MetaInfo) Connection {
	if info == nil {
		return Connection{}
	}

	r.mu.RLock()
	conn, ok := r.byModel[info]
	r.mu.RUnlock()

	if !ok {
		debug.Warn("model is not added to any connection yet", "model", info.Name())
		return Connection{}
	}
	return conn
}

// bind registers conn as the model's default. Without override it is
// first-writer-wins: an existing mapping is kept.
func (r *Registry) bind(info schema.MetaInfo, conn Connection, override bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byModel[info]; ok && !override {
		return
	}
	r.byModel[info] = conn
}

// remove drops the model's mapping, but only if it currently points at
// conn.
func (r *Registry) remove(info schema.MetaInfo, conn Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.byModel[info]; ok && current == conn {
		delete(r.byModel, info)
	}
}
