// Package transport defines the collaborator that carries a Linkar request
// to the server and returns its raw response. Framing, sessions and
// reconnection live behind this interface.
package transport

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// Transport executes one request and blocks until the response arrives or
// the request's receive timeout expires. Errors are returned as-is to the
// caller of the operation.
type Transport interface {
	Execute(ctx context.Context, req *protocol.Request) (string, error)
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req *protocol.Request) (string, error)

// Execute calls f.
func (f Func) Execute(ctx context.Context, req *protocol.Request) (string, error) {
	return f(ctx, req)
}

// MetricsReporter is implemented by transports that keep counters.
type MetricsReporter interface {
	GetMetrics() Metrics
}

// Metrics contains performance counters of a transport
type Metrics struct {
	// TotalRequests is the total number of requests executed
	TotalRequests int64

	// TotalErrors is the total number of failed requests
	TotalErrors int64

	// AverageLatency is the average round-trip latency
	AverageLatency time.Duration

	// LastError is the most recent error encountered
	LastError error

	// LastErrorTime is when the last error occurred
	LastErrorTime time.Time

	// BytesSent is the total size of composed arguments sent
	BytesSent int64

	// BytesReceived is the total size of responses received
	BytesReceived int64
}

// Factory creates a transport for a credential.
type Factory func(cred protocol.Credential) (Transport, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a transport available by name, for example to the CLI.
// Registering the same name twice panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("transport: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("transport: Register called twice for " + name)
	}
	registry[name] = f
}

// Open creates the transport registered under name.
func Open(name string, cred protocol.Credential) (Transport, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("transport: unknown transport %q (registered: %v)", name, Registered())
	}
	return f(cred)
}

// Registered returns the sorted names of registered transports.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
