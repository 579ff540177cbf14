// Package mock provides a recording transport stub for tests.
package mock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport"
)

// Handler computes the response for a request. It overrides every other
// configured behavior.
type Handler func(ctx context.Context, req *protocol.Request) (string, error)

// MockTransport implements transport.Transport for testing
type MockTransport struct {
	// Behavior configuration
	response  string
	responses map[protocol.OperationCode]string
	err       error
	delay     time.Duration
	handler   Handler

	// Call tracking
	calls atomic.Int32

	// Metrics
	metrics mockMetrics
	mu      sync.RWMutex
	history []*protocol.Request
}

type mockMetrics struct {
	totalRequests atomic.Int64
	totalErrors   atomic.Int64
	bytesSent     atomic.Int64
	bytesReceived atomic.Int64
	latencySum    atomic.Int64
}

// NewMockTransport creates a new mock transport
func NewMockTransport() *MockTransport {
	return &MockTransport{
		responses: make(map[protocol.OperationCode]string),
		history:   make([]*protocol.Request, 0),
	}
}

// WithResponse configures the response returned for every operation
func (m *MockTransport) WithResponse(resp string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = resp
	return m
}

// WithOperationResponse configures the response for one operation
func (m *MockTransport) WithOperationResponse(op protocol.OperationCode, resp string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[op] = resp
	return m
}

// WithError configures the transport to fail every call
func (m *MockTransport) WithError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithDelay adds a delay before every response
func (m *MockTransport) WithDelay(delay time.Duration) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = delay
	return m
}

// WithHandler replaces the canned behavior with h
func (m *MockTransport) WithHandler(h Handler) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = h
	return m
}

// Execute implements transport.Transport
func (m *MockTransport) Execute(ctx context.Context, req *protocol.Request) (string, error) {
	start := time.Now()
	m.calls.Add(1)
	m.metrics.totalRequests.Add(1)
	m.metrics.bytesSent.Add(int64(len(protocol.ComposeArguments(req))))

	m.mu.Lock()
	m.history = append(m.history, req)
	delay := m.delay
	err := m.err
	handler := m.handler
	resp, ok := m.responses[req.Operation]
	if !ok {
		resp = m.response
	}
	m.mu.Unlock()

	defer func() {
		m.metrics.latencySum.Add(int64(time.Since(start)))
	}()

	if delay > 0 {
		select {
		case <-ctx.Done():
			m.metrics.totalErrors.Add(1)
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if handler != nil {
		resp, err = handler(ctx, req)
	}
	if err != nil {
		m.metrics.totalErrors.Add(1)
		return "", err
	}

	m.metrics.bytesReceived.Add(int64(len(resp)))
	return resp, nil
}

// GetMetrics implements transport.MetricsReporter
func (m *MockTransport) GetMetrics() transport.Metrics {
	totalReqs := m.metrics.totalRequests.Load()
	avgLatency := time.Duration(0)
	if totalReqs > 0 {
		avgLatency = time.Duration(m.metrics.latencySum.Load() / totalReqs)
	}

	return transport.Metrics{
		TotalRequests:  totalReqs,
		TotalErrors:    m.metrics.totalErrors.Load(),
		AverageLatency: avgLatency,
		BytesSent:      m.metrics.bytesSent.Load(),
		BytesReceived:  m.metrics.bytesReceived.Load(),
	}
}

// GetCallCount returns the number of times Execute was called
func (m *MockTransport) GetCallCount() int {
	return int(m.calls.Load())
}

// GetHistory returns every request executed through this transport
func (m *MockTransport) GetHistory() []*protocol.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modifications
	history := make([]*protocol.Request, len(m.history))
	copy(history, m.history)
	return history
}

// LastRequest returns the most recent request, or nil.
func (m *MockTransport) LastRequest() *protocol.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.history) == 0 {
		return nil
	}
	return m.history[len(m.history)-1]
}

// Reset clears all state and call counts
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.response = ""
	m.responses = make(map[protocol.OperationCode]string)
	m.err = nil
	m.delay = 0
	m.handler = nil

	m.calls.Store(0)

	m.metrics.totalRequests.Store(0)
	m.metrics.totalErrors.Store(0)
	m.metrics.bytesSent.Store(0)
	m.metrics.bytesReceived.Store(0)
	m.metrics.latencySum.Store(0)

	m.history = make([]*protocol.Request, 0)
}
