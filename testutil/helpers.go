// Package testutil holds fixtures for tests that drive the client against
// the mock transport.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dan-strohschein/linkar-go/client"
	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport/mock"
)

// TestCredential returns a well formed credential for the demo entry point.
func TestCredential() protocol.Credential {
	return protocol.NewCredential("127.0.0.1", "QMEP1", 11300, "admin", "admin")
}

// NewTestClient creates a client over a fresh mock transport. The client is
// drained when the test ends.
func NewTestClient(t testing.TB, opts ...func(*client.ClientOptions)) (*client.Client, *mock.MockTransport) {
	t.Helper()

	mt := mock.NewMockTransport()
	o := client.DefaultOptions()
	o.Logger = client.NewNoopLogger()
	for _, opt := range opts {
		opt(&o)
	}

	c := client.New(mt, &o)
	t.Cleanup(c.Wait)
	return c, mt
}

// WithTimeout creates a context with timeout for tests. Default is 5s.
func WithTimeout(t testing.TB, timeout ...time.Duration) context.Context {
	t.Helper()

	d := 5 * time.Second
	if len(timeout) > 0 {
		d = timeout[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// LastRequest fails the test when the transport saw no request.
func LastRequest(t testing.TB, mt *mock.MockTransport) *protocol.Request {
	t.Helper()

	req := mt.LastRequest()
	if req == nil {
		t.Fatal("transport received no request")
	}
	return req
}

// WaitFor polls condition until it returns true or timeout elapses.
func WaitFor(t testing.TB, timeout, interval time.Duration, condition func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(interval)
	}
	return false
}
