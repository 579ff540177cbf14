// Package dump is a transport that prints each request instead of sending
// it. The CLI uses it for dry runs.
package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport"
)

func init() {
	transport.Register("dump", func(protocol.Credential) (transport.Transport, error) {
		return New(os.Stdout), nil
	})
}

// Transport writes the header and composed arguments of every request to
// an io.Writer and answers with a fixed response.
type Transport struct {
	mu       sync.Mutex
	w        io.Writer
	visible  bool
	response string
}

// Option configures a dump transport.
type Option func(*Transport)

// WithRawMarks writes the delimiter bytes unchanged instead of their
// printable stand-ins.
func WithRawMarks() Option {
	return func(t *Transport) { t.visible = false }
}

// WithResponse sets the response returned for every request.
func WithResponse(resp string) Option {
	return func(t *Transport) { t.response = resp }
}

// New creates a dump transport writing to w.
func New(w io.Writer, opts ...Option) *Transport {
	t := &Transport{w: w, visible: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Execute implements transport.Transport.
func (t *Transport) Execute(ctx context.Context, req *protocol.Request) (string, error) {
	header := protocol.Header(req)
	args := protocol.ComposeArguments(req)
	if t.visible {
		header = protocol.Visible(header)
		args = protocol.Visible(args)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.w, "%s %s %s\n  header:    %s\n  arguments: %s\n",
		req.ID, req.Operation, req.Credential.Address(), header, args); err != nil {
		return "", protocol.ConnectionError("dump: write failed", map[string]interface{}{"error": err.Error()})
	}
	return t.response, nil
}
