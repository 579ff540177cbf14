package client

import (
	"context"

	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport"
)

// newHandlerTransport returns a transport that runs fn and answers "OK".
func newHandlerTransport(fn func()) transport.Transport {
	return transport.Func(func(ctx context.Context, req *protocol.Request) (string, error) {
		fn()
		return "OK", nil
	})
}

func versionAsync(c *Client) *Future {
	return c.GetVersionAsync(context.Background(), testCred, GetVersionArgs{})
}
