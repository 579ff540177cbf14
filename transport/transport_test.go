package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-strohschein/linkar-go/protocol"
)

func TestFuncAdapter(t *testing.T) {
	var got *protocol.Request
	tr := Func(func(ctx context.Context, req *protocol.Request) (string, error) {
		got = req
		return "ok", nil
	})

	req := &protocol.Request{Operation: protocol.OpVersion}
	resp, err := tr.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Same(t, req, got)
}

func TestRegistry(t *testing.T) {
	Register("test-echo", func(cred protocol.Credential) (Transport, error) {
		return Func(func(ctx context.Context, req *protocol.Request) (string, error) {
			return cred.Host, nil
		}), nil
	})

	tr, err := Open("test-echo", protocol.Credential{Host: "db1"})
	require.NoError(t, err)
	resp, err := tr.Execute(context.Background(), &protocol.Request{})
	require.NoError(t, err)
	assert.Equal(t, "db1", resp)
	assert.Contains(t, Registered(), "test-echo")

	_, err = Open("missing", protocol.Credential{})
	assert.Error(t, err)

	assert.Panics(t, func() {
		Register("test-echo", func(protocol.Credential) (Transport, error) { return nil, nil })
	})
}
