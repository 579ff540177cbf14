package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// TestHook is a simple hook for testing.
type TestHook struct {
	name         string
	beforeCalled bool
	afterCalled  bool
	beforeError  error
	afterError   error
	lastResponse string
}

func (h *TestHook) Name() string {
	return h.name
}

func (h *TestHook) Before(ctx context.Context, hookCtx *HookContext) error {
	h.beforeCalled = true
	return h.beforeError
}

func (h *TestHook) After(ctx context.Context, hookCtx *HookContext) error {
	h.afterCalled = true
	h.lastResponse = hookCtx.Response
	return h.afterError
}

// TestHookRegistration verifies hooks can be registered and unregistered.
func TestHookRegistration(t *testing.T) {
	client, _ := newTestClient(t)

	hook1 := &TestHook{name: "hook1"}
	hook2 := &TestHook{name: "hook2"}

	client.RegisterHook(hook1)
	client.RegisterHook(hook2)

	hooks := client.GetHooks()
	if len(hooks) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(hooks))
	}
	if hooks[0] != "hook1" || hooks[1] != "hook2" {
		t.Errorf("unexpected hook order: %v", hooks)
	}

	// Re-registering by name replaces in place
	client.RegisterHook(&TestHook{name: "hook1"})
	if got := client.GetHooks(); len(got) != 2 || got[0] != "hook1" {
		t.Errorf("expected replacement to keep order, got %v", got)
	}

	if !client.UnregisterHook("hook1") {
		t.Error("expected hook1 to be removed")
	}
	if client.UnregisterHook("missing") {
		t.Error("expected unknown hook removal to report false")
	}
	if got := client.GetHooks(); len(got) != 1 || got[0] != "hook2" {
		t.Errorf("unexpected hooks after removal: %v", got)
	}
}

func TestHooksRunAroundTransport(t *testing.T) {
	client, _ := newTestClient(t)
	hook := &TestHook{name: "observer"}
	client.RegisterHook(hook)

	if _, err := client.ExecuteStatement(context.Background(), testCred, "WHO"); err != nil {
		t.Fatal(err)
	}
	if !hook.beforeCalled || !hook.afterCalled {
		t.Errorf("expected both hook phases to run")
	}
	if hook.lastResponse != "OK" {
		t.Errorf("expected response in After, got %q", hook.lastResponse)
	}
}

func TestBeforeHookAborts(t *testing.T) {
	client, tr := newTestClient(t)
	denied := errors.New("denied")
	client.RegisterHook(&TestHook{name: "guard", beforeError: denied})

	_, err := client.ExecuteStatement(context.Background(), testCred, "CLEAR-FILE CUSTOMERS")
	if !errors.Is(err, denied) {
		t.Fatalf("expected hook error, got %v", err)
	}
	var hookErr *HookError
	if !errors.As(err, &hookErr) || hookErr.Hook != "guard" {
		t.Errorf("expected *HookError from guard, got %v", err)
	}
	if tr.GetCallCount() != 0 {
		t.Errorf("transport must not be called after an aborting hook")
	}
}

func TestAfterHookErrorDoesNotReplaceResult(t *testing.T) {
	client, tr := newTestClient(t)
	transportErr := protocol.TimeoutError("timeout", nil)
	tr.WithError(transportErr)
	client.RegisterHook(&TestHook{name: "noisy", afterError: errors.New("after failed")})

	_, err := client.ServerVersion(context.Background(), testCred)
	if err != transportErr {
		t.Fatalf("expected transport error unchanged, got %v", err)
	}
}

func TestHooksFromOptions(t *testing.T) {
	metrics := NewMetricsHook()
	c := New(newHandlerTransport(func() {}), &ClientOptions{Logger: NewNoopLogger(), Hooks: []Hook{metrics}})

	if got := c.GetHooks(); len(got) != 1 || got[0] != "metrics" {
		t.Fatalf("expected metrics hook registered, got %v", got)
	}
}
