package client

import (
	"context"
	"time"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// HookContext contains information about the operation being executed.
// This is passed to hooks to allow inspection.
type HookContext struct {
	// Request is the fully composed request. Hooks must not modify it.
	Request *protocol.Request

	// Operation is Request.Operation, repeated for convenience
	Operation protocol.OperationCode

	// RequestID is the unique identifier for this operation
	RequestID string

	// StartTime is when the operation began
	StartTime time.Time

	// Metadata allows hooks to store arbitrary data for passing between Before/After
	Metadata map[string]interface{}

	// Response is the raw response (available in After hook)
	Response string

	// Error stores the transport error, if any (available in After hook)
	Error error

	// Duration is the execution time (available in After hook)
	Duration time.Duration
}

// Hook is the interface that all hooks must implement.
type Hook interface {
	// Name returns the unique name of this hook
	Name() string

	// Before is called before the transport is invoked.
	// Returning an error aborts the operation; the caller receives a
	// *HookError wrapping it.
	Before(ctx context.Context, hookCtx *HookContext) error

	// After is called after the transport returns (even if it failed).
	// Errors are logged; they never replace the operation's result.
	After(ctx context.Context, hookCtx *HookContext) error
}

// hookEntry wraps a Hook with its registration order for stable iteration.
type hookEntry struct {
	hook  Hook
	order int
}

// RegisterHook adds a hook to the client's hook chain.
// Hooks are executed in FIFO order (first registered, first executed).
// If a hook with the same name already exists, it is replaced.
func (c *Client) RegisterHook(hook Hook) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()

	for i, entry := range c.hooks {
		if entry.hook.Name() == hook.Name() {
			// Replace existing hook, preserve order
			c.hooks[i].hook = hook
			c.logger.Info("hook replaced", String("hook", hook.Name()))
			return
		}
	}

	order := len(c.hooks)
	c.hooks = append(c.hooks, hookEntry{hook: hook, order: order})
	c.logger.Debug("hook registered", String("hook", hook.Name()), Int("order", order))
}

// UnregisterHook removes a hook by name.
// Returns true if the hook was found and removed, false otherwise.
func (c *Client) UnregisterHook(name string) bool {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()

	for i, entry := range c.hooks {
		if entry.hook.Name() == name {
			c.hooks = append(c.hooks[:i], c.hooks[i+1:]...)
			c.logger.Debug("hook unregistered", String("hook", name))
			return true
		}
	}

	return false
}

// GetHooks returns the names of all registered hooks in execution order.
func (c *Client) GetHooks() []string {
	c.hooksMu.RLock()
	defer c.hooksMu.RUnlock()

	names := make([]string, len(c.hooks))
	for i, entry := range c.hooks {
		names[i] = entry.hook.Name()
	}
	return names
}

func (c *Client) snapshotHooks() []Hook {
	c.hooksMu.RLock()
	defer c.hooksMu.RUnlock()
	hooks := make([]Hook, len(c.hooks))
	for i, entry := range c.hooks {
		hooks[i] = entry.hook
	}
	return hooks
}

// executeBeforeHooks runs all Before hooks in order.
// If any hook returns an error, execution stops and the error is returned.
func (c *Client) executeBeforeHooks(ctx context.Context, hookCtx *HookContext) error {
	for _, hook := range c.snapshotHooks() {
		if err := hook.Before(ctx, hookCtx); err != nil {
			c.logger.Debug("hook aborted operation",
				String("hook", hook.Name()),
				String("operation", hookCtx.Operation.String()),
				String("request_id", hookCtx.RequestID),
				Error("error", err))
			return &HookError{Hook: hook.Name(), Phase: "before", RequestID: hookCtx.RequestID, Cause: err}
		}
	}

	return nil
}

// executeAfterHooks runs all After hooks in order.
// All hooks are executed even if one returns an error.
func (c *Client) executeAfterHooks(ctx context.Context, hookCtx *HookContext) {
	for _, hook := range c.snapshotHooks() {
		if err := hook.After(ctx, hookCtx); err != nil {
			c.logger.Warn("hook returned error in After",
				String("hook", hook.Name()),
				String("operation", hookCtx.Operation.String()),
				String("request_id", hookCtx.RequestID),
				Error("error", err))
		}
	}
}
