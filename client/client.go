// Package client is the Linkar operation dispatcher. Each operation has a
// canonical method taking an argument struct whose zero fields are the
// documented defaults, a short form for the common case, and an Async
// variant returning a Future.
package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport"
)

// Client dispatches Linkar operations to a transport. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	transport transport.Transport
	opts      ClientOptions
	logger    Logger
	debugMode atomic.Bool
	logLevel  atomic.Value // string
	executor  *Executor
	hooks     []hookEntry  // Registered hooks in execution order
	hooksMu   sync.RWMutex // Protects hooks slice
}

// optionsValue is implemented by every options type.
type optionsValue interface {
	Encode() string
	Validate() error
}

// New creates a client that executes operations through t.
// If opts is nil, default options are used.
func New(t transport.Transport, opts *ClientOptions) *Client {
	if opts == nil {
		defaultOpts := DefaultOptions()
		opts = &defaultOpts
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.LogLevel, nil)
	}

	c := &Client{
		transport: t,
		opts:      *opts,
		logger:    logger,
	}
	c.debugMode.Store(opts.DebugMode)
	c.logLevel.Store(opts.LogLevel)
	c.executor = NewExecutor(opts.MaxInFlight, logger, opts.OnFutureStateChange)

	for _, h := range opts.Hooks {
		c.RegisterHook(h)
	}

	return c
}

// Transport returns the transport the client dispatches to.
func (c *Client) Transport() transport.Transport {
	return c.transport
}

// Executor returns the worker pool used by the Async methods.
func (c *Client) Executor() *Executor {
	return c.executor
}

// Wait blocks until every asynchronous operation started so far has
// completed. Operations cannot be cancelled, so this is the way to drain
// them before exit.
func (c *Client) Wait() {
	c.executor.Wait()
}

// SetLogLevel changes the logging level at runtime.
// Valid levels: DEBUG, INFO, WARN, ERROR.
func (c *Client) SetLogLevel(level string) {
	c.logLevel.Store(level)
	if l, ok := c.logger.(interface{ SetLevel(string) }); ok {
		l.SetLevel(level)
		c.logger.Info("log level changed", String("newLevel", level))
	}
}

// LogLevel returns the level last set through the options or SetLogLevel.
func (c *Client) LogLevel() string {
	level, _ := c.logLevel.Load().(string)
	return level
}

// execute is the single path every operation takes: validate and encode
// the options, stamp a request ID, run the hooks around the transport and
// hand back whatever the transport returned.
func (c *Client) execute(ctx context.Context, req *protocol.Request, opts optionsValue) (string, error) {
	if opts != nil {
		if !c.opts.SkipOptionValidation {
			if err := opts.Validate(); err != nil {
				c.logger.Warn("invalid options",
					String("operation", req.Operation.String()),
					Error("error", err))
				return "", err
			}
		}
		req.Options = opts.Encode()
	}

	req.ID = RequestIDFromContext(ctx)
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	start := time.Now()
	debugMode := c.IsDebugMode()

	hookCtx := &HookContext{
		Request:   req,
		Operation: req.Operation,
		RequestID: req.ID,
		StartTime: start,
		Metadata:  make(map[string]interface{}),
	}

	if err := c.executeBeforeHooks(ctx, hookCtx); err != nil {
		return "", err
	}

	if debugMode {
		c.logger.Debug("sending request",
			String("request_id", req.ID),
			String("operation", req.Operation.String()),
			String("address", req.Credential.Address()),
			String("header", protocol.Visible(protocol.Header(req))),
			String("options", protocol.Visible(req.Options)),
			Int("payload_size", len(req.Payload)),
			String("payload_digest", Digest(req.Payload)))
	}

	resp, err := c.transport.Execute(ctx, req)
	duration := time.Since(start)

	hookCtx.Response = resp
	hookCtx.Error = err
	hookCtx.Duration = duration

	if debugMode {
		c.logger.Debug("received response",
			String("request_id", req.ID),
			Int("response_size", len(resp)),
			String("response_digest", Digest(resp)),
			Duration("elapsed", duration),
			Bool("success", err == nil))
	}

	c.executeAfterHooks(ctx, hookCtx)

	return resp, err
}

// warnMissingSnapshot logs when a locked write carries no original
// records. The write is still sent: the originals may be embedded in the
// records payload.
func (c *Client) warnMissingSnapshot(op protocol.OperationCode, locked bool, snapshot string) {
	if locked && snapshot == "" {
		c.logger.Warn("optimistic lock set without original records",
			String("operation", op.String()))
	}
}
