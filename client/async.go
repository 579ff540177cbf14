package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// Executor is the worker pool behind the Async methods. Each task runs on
// its own goroutine; with a positive limit at most that many run at once
// and the rest wait their turn without blocking the submitter.
type Executor struct {
	sem       *semaphore.Weighted
	limit     int
	logger    Logger
	onChange  StateChangeHandler
	wg        sync.WaitGroup
	inFlight  atomic.Int64
	submitted atomic.Int64
}

// NewExecutor creates an executor. maxInFlight <= 0 means unbounded.
func NewExecutor(maxInFlight int, logger Logger, onChange StateChangeHandler) *Executor {
	if logger == nil {
		logger = NewNoopLogger()
	}
	e := &Executor{limit: maxInFlight, logger: logger, onChange: onChange}
	if maxInFlight > 0 {
		e.sem = semaphore.NewWeighted(int64(maxInFlight))
	}
	return e
}

// MaxInFlight returns the concurrency limit, 0 when unbounded.
func (e *Executor) MaxInFlight() int {
	if e.limit < 0 {
		return 0
	}
	return e.limit
}

// InFlight returns the number of tasks currently running.
func (e *Executor) InFlight() int64 { return e.inFlight.Load() }

// Submitted returns the number of tasks submitted so far.
func (e *Executor) Submitted() int64 { return e.submitted.Load() }

// Submit schedules fn and returns immediately. fn runs with a context that
// keeps ctx's values but is never cancelled: once submitted, the operation
// runs to completion, bounded only by its receive timeout.
func (e *Executor) Submit(ctx context.Context, op protocol.OperationCode, fn func(ctx context.Context) (string, error)) *Future {
	id := RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.New().String()
	}
	taskCtx := WithRequestID(context.WithoutCancel(ctx), id)

	f := &Future{
		id:    id,
		op:    op,
		state: NewStateManager(),
		done:  make(chan struct{}),
	}
	if e.onChange != nil {
		f.state.OnStateChange(e.onChange)
	}

	e.submitted.Add(1)
	e.wg.Add(1)
	go e.run(taskCtx, f, fn)
	return f
}

func (e *Executor) run(ctx context.Context, f *Future, fn func(ctx context.Context) (string, error)) {
	defer e.wg.Done()

	if e.sem != nil {
		// The context is never cancelled, so Acquire only returns once a
		// slot is free.
		_ = e.sem.Acquire(ctx, 1)
		defer e.sem.Release(1)
	}

	e.inFlight.Add(1)
	defer e.inFlight.Add(-1)

	meta := map[string]interface{}{"request_id": f.id, "operation": f.op.String()}
	_ = f.state.TransitionTo(RUNNING, nil, meta)

	resp, err := e.call(ctx, fn)
	if err != nil {
		err = &AsyncError{Op: f.op, RequestID: f.id, Cause: err, Timestamp: time.Now()}
		e.logger.Debug("async operation failed",
			String("request_id", f.id),
			String("operation", f.op.String()),
			Error("error", err))
	}
	f.complete(resp, err, meta)
}

// call runs fn, turning a panic into a *PanicError so a broken transport
// cannot take the process down from a worker goroutine.
func (e *Executor) call(ctx context.Context, fn func(ctx context.Context) (string, error)) (resp string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("async operation panicked", String("panic", fmt.Sprint(r)))
			err = &PanicError{Value: r, StackTrace: captureStackTrace(4)}
		}
	}()
	return fn(ctx)
}

// Wait blocks until every submitted task has completed.
func (e *Executor) Wait() {
	e.wg.Wait()
}

// Future is the handle of an asynchronous operation.
type Future struct {
	id    string
	op    protocol.OperationCode
	state *StateManager
	done  chan struct{}

	resp string
	err  error
}

// ID returns the request ID of the operation.
func (f *Future) ID() string { return f.id }

// Operation returns the operation code.
func (f *Future) Operation() protocol.OperationCode { return f.op }

// State returns the current lifecycle state.
func (f *Future) State() FutureState { return f.state.GetState() }

// Done is closed when the operation has completed.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the operation completes. On failure the error is an
// *AsyncError whose Cause is what the synchronous call returned.
func (f *Future) Wait() (string, error) {
	<-f.done
	return f.resp, f.err
}

// Get waits like Wait but gives up when ctx is done. Giving up does not
// cancel the operation.
func (f *Future) Get(ctx context.Context) (string, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *Future) complete(resp string, err error, meta map[string]interface{}) {
	f.resp, f.err = resp, err
	to := SUCCEEDED
	if err != nil {
		to = FAILED
	}
	_ = f.state.TransitionTo(to, err, meta)
	close(f.done)
}
