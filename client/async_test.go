package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-strohschein/linkar-go/options"
	"github.com/dan-strohschein/linkar-go/protocol"
)

func TestAsyncSuccessMatchesSync(t *testing.T) {
	c, tr := newTestClient(t)
	tr.WithOperationResponse(protocol.OpRead, "<records/>")

	f := c.ReadAsync(context.Background(), testCred, ReadArgs{Filename: "F", Records: "1"})
	resp, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, "<records/>", resp)
	assert.Equal(t, SUCCEEDED, f.State())
	assert.Equal(t, protocol.OpRead, f.Operation())
	assert.Equal(t, f.ID(), tr.LastRequest().ID)
}

func TestAsyncFailureWrapsSyncError(t *testing.T) {
	want := protocol.ConnectionError("connection refused", map[string]interface{}{"address": "127.0.0.1:11300"})
	c, tr := newTestClient(t)
	tr.WithError(want)

	_, syncErr := c.ExecuteStatement(context.Background(), testCred, "WHO")
	require.Error(t, syncErr)

	f := c.ExecuteAsync(context.Background(), testCred, ExecuteArgs{Statement: "WHO"})
	_, err := f.Wait()
	require.Error(t, err)
	assert.Equal(t, FAILED, f.State())

	var asyncErr *AsyncError
	require.True(t, errors.As(err, &asyncErr))
	assert.Same(t, syncErr, asyncErr.Cause)
	assert.Equal(t, syncErr.Error(), asyncErr.Cause.Error())
	assert.Equal(t, protocol.OpExecute, asyncErr.Op)
	assert.Equal(t, f.ID(), asyncErr.RequestID)
	assert.True(t, errors.Is(err, protocol.ErrConnectionRefused))

	var te *protocol.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, protocol.ErrorCodeConnectionRefused, te.Code)
}

func TestAsyncConfigErrorParity(t *testing.T) {
	c, tr := newTestClient(t)
	args := SelectArgs{Filename: "F", Options: options.NewSelectOptions(false, options.Paginate(10, 0), false, false, false, false)}

	_, syncErr := c.Select(context.Background(), testCred, args)
	_, err := c.SelectAsync(context.Background(), testCred, args).Wait()

	var asyncErr *AsyncError
	require.True(t, errors.As(err, &asyncErr))
	assert.Equal(t, syncErr, asyncErr.Cause)
	assert.True(t, errors.Is(err, options.ErrInvalidOption))
	assert.Equal(t, 0, tr.GetCallCount())
}

func TestAsyncDoesNotBlockCaller(t *testing.T) {
	c, tr := newTestClient(t)
	tr.WithDelay(200 * time.Millisecond)

	start := time.Now()
	f := c.GetVersionAsync(context.Background(), testCred, GetVersionArgs{})
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	select {
	case <-f.Done():
		t.Fatal("future completed before the transport delay elapsed")
	default:
	}

	resp, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, "OK", resp)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestAsyncIgnoresCallerCancellation(t *testing.T) {
	c, tr := newTestClient(t)
	tr.WithDelay(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	f := c.ResetCommonBlocksAsync(ctx, testCred, ResetCommonBlocksArgs{})
	cancel()

	resp, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, "OK", resp)
	assert.Equal(t, 1, tr.GetCallCount())
}

func TestFutureGetStopsWaitingOnly(t *testing.T) {
	c, tr := newTestClient(t)
	tr.WithDelay(100 * time.Millisecond)

	f := c.DictionariesAsync(context.Background(), testCred, DictionariesArgs{Filename: "F"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	resp, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, "OK", resp)
}

func TestAsyncRecoversPanics(t *testing.T) {
	c, tr := newTestClient(t)
	tr.WithHandler(func(ctx context.Context, req *protocol.Request) (string, error) {
		panic("transport exploded")
	})

	_, err := c.FormatAsync(context.Background(), testCred, FormatArgs{Expression: "1", FormatSpec: "R#5"}).Wait()
	var panicErr *PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "transport exploded", panicErr.Value)
}

func TestExecutorMaxInFlight(t *testing.T) {
	var running, peak atomic.Int32
	tr := newHandlerTransport(func() {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
	})
	c := New(tr, &ClientOptions{Logger: NewNoopLogger(), MaxInFlight: 2})

	futures := make([]*Future, 8)
	for i := range futures {
		futures[i] = versionAsync(c)
	}
	c.Wait()

	for _, f := range futures {
		_, err := f.Wait()
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, int64(8), c.Executor().Submitted())
	assert.Equal(t, int64(0), c.Executor().InFlight())
	assert.Equal(t, 2, c.Executor().MaxInFlight())
}

func TestFutureStateTransitionsReported(t *testing.T) {
	var mu sync.Mutex
	var seen []FutureState

	c := New(newHandlerTransport(func() {}), &ClientOptions{
		Logger: NewNoopLogger(),
		OnFutureStateChange: func(tr StateTransition) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, tr.To)
		},
	})

	_, err := versionAsync(c).Wait()
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []FutureState{RUNNING, SUCCEEDED}, seen)
}

func TestAsyncErrorFormat(t *testing.T) {
	err := &AsyncError{Op: protocol.OpRead, RequestID: "r1", Cause: errors.New("boom")}
	assert.Equal(t, "async READ failed: boom", err.Error())
	assert.Contains(t, FormatError(err, true), `"request_id": "r1"`)
}
