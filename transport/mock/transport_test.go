package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dan-strohschein/linkar-go/protocol"
)

func TestMockTransport_Execute(t *testing.T) {
	mock := NewMockTransport().WithResponse("<record/>")
	ctx := context.Background()
	req := &protocol.Request{Operation: protocol.OpRead, Filename: "CUSTOMERS", Payload: "1"}

	resp, err := mock.Execute(ctx, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp != "<record/>" {
		t.Errorf("expected canned response, got %q", resp)
	}

	if mock.GetCallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.GetCallCount())
	}

	history := mock.GetHistory()
	if len(history) != 1 {
		t.Fatalf("expected 1 item in history, got %d", len(history))
	}
	if history[0] != req {
		t.Errorf("expected the same request in history")
	}
	if mock.LastRequest() != req {
		t.Errorf("expected LastRequest to return the request")
	}
}

func TestMockTransport_OperationResponse(t *testing.T) {
	mock := NewMockTransport().
		WithResponse("default").
		WithOperationResponse(protocol.OpVersion, "v1")

	resp, _ := mock.Execute(context.Background(), &protocol.Request{Operation: protocol.OpVersion})
	if resp != "v1" {
		t.Errorf("expected per-operation response, got %q", resp)
	}
	resp, _ = mock.Execute(context.Background(), &protocol.Request{Operation: protocol.OpExecute})
	if resp != "default" {
		t.Errorf("expected default response, got %q", resp)
	}
}

func TestMockTransport_Error(t *testing.T) {
	want := protocol.ConnectionError("test error", nil)
	mock := NewMockTransport().WithError(want)

	_, err := mock.Execute(context.Background(), &protocol.Request{Operation: protocol.OpRead})
	if err != want {
		t.Fatalf("expected the configured error, got %v", err)
	}

	metrics := mock.GetMetrics()
	if metrics.TotalErrors != 1 {
		t.Errorf("expected 1 error, got %d", metrics.TotalErrors)
	}
}

func TestMockTransport_Delay(t *testing.T) {
	mock := NewMockTransport().WithDelay(50 * time.Millisecond)

	start := time.Now()
	_, err := mock.Execute(context.Background(), &protocol.Request{})
	duration := time.Since(start)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if duration < 50*time.Millisecond {
		t.Errorf("expected delay of at least 50ms, got %v", duration)
	}
}

func TestMockTransport_ContextCancellation(t *testing.T) {
	mock := NewMockTransport().WithDelay(100 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := mock.Execute(ctx, &protocol.Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline exceeded, got %v", err)
	}
}

func TestMockTransport_Handler(t *testing.T) {
	mock := NewMockTransport().WithHandler(func(ctx context.Context, req *protocol.Request) (string, error) {
		return req.Filename, nil
	})

	resp, err := mock.Execute(context.Background(), &protocol.Request{Filename: "ORDERS"})
	if err != nil || resp != "ORDERS" {
		t.Errorf("expected handler result, got %q, %v", resp, err)
	}
}

func TestMockTransport_Metrics(t *testing.T) {
	mock := NewMockTransport().WithResponse("abc")
	req := &protocol.Request{Operation: protocol.OpExecute, Payload: "LIST"}

	for i := 0; i < 3; i++ {
		if _, err := mock.Execute(context.Background(), req); err != nil {
			t.Fatal(err)
		}
	}

	metrics := mock.GetMetrics()
	if metrics.TotalRequests != 3 {
		t.Errorf("expected 3 requests, got %d", metrics.TotalRequests)
	}
	if metrics.BytesReceived != 9 {
		t.Errorf("expected 9 bytes received, got %d", metrics.BytesReceived)
	}
	wantSent := int64(3 * len(protocol.ComposeArguments(req)))
	if metrics.BytesSent != wantSent {
		t.Errorf("expected %d bytes sent, got %d", wantSent, metrics.BytesSent)
	}
}

func TestMockTransport_Reset(t *testing.T) {
	mock := NewMockTransport().WithError(errors.New("boom")).WithResponse("x")
	_, _ = mock.Execute(context.Background(), &protocol.Request{})

	mock.Reset()

	if mock.GetCallCount() != 0 {
		t.Errorf("expected call count reset, got %d", mock.GetCallCount())
	}
	if len(mock.GetHistory()) != 0 {
		t.Errorf("expected empty history")
	}
	resp, err := mock.Execute(context.Background(), &protocol.Request{})
	if err != nil || resp != "" {
		t.Errorf("expected clean behavior after reset, got %q, %v", resp, err)
	}
}
