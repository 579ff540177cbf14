package client

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// AsyncError carries the failure of an asynchronous operation. Cause is
// exactly the error the synchronous call returned, so errors.Is and
// errors.As see through it.
type AsyncError struct {
	Op        protocol.OperationCode `json:"operation"`
	RequestID string                 `json:"request_id"`
	Cause     error                  `json:"-"`
	Timestamp time.Time              `json:"timestamp,omitempty"`
}

// Error implements the error interface.
func (e *AsyncError) Error() string {
	return e.FormatError(false)
}

// FormatError formats the error based on debug mode.
func (e *AsyncError) FormatError(debugMode bool) string {
	if !debugMode {
		return fmt.Sprintf("async %s failed: %v", e.Op, e.Cause)
	}

	errorData := map[string]interface{}{
		"type":       "ASYNC_ERROR",
		"operation":  e.Op.String(),
		"request_id": e.RequestID,
	}
	if e.Cause != nil {
		errorData["cause"] = map[string]interface{}{
			"message": FormatError(e.Cause, true),
			"type":    fmt.Sprintf("%T", e.Cause),
		}
	}
	if !e.Timestamp.IsZero() {
		errorData["timestamp"] = e.Timestamp.Format(time.RFC3339Nano)
	}

	b, _ := json.MarshalIndent(errorData, "", "  ")
	return string(b)
}

// Unwrap returns the underlying cause error for errors.Is and errors.As compatibility.
func (e *AsyncError) Unwrap() error {
	return e.Cause
}

// PanicError is the cause of an AsyncError whose operation panicked.
type PanicError struct {
	Value      interface{} `json:"value"`
	StackTrace []string    `json:"stack_trace,omitempty"`
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// FormatError formats the error based on debug mode.
func (e *PanicError) FormatError(debugMode bool) string {
	if !debugMode || len(e.StackTrace) == 0 {
		return e.Error()
	}
	b, _ := json.MarshalIndent(e, "", "  ")
	return string(b)
}

// HookError is returned when a Before hook aborts an operation. Cause is
// what the hook returned.
type HookError struct {
	Hook      string `json:"hook"`
	Phase     string `json:"phase"`
	RequestID string `json:"request_id"`
	Cause     error  `json:"-"`
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %q aborted %s: %v", e.Hook, e.Phase, e.Cause)
}

// Unwrap returns the error the hook returned.
func (e *HookError) Unwrap() error {
	return e.Cause
}

// captureStackTrace captures the current stack trace for error reporting.
func captureStackTrace(skip int) []string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip, pcs)

	frames := make([]string, 0, n)
	callersFrames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := callersFrames.Next()

		// Format: function (file:line)
		frames = append(frames, fmt.Sprintf("%s (%s:%d)",
			frame.Function,
			frame.File,
			frame.Line,
		))

		if !more {
			break
		}
	}

	return frames
}

// FormatError is a helper to format any error with debug mode support.
func FormatError(err error, debugMode bool) string {
	if err == nil {
		return ""
	}

	type debugFormatter interface {
		FormatError(bool) string
	}

	if formatter, ok := err.(debugFormatter); ok {
		return formatter.FormatError(debugMode)
	}

	return err.Error()
}
