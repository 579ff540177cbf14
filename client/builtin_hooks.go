package client

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// ============================================================================
// LoggingHook - Logs operation execution details
// ============================================================================

// LoggingHook logs operation execution with configurable detail levels.
// Payloads are never logged, only their size and digest.
type LoggingHook struct {
	logger       Logger
	logRequests  bool // Log composed requests
	logResponses bool // Log response size and digest
	logDurations bool // Log execution times
}

// NewLoggingHook creates a new logging hook with the given logger.
func NewLoggingHook(logger Logger, logRequests, logResponses, logDurations bool) *LoggingHook {
	return &LoggingHook{
		logger:       logger,
		logRequests:  logRequests,
		logResponses: logResponses,
		logDurations: logDurations,
	}
}

func (h *LoggingHook) Name() string {
	return "logging"
}

func (h *LoggingHook) Before(ctx context.Context, hookCtx *HookContext) error {
	if h.logRequests {
		req := hookCtx.Request
		h.logger.Debug("executing operation",
			String("operation", hookCtx.Operation.String()),
			String("request_id", hookCtx.RequestID),
			String("filename", req.Filename),
			String("options", protocol.Visible(req.Options)),
			Int("payload_size", len(req.Payload)),
			String("payload_digest", Digest(req.Payload)))
	}
	return nil
}

func (h *LoggingHook) After(ctx context.Context, hookCtx *HookContext) error {
	fields := []Field{
		String("operation", hookCtx.Operation.String()),
		String("request_id", hookCtx.RequestID),
	}

	if h.logDurations {
		fields = append(fields, Duration("duration", hookCtx.Duration))
	}

	if hookCtx.Error != nil {
		fields = append(fields, Error("error", hookCtx.Error))
		h.logger.Error("operation failed", fields...)
	} else {
		if h.logResponses {
			fields = append(fields,
				Int("response_size", len(hookCtx.Response)),
				String("response_digest", Digest(hookCtx.Response)))
		}
		h.logger.Debug("operation completed", fields...)
	}

	return nil
}

// ============================================================================
// MetricsHook - Collects performance metrics
// ============================================================================

// MetricsHook collects operation execution metrics using atomic counters.
type MetricsHook struct {
	TotalOperations atomic.Uint64
	TotalReads      atomic.Uint64
	TotalWrites     atomic.Uint64
	TotalErrors     atomic.Uint64
	TotalDurationNs atomic.Uint64

	perOp sync.Map // protocol.OperationCode -> *atomic.Uint64
}

// NewMetricsHook creates a new metrics collection hook.
func NewMetricsHook() *MetricsHook {
	return &MetricsHook{}
}

func (h *MetricsHook) Name() string {
	return "metrics"
}

func (h *MetricsHook) Before(ctx context.Context, hookCtx *HookContext) error {
	return nil
}

func (h *MetricsHook) After(ctx context.Context, hookCtx *HookContext) error {
	h.TotalOperations.Add(1)
	h.TotalDurationNs.Add(uint64(hookCtx.Duration.Nanoseconds()))

	switch hookCtx.Operation {
	case protocol.OpRead, protocol.OpSelect:
		h.TotalReads.Add(1)
	case protocol.OpUpdate, protocol.OpUpdatePartial, protocol.OpNew, protocol.OpDelete:
		h.TotalWrites.Add(1)
	}

	counter, _ := h.perOp.LoadOrStore(hookCtx.Operation, new(atomic.Uint64))
	counter.(*atomic.Uint64).Add(1)

	if hookCtx.Error != nil {
		h.TotalErrors.Add(1)
	}

	return nil
}

// OperationCount returns how many times op completed.
func (h *MetricsHook) OperationCount(op protocol.OperationCode) uint64 {
	if counter, ok := h.perOp.Load(op); ok {
		return counter.(*atomic.Uint64).Load()
	}
	return 0
}

// GetStats returns current metrics as a map.
func (h *MetricsHook) GetStats() map[string]interface{} {
	totalOps := h.TotalOperations.Load()
	totalDur := h.TotalDurationNs.Load()

	avgDuration := int64(0)
	if totalOps > 0 {
		avgDuration = int64(totalDur / totalOps)
	}

	perOp := map[string]uint64{}
	h.perOp.Range(func(key, value interface{}) bool {
		perOp[key.(protocol.OperationCode).String()] = value.(*atomic.Uint64).Load()
		return true
	})

	return map[string]interface{}{
		"total_operations":  totalOps,
		"total_reads":       h.TotalReads.Load(),
		"total_writes":      h.TotalWrites.Load(),
		"total_errors":      h.TotalErrors.Load(),
		"total_duration_ns": totalDur,
		"avg_duration_ns":   avgDuration,
		"avg_duration_ms":   float64(avgDuration) / 1_000_000,
		"total_duration_ms": float64(totalDur) / 1_000_000,
		"per_operation":     perOp,
	}
}

// Reset clears all metrics.
func (h *MetricsHook) Reset() {
	h.TotalOperations.Store(0)
	h.TotalReads.Store(0)
	h.TotalWrites.Store(0)
	h.TotalErrors.Store(0)
	h.TotalDurationNs.Store(0)
	h.perOp.Range(func(key, _ interface{}) bool {
		h.perOp.Delete(key)
		return true
	})
}
