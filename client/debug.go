package client

import (
	"encoding/json"
	"fmt"

	"github.com/dan-strohschein/linkar-go/transport"
)

// EnableDebugMode enables debug mode with per-request logging.
func (c *Client) EnableDebugMode() {
	c.debugMode.Store(true)
	c.logger.Info("debug mode enabled")
}

// DisableDebugMode disables debug mode.
func (c *Client) DisableDebugMode() {
	c.debugMode.Store(false)
	c.logger.Info("debug mode disabled")
}

// IsDebugMode returns whether debug mode is currently enabled.
func (c *Client) IsDebugMode() bool {
	return c.debugMode.Load()
}

// GetDebugInfo returns a snapshot of client state for debugging.
func (c *Client) GetDebugInfo() map[string]interface{} {
	info := map[string]interface{}{
		"version":   Version,
		"debugMode": c.IsDebugMode(),
		"hooks":     c.GetHooks(),
		"transport": fmt.Sprintf("%T", c.transport),
	}

	info["executor"] = map[string]interface{}{
		"maxInFlight": c.executor.MaxInFlight(),
		"inFlight":    c.executor.InFlight(),
		"submitted":   c.executor.Submitted(),
	}

	if reporter, ok := c.transport.(transport.MetricsReporter); ok {
		m := reporter.GetMetrics()
		metrics := map[string]interface{}{
			"totalRequests":  m.TotalRequests,
			"totalErrors":    m.TotalErrors,
			"averageLatency": m.AverageLatency.String(),
			"bytesSent":      m.BytesSent,
			"bytesReceived":  m.BytesReceived,
		}
		if m.LastError != nil {
			metrics["lastError"] = m.LastError.Error()
			metrics["lastErrorTime"] = m.LastErrorTime.Format("2006-01-02T15:04:05.000Z07:00")
		}
		info["transportMetrics"] = metrics
	}

	info["options"] = map[string]interface{}{
		"logLevel":             c.LogLevel(),
		"maxInFlight":          c.opts.MaxInFlight,
		"skipOptionValidation": c.opts.SkipOptionValidation,
	}

	return info
}

// DumpDebugInfoJSON returns debug info as formatted JSON string.
func (c *Client) DumpDebugInfoJSON() string {
	info := c.GetDebugInfo()
	bytes, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal debug info: %s"}`, err.Error())
	}
	return string(bytes)
}
