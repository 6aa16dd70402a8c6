package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	healthMetricName    = "HealthCheck"
	executionMetricName = "ExecutionTime"

	// metricsDistinctID is the posthog distinct id used for service-level metrics.
	metricsDistinctID = "sales-notes-service"
)

// MetricsRecorder receives per-request health and latency samples.
type MetricsRecorder interface {
	RecordHealth(path, method string, success bool)
	RecordExecutionTime(path, method string, d time.Duration)
}

// RequestMetrics emits a health sample and an execution time sample for every request.
// Any response below 500 counts as a success. Recorder failures are logged and swallowed.
func RequestMetrics(recorder MetricsRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		success := c.Writer.Status() < http.StatusInternalServerError

		defer func() {
			if rec := recover(); rec != nil {
				GetLoggerFromContext(c).Error("Failed to record request metrics", slog.Any("panic", rec))
			}
		}()
		recorder.RecordHealth(path, c.Request.Method, success)
		recorder.RecordExecutionTime(path, c.Request.Method, elapsed)
	}
}

// LogMetricsRecorder writes metrics as log lines. Used outside production.
type LogMetricsRecorder struct {
	logger *slog.Logger
}

func NewLogMetricsRecorder(logger *slog.Logger) *LogMetricsRecorder {
	return &LogMetricsRecorder{logger: logger}
}

func (r *LogMetricsRecorder) RecordHealth(path, method string, success bool) {
	value := 0
	if success {
		value = 1
	}
	r.logger.Info("[DEV] "+healthMetricName,
		slog.String("path", path),
		slog.String("method", method),
		slog.Int("success", value),
	)
}

func (r *LogMetricsRecorder) RecordExecutionTime(path, method string, d time.Duration) {
	r.logger.Info("[DEV] "+executionMetricName,
		slog.String("path", path),
		slog.String("method", method),
		slog.Float64("time_ms", durationMillis(d)),
	)
}

// PosthogMetricsRecorder ships metrics as posthog events through the client's background queue.
type PosthogMetricsRecorder struct {
	client      *utils.PosthogClientWrapper
	environment string
	serviceName string
}

func NewPosthogMetricsRecorder(client *utils.PosthogClientWrapper, environment, serviceName string) *PosthogMetricsRecorder {
	return &PosthogMetricsRecorder{client: client, environment: environment, serviceName: serviceName}
}

func (r *PosthogMetricsRecorder) RecordHealth(path, method string, success bool) {
	value := 0
	if success {
		value = 1
	}
	r.client.Enqueue(metricsDistinctID, healthMetricName, r.properties(path, method, map[string]any{
		"Value": value,
		"Unit":  "Count",
	}))
}

func (r *PosthogMetricsRecorder) RecordExecutionTime(path, method string, d time.Duration) {
	r.client.Enqueue(metricsDistinctID, executionMetricName, r.properties(path, method, map[string]any{
		"Value": durationMillis(d),
		"Unit":  "Milliseconds",
	}))
}

func (r *PosthogMetricsRecorder) properties(path, method string, extra map[string]any) map[string]any {
	props := map[string]any{
		"Path":        path,
		"Method":      method,
		"Environment": r.environment,
		"Namespace":   r.serviceName + "/" + r.environment,
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// NewMetricsRecorder picks the sink for the environment: posthog in production when a
// client is configured, log lines otherwise.
func NewMetricsRecorder(production bool, environment, serviceName string, client *utils.PosthogClientWrapper, logger *slog.Logger) MetricsRecorder {
	if production && client.IsInitialized() {
		return NewPosthogMetricsRecorder(client, environment, serviceName)
	}
	if production {
		logger.Warn("Posthog is not configured, request metrics will be logged only")
	}
	return NewLogMetricsRecorder(logger)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
