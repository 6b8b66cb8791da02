package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"customer-manager/internal/infrastructure/metrics"
)

const maxLogBodySize = 1 << 12 // 4 KB

// RequestLogGin logs every request. Bodies carry personal data (dni, phone,
// email) and are only captured when debug logging is on.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if logger.Core().Enabled(zapcore.DebugLevel) && c.Request.Body != nil {
			var buf bytes.Buffer
			limited := io.LimitReader(c.Request.Body, maxLogBodySize)
			_, _ = io.Copy(&buf, limited)
			rest, _ := io.ReadAll(c.Request.Body)
			body = buf.String()
			c.Request.Body.Close()
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf.Bytes()), bytes.NewReader(rest)))
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues(metrics.RequestsTotal).Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if body != "" {
			fields = append(fields, zap.String("body", body))
		}
		logger.Info("HTTP request", fields...)
	}
}
