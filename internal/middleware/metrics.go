package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"onboard_panel/prometheus"
)

// Metrics records request count and latency per method/route/status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		method := c.Method()
		path := c.Route().Path
		label := strconv.Itoa(status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, label).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, label).Observe(time.Since(start).Seconds())

		return err
	}
}
