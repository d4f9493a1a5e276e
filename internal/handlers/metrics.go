package handlers

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the Prometheus registry.
type MetricsHandler struct {
	handler fiber.Handler
}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		handler: adaptor.HTTPHandler(promhttp.Handler()),
	}
}

func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	return h.handler(c)
}
