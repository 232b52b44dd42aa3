package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "linkhub_http_requests_total",
		Help: "HTTP requests processed, by route and status code.",
	},
	[]string{"route", "code"},
)

func init() {
	prometheus.MustRegister(requestsTotal)
}

// countRequests increments the request counter after the handler ran, so the
// final status code is known.
func (s *Server) countRequests(c *fiber.Ctx) error {
	err := c.Next()

	route := c.Route().Path
	code := strconv.Itoa(c.Response().StatusCode())
	requestsTotal.WithLabelValues(route, code).Inc()

	return err
}
