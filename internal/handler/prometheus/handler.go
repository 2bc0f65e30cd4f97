package prometheus

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

// Handler exposes the application registry in the Prometheus text format.
type Handler struct {
	metrics *metrics.Metrics
}

func New(m *metrics.Metrics) *Handler {
	return &Handler{metrics: m}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes, path string) {
	r.GET(path, h.Handler())
}

func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{
		Registry: h.metrics.Registry,
	}))
}
