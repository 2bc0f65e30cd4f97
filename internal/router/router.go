package router

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/internal/handler"
	"github.com/jwalitptl/clinic-records/internal/handler/health"
	"github.com/jwalitptl/clinic-records/internal/handler/prometheus"
	"github.com/jwalitptl/clinic-records/internal/middleware"
	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(gin.IRoutes)
}

type Router struct {
	engine   *gin.Engine
	h        *handler.Handler
	entities []Handler
	health   *health.Handler
	metrics  *metrics.Metrics
	config   RouterConfig
}

type RouterConfig struct {
	Mode      string
	Templates *template.Template
	Security  middleware.SecurityConfig
	SizeLimit middleware.SizeLimitConfig
	// Limiter is nil when rate limiting is disabled.
	Limiter middleware.Limiter
	// MetricsPath is empty when the Prometheus endpoint is disabled.
	MetricsPath string
}

// NewRouter builds the engine and its middleware chain. Routes are added by Setup.
func NewRouter(
	h *handler.Handler,
	healthH *health.Handler,
	m *metrics.Metrics,
	config RouterConfig,
	entities ...Handler,
) *Router {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	middleware.RegisterFormFieldNames()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.SetHTMLTemplate(config.Templates)

	r := &Router{
		engine:   engine,
		h:        h,
		entities: entities,
		health:   healthH,
		metrics:  m,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(m),
		middleware.Recovery(),
		middleware.SecurityHeaders(config.Security),
		middleware.Cache(middleware.NoStoreCacheConfig()),
		middleware.SizeLimit(config.SizeLimit),
	)
	if config.Limiter != nil {
		engine.Use(middleware.RateLimit(config.Limiter))
	}
	engine.Use(middleware.ErrorHandler())

	return r
}

func (r *Router) Setup() {
	r.setupHealthCheck()

	r.h.RegisterRoutes(r.engine)
	for _, e := range r.entities {
		e.RegisterRoutes(r.engine)
	}

	r.engine.NoRoute(r.h.NoRoute)
	r.engine.NoMethod(r.h.NoMethod)
}

func (r *Router) setupHealthCheck() {
	r.health.RegisterRoutes(r.engine)
	if r.config.MetricsPath != "" {
		prometheus.New(r.metrics).RegisterRoutes(r.engine, r.config.MetricsPath)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
