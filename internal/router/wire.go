package router

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-records/internal/config"
	"github.com/jwalitptl/clinic-records/internal/handler"
	appointmentHandler "github.com/jwalitptl/clinic-records/internal/handler/appointment"
	billingHandler "github.com/jwalitptl/clinic-records/internal/handler/billing"
	doctorHandler "github.com/jwalitptl/clinic-records/internal/handler/doctor"
	"github.com/jwalitptl/clinic-records/internal/handler/health"
	patientHandler "github.com/jwalitptl/clinic-records/internal/handler/patient"
	"github.com/jwalitptl/clinic-records/internal/middleware"
	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository/sqlstore"
	appointmentService "github.com/jwalitptl/clinic-records/internal/service/appointment"
	billingService "github.com/jwalitptl/clinic-records/internal/service/billing"
	doctorService "github.com/jwalitptl/clinic-records/internal/service/doctor"
	patientService "github.com/jwalitptl/clinic-records/internal/service/patient"
	"github.com/jwalitptl/clinic-records/internal/web"
	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

// Build wires repositories, services and handlers over db and returns a
// router with its routes registered.
func Build(db *sqlx.DB, cfg *config.Config, m *metrics.Metrics, limiter middleware.Limiter) (*Router, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	base := sqlstore.NewBaseRepository(db, m)
	patientRepo := sqlstore.NewPatientRepository(base)
	doctorRepo := sqlstore.NewDoctorRepository(base)
	appointmentRepo := sqlstore.NewAppointmentRepository(base)
	billingRepo := sqlstore.NewBillingRepository(base)

	// Initialize services
	policy := model.ParseReferencePolicy(cfg.Database.ReferencePolicy)
	patientSvc := patientService.NewService(patientRepo, appointmentRepo, policy)
	doctorSvc := doctorService.NewService(doctorRepo, appointmentRepo, policy)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo, billingRepo, policy)
	billingSvc := billingService.NewService(billingRepo, appointmentRepo, policy)

	security := middleware.DefaultSecurityConfig()
	security.HSTS = cfg.Security.HSTS

	sizeLimit := middleware.DefaultSizeLimitConfig()
	if cfg.Security.MaxBodySize > 0 {
		sizeLimit.MaxBodySize = cfg.Security.MaxBodySize
	}

	routerConfig := RouterConfig{
		Mode:      cfg.Server.Mode,
		Templates: templates,
		Security:  security,
		SizeLimit: sizeLimit,
		Limiter:   limiter,
	}
	if cfg.Monitoring.PrometheusEnabled {
		routerConfig.MetricsPath = cfg.Monitoring.MetricsPath
	}

	r := NewRouter(
		handler.NewHandler(),
		health.NewHandler(db),
		m,
		routerConfig,
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		billingHandler.NewHandler(billingSvc),
	)
	r.Setup()
	return r, nil
}
