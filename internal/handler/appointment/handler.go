package appointment

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/internal/handler"
	"github.com/jwalitptl/clinic-records/internal/model"
)

type Service interface {
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
	FormData(ctx context.Context) (*model.AppointmentFormData, error)
	CreateAppointment(ctx context.Context, apt *model.Appointment) error
	DeleteAppointment(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/appointments", h.ListAppointments)
	r.GET("/add_appointment", h.NewAppointmentForm)
	r.POST("/add_appointment", h.CreateAppointment)
	r.POST("/delete_appointment/:id", h.DeleteAppointment)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "appointments.html", gin.H{"appointments": appointments})
}

func (h *Handler) NewAppointmentForm(c *gin.Context) {
	data, err := h.service.FormData(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "add_appointment.html", gin.H{
		"patients": data.Patients,
		"doctors":  data.Doctors,
		"now":      h.now(),
	})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := handler.BindForm(c, &req, "patient_id", "doctor_id"); err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.CreateAppointment(c.Request.Context(), req.ToAppointment()); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/appointments")
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/appointments")
}
