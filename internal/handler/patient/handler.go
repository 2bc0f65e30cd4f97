package patient

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/internal/handler"
	"github.com/jwalitptl/clinic-records/internal/model"
)

type Service interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	CreatePatient(ctx context.Context, patient *model.Patient) error
	DeletePatient(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/patients", h.ListPatients)
	r.GET("/add_patient", h.NewPatientForm)
	r.POST("/add_patient", h.CreatePatient)
	r.POST("/delete_patient/:id", h.DeletePatient)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "patients.html", gin.H{"patients": patients})
}

func (h *Handler) NewPatientForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_patient.html", nil)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := handler.BindForm(c, &req, "age"); err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.CreatePatient(c.Request.Context(), req.ToPatient()); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/patients")
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/patients")
}
