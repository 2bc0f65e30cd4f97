package doctor

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/internal/handler"
	"github.com/jwalitptl/clinic-records/internal/model"
)

type Service interface {
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *model.Doctor) error
	DeleteDoctor(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/doctors", h.ListDoctors)
	r.GET("/add_doctor", h.NewDoctorForm)
	r.POST("/add_doctor", h.CreateDoctor)
	r.POST("/delete_doctor/:id", h.DeleteDoctor)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "doctors.html", gin.H{"doctors": doctors})
}

func (h *Handler) NewDoctorForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_doctor.html", nil)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := handler.BindForm(c, &req); err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.CreateDoctor(c.Request.Context(), req.ToDoctor()); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/doctors")
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/doctors")
}
