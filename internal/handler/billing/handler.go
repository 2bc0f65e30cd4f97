package billing

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-records/internal/handler"
	"github.com/jwalitptl/clinic-records/internal/model"
)

type Service interface {
	ListBillings(ctx context.Context) ([]*model.Billing, error)
	FormAppointments(ctx context.Context) ([]*model.Appointment, error)
	CreateBilling(ctx context.Context, billing *model.Billing) error
	DeleteBilling(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/billings", h.ListBillings)
	r.GET("/add_billing", h.NewBillingForm)
	r.POST("/add_billing", h.CreateBilling)
	r.POST("/delete_billing/:id", h.DeleteBilling)
}

func (h *Handler) ListBillings(c *gin.Context) {
	billings, err := h.service.ListBillings(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "billings.html", gin.H{"billings": billings})
}

func (h *Handler) NewBillingForm(c *gin.Context) {
	appointments, err := h.service.FormAppointments(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "add_billing.html", gin.H{"appointments": appointments})
}

func (h *Handler) CreateBilling(c *gin.Context) {
	var req model.CreateBillingRequest
	if err := handler.BindForm(c, &req, "appointment_id", "amount"); err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.CreateBilling(c.Request.Context(), req.ToBilling()); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/billings")
}

func (h *Handler) DeleteBilling(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.Abort(c, err)
		return
	}

	if err := h.service.DeleteBilling(c.Request.Context(), id); err != nil {
		handler.Abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/billings")
}
