package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

// Handler serves the pages that do not belong to an entity.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Home)
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *Handler) NoRoute(c *gin.Context) {
	Abort(c, apperrors.NotFound("page", nil))
}

func (h *Handler) NoMethod(c *gin.Context) {
	Abort(c, apperrors.MethodNotAllowed())
}
