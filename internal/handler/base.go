package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

// Abort records err for the error middleware and stops the chain.
func Abort(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

// ParseID reads the :id path parameter. Anything that is not a non-negative
// integer is treated like an unknown path.
func ParseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, apperrors.NotFound("page", err)
	}
	return id, nil
}

// BindForm binds the submitted form into req. Blank values for the listed
// fields are rejected first, since form binding would coerce them to zero.
func BindForm(c *gin.Context, req interface{}, nonBlank ...string) error {
	for _, name := range nonBlank {
		if strings.TrimSpace(c.PostForm(name)) == "" {
			return apperrors.BadRequest(fmt.Sprintf("invalid form: %s is required", name), nil)
		}
	}
	if err := c.ShouldBindWith(req, binding.Form); err != nil {
		return BindError(err)
	}
	return nil
}

// BindError converts a form binding failure into a 400.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return apperrors.BadRequest("invalid form: "+strings.Join(fields, ", "), err)
	}
	return apperrors.BadRequest("invalid form", err)
}
