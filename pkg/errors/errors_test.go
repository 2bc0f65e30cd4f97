package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("patient", nil), http.StatusNotFound},
		{"bad request", BadRequest("invalid form", nil), http.StatusBadRequest},
		{"conflict", Conflict("still referenced", nil), http.StatusConflict},
		{"method", MethodNotAllowed(), http.StatusMethodNotAllowed},
		{"internal", Internal(fmt.Errorf("boom")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", BadRequest("invalid form", nil)), http.StatusBadRequest},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "invalid form: age missing", MessageOf(BadRequest("invalid form", fmt.Errorf("age missing"))))
	assert.Equal(t, "internal server error", MessageOf(Internal(fmt.Errorf("connection refused"))))
	assert.Equal(t, "internal server error", MessageOf(fmt.Errorf("connection refused")))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("cause")
	err := BadRequest("invalid form", cause)
	assert.ErrorIs(t, err, cause)
}
