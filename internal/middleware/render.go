package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorTemplate is the view used for every error page.
const ErrorTemplate = "error.html"

// RenderError writes the error page with the given status and aborts the chain.
func RenderError(c *gin.Context, status int, message string) {
	c.Abort()
	if c.Writer.Written() {
		return
	}
	c.HTML(status, ErrorTemplate, gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": message,
	})
}
