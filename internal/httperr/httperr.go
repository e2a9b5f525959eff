package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the error envelope every route responds with on failure.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

func Write(c *gin.Context, status int, message, detail string) {
	c.JSON(status, HTTPError{
		Success: false,
		Message: message,
		Detail:  detail,
	})
}

func BadRequest(c *gin.Context, message, detail string) {
	Write(c, http.StatusBadRequest, message, detail)
}

func Unauthorized(c *gin.Context, message, detail string) {
	Write(c, http.StatusUnauthorized, message, detail)
}

func Forbidden(c *gin.Context, message, detail string) {
	Write(c, http.StatusForbidden, message, detail)
}

func NotFound(c *gin.Context, message, detail string) {
	Write(c, http.StatusNotFound, message, detail)
}

func Internal(c *gin.Context, message, detail string) {
	Write(c, http.StatusInternalServerError, message, detail)
}
