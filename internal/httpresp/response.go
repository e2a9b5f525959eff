package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the success envelope with extra top-level fields merged in.
func OK(c *gin.Context, fields gin.H) {
	write(c, http.StatusOK, fields)
}

// Created is OK with a 201.
func Created(c *gin.Context, fields gin.H) {
	write(c, http.StatusCreated, fields)
}

func write(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
