// Package handler holds the gin HTTP handlers of the site backend.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ai-solutions-go/internal/service"
	"ai-solutions-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"code": status, "message": message, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "message": message, "data": nil})
}

// failErr maps service errors onto HTTP statuses.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidMessage):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		fail(c, http.StatusUnauthorized, err.Error())
	default:
		log.Error("request failed", err)
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// parseID reads the numeric :id path parameter, replying 400 when it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		log.Warnf("invalid request payload on %s: %v", c.FullPath(), err)
		fail(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return false
	}
	return true
}
