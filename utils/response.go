package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-orders/repository"
	"hotel-orders/services"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONServiceError maps a service error onto a status code: missing rows
// are 404, constraint violations 409, rejected input 400, anything else 500.
func JSONServiceError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	JSONError(c, status, err.Error())
}

func StatusFor(err error) int {
	switch {
	case repository.IsNotFound(err):
		return http.StatusNotFound
	case repository.IsConstraint(err):
		return http.StatusConflict
	case repository.IsInvalid(err), errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
