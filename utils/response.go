// utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

// RespondWithError writes a JSON error body and aborts the request.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithDomainError maps the error taxonomy onto HTTP statuses:
// validation 400, invalid state 409, not found 404, remote store failure 502.
func RespondWithDomainError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var stateErr *models.InvalidStateError
	var notFoundErr *models.NotFoundError
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &validationErr):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &stateErr):
		RespondWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &notFoundErr):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &apiErr):
		RespondWithError(c, http.StatusBadGateway, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
