// server/internal/api/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharma-factory-api-server/internal/apperrors"
)

// bindStrict decodes the JSON body into v, rejecting unknown fields so
// typos and stray keys fail loudly instead of being dropped.
func bindStrict(c *gin.Context, v interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// respondError maps the error taxonomy onto HTTP statuses. Validation
// failures carry the full field list; everything else gets a message.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return
	}

	var nferr *apperrors.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, gin.H{"message": nferr.Error()})
		return
	}

	var cerr *apperrors.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{"message": cerr.Error()})
		return
	}

	var serr *apperrors.StorageError
	if errors.As(err, &serr) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Storage unavailable"})
		return
	}

	var xerr *apperrors.ExternalServiceError
	if errors.As(err, &xerr) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "External service failed"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
