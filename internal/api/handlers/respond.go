package handlers

import (
	"errors"
	"net/http"

	apperrors "company-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// notFoundMessage is the body returned whenever a route parameter does not
// resolve to a record, regardless of resource type.
const notFoundMessage = "The data provided was not found"

// respondError translates service errors into their HTTP representation.
// Validation failures come back as a 400 with the field report under "error",
// missing records as a 404, rejected credentials as a 406 and database
// constraint violations as a 422 carrying the driver message.
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Fields})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusNotAcceptable, gin.H{"message": err.Error()})
	case apperrors.IsPersistence(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
