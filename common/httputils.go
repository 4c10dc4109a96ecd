package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError converts an error from the service layer into the JSON notice
// shown to the user. Nothing is retried; the user retries the action manually.
func RespondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var authErr *AuthRejectedError

	switch {
	case errors.Is(err, ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database connection is not ready. Please try again."})
	case errors.Is(err, ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to modify this record. Contact an administrator if this keeps happening."})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, ErrAlreadyForwarded):
		c.JSON(http.StatusConflict, gin.H{"error": "Client has already been sent to the strategy head"})
	case errors.Is(err, ErrTransitionNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Message})
	default:
		Log.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
