package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/dto"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/middleware"
)

// CurrentIdentity extracts authenticated caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	identity, _ := middleware.CurrentIdentity(c)
	return identity
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrSignatureMismatch),
		errors.Is(err, domainErrors.ErrOrderDelivered):
		respondMessage(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrForbidden):
		respondMessage(c, http.StatusForbidden, "Not authorized")
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondMessage(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}
