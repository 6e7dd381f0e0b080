package handlers

import (
	"errors"
	"net/http"

	"auth_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal error"

// statusFor maps a service error kind to an HTTP status.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// respondError writes {error} for err and logs it under event.
// Untyped errors are hidden behind a generic 500.
func (h *Handler) respondError(c *gin.Context, event string, err error, keysAndValues ...any) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		if h.log != nil {
			h.log.Errorw(event, append(keysAndValues, "err", err)...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return
	}

	if h.log != nil {
		h.log.Infow(event, append(keysAndValues, "err", err)...)
	}
	c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Message})
}
