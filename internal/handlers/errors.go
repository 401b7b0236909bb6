package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/SscSPs/erp_records_backend/internal/dto"
	"github.com/SscSPs/erp_records_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConstraint:
		return http.StatusConflict
	case apperrors.KindTransport:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Internal and transport failures
// are logged and answered with fallback so store details never leak.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)
	status := statusFor(kind)

	body := dto.ErrorResponse{Error: err.Error(), Code: apperrors.CodeOf(err)}
	switch kind {
	case apperrors.KindInternal, apperrors.KindTransport:
		logger.Error(fallback, slog.String("error", err.Error()), slog.String("kind", kind.String()))
		body.Error = fallback
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.String("kind", kind.String()))
	}

	c.JSON(status, body)
}

// respondBindError answers a request whose body failed to bind or validate.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// sessionOrAbort fetches the session set by AuthMiddleware.
func sessionOrAbort(c *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return session, ok
}
