package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey prevents collisions with values stored by other packages.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger, falling back to the
// default logger outside a request.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithSession returns a copy of ctx carrying the caller's session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// SessionFromCtx retrieves the session stored by AuthMiddleware.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(domain.Session)
	return session, ok
}

// GetSessionFromContext retrieves the authenticated session of a gin request.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	return SessionFromCtx(c.Request.Context())
}
