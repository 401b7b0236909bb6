package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/erp_records_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of the bearer token issued by the
// authentication service. This service only verifies them.
type SessionClaims struct {
	EnterpriseID int64 `json:"enterprise_id"`
	UserID       int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates the bearer
// token and stores the session it carries in the request context. An empty
// issuer disables the issuer check.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg(),
	})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &SessionClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if !token.Valid || claims.EnterpriseID <= 0 || claims.UserID <= 0 {
			logger.Warn("Token is missing session claims")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		session := domain.Session{EnterpriseID: claims.EnterpriseID, UserID: claims.UserID}
		enriched := logger.With(
			slog.Int64("enterprise_id", session.EnterpriseID),
			slog.Int64("user_id", session.UserID),
		)

		ctx := WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
		c.Next()
	}
}
