// Package middleware contains reusable Echo middleware: bearer-token
// verification, tenant resolution and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/specterhq/specter/internal/utils"
)

const (
	// ContextUserID is the context key under which the token subject
	// (account id) is stored for downstream handlers.
	ContextUserID = "user_id"
)

// JWTAuth validates a Bearer access token signed with the shared secret and
// injects the token subject into the request context. Tokens must carry the
// fixed "account" audience; anything else issued with the same secret is
// rejected.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			}, jwt.WithAudience(utils.TokenAudience), jwt.WithExpirationRequired())
			if err != nil || !tok.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			c.Set(ContextUserID, sub)
			return next(c)
		}
	}
}
