package middlewares

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Authenticate returns a bearer-token auth middleware.
// It verifies the token's signature against the given key and rejects the
// request when the token is absent, malformed or tampered. The decoded claims
// are not stored on the context; any valid token authorizes any operation.
func Authenticate(signingKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := token(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Unauthorized",
				})
			}

			parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return signingKey, nil
			})
			if err != nil || !parsed.Valid {
				// Malformed or tampered tokens must end up here, never in a panic.
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Unauthorized",
				})
			}

			return next(c)
		}
	}
}

// token extracts the token from `Authorization: <scheme> <token>`.
// Only the second whitespace-separated segment is used, whatever the scheme.
func token(authorization string) string {
	parts := strings.Fields(authorization)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
