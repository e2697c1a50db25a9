package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/technotes/internal/tokens"
)

// Context keys the controllers can read the caller's identity from.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
)

type Auth struct {
	AccessSecret []byte
}

func NewAuth(secret []byte) *Auth {
	return &Auth{AccessSecret: secret}
}

// RequireAuth rejects requests without a valid bearer access token: 401 when
// the header is missing or malformed, 403 when the token fails verification.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		claims, err := tokens.AccessClaimsFromToken(strings.TrimPrefix(header, "Bearer "), m.AccessSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}

		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRoles, claims.Roles)

		return next(c)
	}
}
