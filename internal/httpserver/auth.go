package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/technotes/internal/logging"
	"github.com/Skotchmaster/technotes/internal/service"
	"github.com/Skotchmaster/technotes/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		default:
			return err
		}
	}

	c.SetCookie(refreshCookie(res.RefreshToken, res.RefreshExp))

	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": res.AccessToken,
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	accessToken, err := h.Svc.Refresh(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": accessToken,
	})
}

// Logout is idempotent: without a cookie it answers 204, otherwise it clears
// the cookie and confirms.
func (h *AuthHTTP) Logout(c echo.Context) error {
	if _, err := c.Cookie(RefreshCookieName); err != nil {
		return c.NoContent(http.StatusNoContent)
	}

	c.SetCookie(expiredRefreshCookie())

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cookie cleared",
	})
}
