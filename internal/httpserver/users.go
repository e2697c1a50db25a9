package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/technotes/internal/logging"
	"github.com/Skotchmaster/technotes/internal/service"
	"github.com/Skotchmaster/technotes/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_list")

	users, err := h.Svc.GetUsers(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("users_list_empty", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "No users found")
		}
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	user, err := h.Svc.CreateUser(ctx, req.Username, req.Password, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrDuplicate):
			l.Warn("user_create_error", "status", 409, "reason", "duplicate username")
			return echo.NewHTTPError(http.StatusConflict, "Duplicate username")
		default:
			return err
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("New user %s created", user.Username),
	})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_update")

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields except password are required")
	}
	if req.Active == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields except password are required")
	}

	user, err := h.Svc.UpdateUser(ctx, req.ID, req.Username, req.Roles, *req.Active, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields except password are required")
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrDuplicate):
			l.Warn("user_update_error", "status", 409, "reason", "duplicate username")
			return echo.NewHTTPError(http.StatusConflict, "Duplicate username")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("%s updated", user.Username),
	})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_delete")

	var req transport.DeleteRequest
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID Required")
	}

	user, err := h.Svc.DeleteUser(ctx, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHasNotes):
			l.Warn("user_delete_error", "status", 400, "reason", "user still owns notes")
			return echo.NewHTTPError(http.StatusBadRequest, "User has assigned notes")
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "User not found")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, fmt.Sprintf("Username %s with ID %d deleted", user.Username, user.ID))
}
