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

type NoteHTTP struct {
	Svc *service.NoteService
}

func (h *NoteHTTP) GetNotes(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notes_list")

	notes, err := h.Svc.GetNotes(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("notes_list_empty", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "No notes found")
		}
		return err
	}

	return c.JSON(http.StatusOK, notes)
}

func (h *NoteHTTP) CreateNote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notes_create")

	var req transport.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("note_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	if _, err := h.Svc.CreateNote(ctx, req.User, req.Title, req.Text); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrDuplicate):
			l.Warn("note_create_error", "status", 409, "reason", "duplicate title")
			return echo.NewHTTPError(http.StatusConflict, "Duplicate note title")
		default:
			return err
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "New note created",
	})
}

func (h *NoteHTTP) UpdateNote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notes_update")

	var req transport.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("note_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}
	if req.Completed == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	note, err := h.Svc.UpdateNote(ctx, req.ID, req.User, req.Title, req.Text, *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "Note not found")
		case errors.Is(err, service.ErrDuplicate):
			l.Warn("note_update_error", "status", 409, "reason", "duplicate title")
			return echo.NewHTTPError(http.StatusConflict, "Duplicate note title")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, fmt.Sprintf("'%s' updated", note.Title))
}

func (h *NoteHTTP) DeleteNote(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.DeleteRequest
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Note ID required")
	}

	note, err := h.Svc.DeleteNote(ctx, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "Note not found")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, fmt.Sprintf("Note '%s' with ID %d deleted", note.Title, note.ID))
}
