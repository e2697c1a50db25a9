package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/technotes/internal/logging"
)

// errorHandler turns every error into a JSON {"message": ...} response.
// Unexpected errors are appended to the error log with the request metadata
// and reported to the client with a generic message.
func errorHandler(files *logging.FileLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := "Internal Server Error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		if code >= http.StatusInternalServerError {
			req := c.Request()
			files.Error(fmt.Sprintf("%v\t%s\t%s\t%s", err, req.Method, req.URL.Path, req.Header.Get("Origin")))
			logging.FromContext(req.Context()).Error("unhandled error", "status", code, "error", err)
			message = "Internal Server Error"
		}

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, echo.Map{"message": message})
	}
}

// notFound answers unmatched routes with 404, negotiating html, json or
// plain text from the Accept header.
func notFound(staticDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		accept := c.Request().Header.Get(echo.HeaderAccept)

		if strings.Contains(accept, echo.MIMETextHTML) {
			if page, err := os.ReadFile(filepath.Join(staticDir, "404.html")); err == nil {
				return c.HTMLBlob(http.StatusNotFound, page)
			}
		}
		if strings.Contains(accept, "json") {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "404 Not Found"})
		}
		return c.String(http.StatusNotFound, "404 Not Found")
	}
}
