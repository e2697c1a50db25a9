package httpserver

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Skotchmaster/technotes/internal/logging"
	"github.com/Skotchmaster/technotes/internal/middleware"
)

type Deps struct {
	Auth  *AuthHTTP
	Notes *NoteHTTP
	Users *UserHTTP

	AuthMW *middleware.Auth

	AllowedOrigins []string
	StaticDir      string

	Logger *slog.Logger
	Files  *logging.FileLogger
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = errorHandler(d.Files)

	e.Use(ecM.Recover())
	e.Use(ecM.RequestID())
	e.Use(middleware.RequestLogger(d.Logger, d.Files))
	e.Use(ecM.CORSWithConfig(ecM.CORSConfig{
		AllowOrigins:     d.AllowedOrigins,
		AllowCredentials: true,
	}))

	index := filepath.Join(d.StaticDir, "index.html")
	e.File("/", index)
	e.File("/index", index)
	e.File("/index.html", index)

	auth := e.Group("/auth")
	auth.POST("", d.Auth.Login, loginLimiter(d.Files))
	auth.GET("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)

	users := e.Group("/users")
	users.Use(d.AuthMW.RequireAuth)
	users.GET("", d.Users.GetUsers)
	users.POST("", d.Users.CreateUser)
	users.PATCH("", d.Users.UpdateUser)
	users.DELETE("", d.Users.DeleteUser)

	notes := e.Group("/notes")
	notes.Use(d.AuthMW.RequireAuth)
	notes.GET("", d.Notes.GetNotes)
	notes.POST("", d.Notes.CreateNote)
	notes.PATCH("", d.Notes.UpdateNote)
	notes.DELETE("", d.Notes.DeleteNote)

	e.RouteNotFound("/*", notFound(d.StaticDir))
}

const tooManyLoginsMsg = "Too many login attempts from this IP, please try again after a 60-second pause"

// loginLimiter allows 5 login attempts per minute per client IP.
func loginLimiter(files *logging.FileLogger) echo.MiddlewareFunc {
	return ecM.RateLimiterWithConfig(ecM.RateLimiterConfig{
		Store: ecM.NewRateLimiterMemoryStoreWithConfig(ecM.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(5.0 / 60.0),
			Burst:     5,
			ExpiresIn: time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			files.Error("Too Many Requests: " + tooManyLoginsMsg + "\t" +
				c.Request().Method + "\t" + c.Request().URL.Path + "\t" + c.Request().Header.Get("Origin"))
			return echo.NewHTTPError(http.StatusTooManyRequests, tooManyLoginsMsg)
		},
	})
}
