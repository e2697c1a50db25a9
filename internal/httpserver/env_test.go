package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/db"
	"github.com/Skotchmaster/technotes/internal/hash"
	"github.com/Skotchmaster/technotes/internal/models"
	"github.com/Skotchmaster/technotes/internal/repo"
	"github.com/Skotchmaster/technotes/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Auth  *AuthHTTP
	Notes *NoteHTTP
	Users *UserHTTP

	AccessSecret  []byte
	RefreshSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	gormRepo := &repo.GormRepo{DB: gdb}
	accessSecret := []byte("test-access-secret")
	refreshSecret := []byte("test-refresh-secret")

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: gdb,
		Auth: &AuthHTTP{Svc: &service.AuthService{
			Repo:          gormRepo,
			AccessSecret:  accessSecret,
			RefreshSecret: refreshSecret,
		}},
		Notes:         &NoteHTTP{Svc: &service.NoteService{Repo: gormRepo}},
		Users:         &UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
	}
}

func (env *testEnv) doJSONRequest(method, target string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	env.T.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(env.T, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, req, c
}

func (env *testEnv) createUser(username, password string, roles []string, active bool) *models.User {
	env.T.Helper()

	hashed, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		Roles:    roles,
		Active:   active,
	}
	require.NoError(env.T, env.DB.Create(user).Error)
	if !active {
		// GORM substitutes the column default (true) for a zero-valued bool on
		// Create, so an inactive user has to be downgraded explicitly.
		require.NoError(env.T, env.DB.Model(user).UpdateColumn("active", false).Error)
	}
	return user
}

func (env *testEnv) createNote(userID uint, title, text string) *models.Note {
	env.T.Helper()

	note := &models.Note{UserID: userID, Title: title, Text: text}
	gormRepo := &repo.GormRepo{DB: env.DB}
	require.NoError(env.T, gormRepo.CreateNote(context.Background(), note))
	return note
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	return he
}
