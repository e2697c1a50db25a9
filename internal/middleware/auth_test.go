package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/technotes/internal/tokens"
)

var accessSecret = []byte("test-access-secret")

func doRequest(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	c, _ := doRequest(t, "")

	mw := NewAuth(accessSecret)
	err := mw.RequireAuth(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	c, _ := doRequest(t, "Token abc")

	mw := NewAuth(accessSecret)
	err := mw.RequireAuth(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	forged, err := tokens.NewAccessToken("hank", []string{"Employee"}, []byte("wrong-secret"), time.Now().Add(time.Hour))
	require.NoError(t, err)
	c, _ := doRequest(t, "Bearer "+forged)

	mw := NewAuth(accessSecret)
	err = mw.RequireAuth(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAuth_InjectsIdentity(t *testing.T) {
	token, err := tokens.NewAccessToken("hank", []string{"Employee", "Manager"}, accessSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	c, _ := doRequest(t, "Bearer "+token)

	called := false
	mw := NewAuth(accessSecret)
	err = mw.RequireAuth(func(c echo.Context) error {
		called = true
		assert.Equal(t, "hank", c.Get(CtxUsername))
		assert.Equal(t, []string{"Employee", "Manager"}, c.Get(CtxRoles))
		return nil
	})(c)

	require.NoError(t, err)
	require.True(t, called)
}
