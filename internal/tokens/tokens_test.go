package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(AccessTokenTTL).UTC()
	token, err := NewAccessToken("hank", []string{"Employee", "Manager"}, secret, exp)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, "hank", claims.Username)
	assert.Equal(t, []string{"Employee", "Manager"}, claims.Roles)
	assert.Equal(t, "hank", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken("hank", []string{"Employee"}, secret, time.Now().Add(AccessTokenTTL))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken("hank", []string{"Employee"}, secret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, secret)
	require.Error(t, err)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(RefreshTokenTTL).UTC()
	token, err := NewRefreshToken("hank", secret, exp)
	require.NoError(t, err)

	claims, err := RefreshClaimsFromToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, "hank", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestRefreshToken_NotValidAsAccessSecret(t *testing.T) {
	t.Parallel()

	token, err := NewRefreshToken("hank", secret, time.Now().Add(RefreshTokenTTL))
	require.NoError(t, err)

	_, err = RefreshClaimsFromToken(token, []byte("access-secret"))
	require.Error(t, err)
}

func TestAccessToken_Tampered(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken("hank", []string{"Employee"}, secret, time.Now().Add(AccessTokenTTL))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token+"x", secret)
	require.Error(t, err)
}
