package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	return &AuthService{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "hank", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
