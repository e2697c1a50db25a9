package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/hash"
	"github.com/Skotchmaster/technotes/internal/logging"
	"github.com/Skotchmaster/technotes/internal/repo"
	"github.com/Skotchmaster/technotes/internal/tokens"
)

type AuthService struct {
	Repo          *repo.GormRepo
	AccessSecret  []byte
	RefreshSecret []byte
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	RefreshExp   time.Time
}

// Login checks the credentials against the stored hash and, on success,
// issues the access token and the refresh token. An unknown username, an
// inactive account and a wrong password are deliberately indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown username")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		l.Warn("login_failed", "status", 401, "reason", "inactive account")
		return nil, ErrInvalidCredentials
	}
	if !hash.CheckPassword(user.Password, password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := tokens.NewAccessToken(user.Username, user.Roles, s.AccessSecret, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshExp := time.Now().Add(tokens.RefreshTokenTTL)
	refreshToken, err := tokens.NewRefreshToken(user.Username, s.RefreshSecret, refreshExp)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	l.Info("login_successful")
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

// Refresh verifies the refresh token and mints a new access token carrying
// the user's current roles, re-read from the store on every call. No new
// refresh token is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := tokens.RefreshClaimsFromToken(refreshToken, s.RefreshSecret)
	if err != nil {
		l.Warn("refresh_failed", "status", 403, "reason", "token verification failed", "error", err)
		return "", ErrInvalidToken
	}

	user, err := s.Repo.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh_failed", "status", 401, "reason", "user no longer exists")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	accessToken, err := tokens.NewAccessToken(user.Username, user.Roles, s.AccessSecret, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return accessToken, nil
}
