package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/hash"
	"github.com/Skotchmaster/technotes/internal/models"
	"github.com/Skotchmaster/technotes/internal/repo"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, username, password string, roles []string) (*models.User, error) {
	if username == "" || password == "" || len(roles) == 0 {
		return nil, ErrValidation
	}

	if _, err := s.Repo.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Roles:    roles,
		Active:   true,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the user's fields; the password is re-hashed only when
// a new one is supplied.
func (s *UserService) UpdateUser(ctx context.Context, id uint, username string, roles []string, active bool, password string) (*models.User, error) {
	if id == 0 || username == "" || len(roles) == 0 {
		return nil, ErrValidation
	}

	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if dup, err := s.Repo.GetUserByUsername(ctx, username); err == nil {
		if dup.ID != id {
			return nil, ErrDuplicate
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user.Username = username
	user.Roles = roles
	user.Active = active

	if password != "" {
		hashed, err := hash.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser refuses to remove a user that still owns notes.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrValidation
	}

	hasNotes, err := s.Repo.UserHasNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasNotes {
		return nil, ErrHasNotes
	}

	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Repo.DeleteUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
