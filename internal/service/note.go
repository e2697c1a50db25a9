package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/models"
	"github.com/Skotchmaster/technotes/internal/repo"
)

type NoteService struct {
	Repo *repo.GormRepo
}

// NoteWithUser is a note enriched with the owning user's username for list
// responses.
type NoteWithUser struct {
	models.Note
	Username string `json:"username"`
}

func (s *NoteService) GetNotes(ctx context.Context) ([]NoteWithUser, error) {
	notes, err := s.Repo.GetNotes(ctx)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNotFound
	}

	out := make([]NoteWithUser, 0, len(notes))
	for _, note := range notes {
		user, err := s.Repo.GetUserByID(ctx, note.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, NoteWithUser{Note: note, Username: user.Username})
	}
	return out, nil
}

func (s *NoteService) CreateNote(ctx context.Context, userID uint, title, text string) (*models.Note, error) {
	if userID == 0 || title == "" || text == "" {
		return nil, ErrValidation
	}

	if _, err := s.Repo.GetNoteByTitle(ctx, title); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	note := &models.Note{
		UserID: userID,
		Title:  title,
		Text:   text,
	}
	if err := s.Repo.CreateNote(ctx, note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces every field of the note; partial updates are not
// supported.
func (s *NoteService) UpdateNote(ctx context.Context, id, userID uint, title, text string, completed bool) (*models.Note, error) {
	if id == 0 || userID == 0 || title == "" || text == "" {
		return nil, ErrValidation
	}

	note, err := s.Repo.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if dup, err := s.Repo.GetNoteByTitle(ctx, title); err == nil {
		if dup.ID != id {
			return nil, ErrDuplicate
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	note.UserID = userID
	note.Title = title
	note.Text = text
	note.Completed = completed

	if err := s.Repo.SaveNote(ctx, note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id uint) (*models.Note, error) {
	if id == 0 {
		return nil, ErrValidation
	}

	note, err := s.Repo.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Repo.DeleteNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}
