package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/db"
	"github.com/Skotchmaster/technotes/internal/models"
)

func (r *GormRepo) GetNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormRepo) GetNoteByID(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	if err := r.DB.WithContext(ctx).First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *GormRepo) GetNoteByTitle(ctx context.Context, title string) (*models.Note, error) {
	var note models.Note
	if err := r.DB.WithContext(ctx).Where("title = ?", title).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateNote assigns the next ticket number and inserts the note in one
// transaction, so tickets stay strictly increasing even under concurrent
// creations.
func (r *GormRepo) CreateNote(ctx context.Context, note *models.Note) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ticket, err := nextSequence(tx, db.TicketSequence)
		if err != nil {
			return err
		}
		note.Ticket = ticket
		return tx.Create(note).Error
	})
}

func (r *GormRepo) SaveNote(ctx context.Context, note *models.Note) error {
	return r.DB.WithContext(ctx).Save(note).Error
}

func (r *GormRepo) DeleteNote(ctx context.Context, note *models.Note) error {
	return r.DB.WithContext(ctx).Delete(note).Error
}
