package repo

import (
	"gorm.io/gorm"

	"github.com/Skotchmaster/technotes/internal/models"
)

// nextSequence increments the named counter and returns the new value. The
// caller must run it inside a transaction: the UPDATE keeps the row locked
// until commit, which is what makes the values strictly increasing.
func nextSequence(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&models.Sequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var seq models.Sequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}
