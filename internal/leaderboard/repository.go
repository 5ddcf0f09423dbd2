package leaderboard

import (
	"gorm.io/gorm"

	"github.com/jsalinasr/SnakeDuel/internal/apperrors"
)

type EntryRepository interface {
	InsertEntry(entry *Entry) error
	ListEntries(query Query) ([]Entry, error)
}

type GormEntryRepository struct {
	db *gorm.DB
}

func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

func (r *GormEntryRepository) InsertEntry(entry *Entry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return apperrors.NewAppError(500, "error saving score", err)
	}
	return nil
}

// ListEntries ranks by score descending; among equal scores the
// earlier entry wins, with id as the final total order.
func (r *GormEntryRepository) ListEntries(query Query) ([]Entry, error) {
	tx := r.db.Model(&Entry{})
	if query.Mode != "" {
		tx = tx.Where("mode = ?", query.Mode)
	}

	var entries []Entry
	err := tx.Order("score DESC").
		Order("created_at ASC").
		Order("id ASC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching leaderboard", err)
	}
	return entries, nil
}
