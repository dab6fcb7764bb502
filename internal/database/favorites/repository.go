// Package favorites provides database operations for user-book bookmarks.
//
// Deletes are scoped by composing the row id with the owning user's id, so
// a delete issued against another user's row matches nothing and reports
// not-found instead of leaking its existence.
package favorites

import (
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// Repository handles all favorites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateFavorite inserts a favorite row for (userID, bookID) and returns it
// with the book, author and genre loaded. There is no duplicate check;
// repeated calls create repeated rows.
func (r *Repository) CreateFavorite(userID, bookID uint) (*entities.Favorite, error) {
	favorite := &entities.Favorite{
		UserID: userID,
		BookID: bookID,
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return nil, err
	}

	var created entities.Favorite
	err := r.db.Preload("Book.Author").Preload("Book.Genre").
		First(&created, favorite.ID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteFavorite removes the favorite row matching both id and userID.
// Returns gorm.ErrRecordNotFound when nothing matched, which covers both an
// unknown id and a row owned by someone else.
func (r *Repository) DeleteFavorite(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetFavoritesByUser returns a user's favorite rows with books loaded.
func (r *Repository) GetFavoritesByUser(userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.Preload("Book.Author").Preload("Book.Genre").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error
	return favorites, err
}

// CountByUser returns the number of favorite rows a user owns.
func (r *Repository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
