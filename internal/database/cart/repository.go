// Package cart provides database operations for cart rows.
//
// A cart row represents one unit of a book staged for checkout; quantity is
// row count. Deletes are owner-scoped the same way favorites are.
package cart

import (
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// Repository handles all cart database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new cart repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts a cart row for (userID, bookID) and returns it with
// the book, author and genre loaded. Adding the same book twice yields two
// rows; checkout removes them one by one.
func (r *Repository) CreateItem(userID, bookID uint) (*entities.CartItem, error) {
	item := &entities.CartItem{
		UserID: userID,
		BookID: bookID,
	}
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}

	var created entities.CartItem
	err := r.db.Preload("Book.Author").Preload("Book.Genre").
		First(&created, item.ID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteItem removes the cart row matching both id and userID. Returns
// gorm.ErrRecordNotFound when nothing matched.
func (r *Repository) DeleteItem(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetItemsByUser returns a user's cart rows with books loaded.
func (r *Repository) GetItemsByUser(userID uint) ([]entities.CartItem, error) {
	var items []entities.CartItem
	err := r.db.Preload("Book.Author").Preload("Book.Genre").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// CountByUser returns the number of cart rows a user owns.
func (r *Repository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
