// Package users provides the profile read projection for accounts.
//
// Registration and credential checks live in internal/auth; this repository
// only answers the denormalized "current user" query the frontend uses to
// derive favorite and cart membership in one round trip.
package users

import (
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// Repository handles user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetProfile returns a user with favorites and cart items expanded, each
// carrying its book and the book's author and genre.
func (r *Repository) GetProfile(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("favorites.id ASC")
		}).
		Preload("Favorites.Book.Author").
		Preload("Favorites.Book.Genre").
		Preload("CartItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("CartItems.Book.Author").
		Preload("CartItems.Book.Genre").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
