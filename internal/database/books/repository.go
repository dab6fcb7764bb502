// Package books provides read-only database access to the book catalog.
//
// The catalog is seeded once at startup and has no write surface over HTTP,
// so the repository only exposes lookups.
package books

import (
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// Repository handles catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks returns every book with its author and genre loaded.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Preload("Genre").
		Order("id ASC").
		Find(&books).Error
	return books, err
}

// GetBookByID returns a single book with its author and genre loaded.
// Returns gorm.ErrRecordNotFound when the id does not resolve.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genre").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// BookExists reports whether a book row with the given id exists.
func (r *Repository) BookExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
